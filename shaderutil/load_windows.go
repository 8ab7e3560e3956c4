//go:build windows

package shaderutil

import (
	"fmt"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

// LibraryName is the shader utility library loaded by Default.
const LibraryName = "d3dx9_43.dll"

func callN(fn uintptr, args ...uintptr) uintptr {
	r, _, _ := syscall.SyscallN(fn, args...)
	return r
}

type library struct {
	assemble    *windows.LazyProc
	disassemble *windows.LazyProc
}

// Load loads the library at path, or LibraryName from the system directory
// when path is empty.
func Load(path string) (Assembler, error) {
	var dll *windows.LazyDLL
	if path == "" {
		dll = windows.NewLazySystemDLL(LibraryName)
	} else {
		dll = windows.NewLazyDLL(path)
	}
	if err := dll.Load(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	lib := &library{
		assemble:    dll.NewProc("D3DXAssembleShader"),
		disassemble: dll.NewProc("D3DXDisassembleShader"),
	}
	for _, p := range []*windows.LazyProc{lib.assemble, lib.disassemble} {
		if err := p.Find(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
		}
	}
	return lib, nil
}

func (l *library) Assemble(src string) ([]uint32, error) {
	if src == "" {
		return nil, fmt.Errorf("shaderutil: empty shader source")
	}
	text := []byte(src)
	var code, errs *buffer
	r, _, _ := l.assemble.Call(
		uintptr(unsafe.Pointer(&text[0])),
		uintptr(len(text)),
		0, // pDefines
		0, // pInclude
		0, // Flags
		uintptr(unsafe.Pointer(&code)),
		uintptr(unsafe.Pointer(&errs)),
	)
	msg := bufferText(errs)
	if int32(r) < 0 {
		return nil, fmt.Errorf("shaderutil: D3DXAssembleShader: %#x: %s", uint32(r), msg)
	}
	defer code.release()
	return bytesToWords(code.bytes()), nil
}

func (l *library) Disassemble(code []uint32) (string, error) {
	if len(code) == 0 {
		return "", fmt.Errorf("shaderutil: empty shader bytecode")
	}
	var text *buffer
	r, _, _ := l.disassemble.Call(
		uintptr(unsafe.Pointer(&code[0])),
		0, // EnableColorCode
		0, // pComments
		uintptr(unsafe.Pointer(&text)),
	)
	if int32(r) < 0 {
		return "", fmt.Errorf("shaderutil: D3DXDisassembleShader: %#x", uint32(r))
	}
	return bufferText(text), nil
}
