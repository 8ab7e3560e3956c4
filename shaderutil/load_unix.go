//go:build darwin || linux

package shaderutil

import (
	"fmt"

	"github.com/ebitengine/purego"
)

// LibraryName is the shader utility library loaded by Default.
const LibraryName = "libd3dx9.so"

func callN(fn uintptr, args ...uintptr) uintptr {
	r, _, _ := purego.SyscallN(fn, args...)
	return r
}

type library struct {
	assemble    func(src *byte, n uint32, defines, include uintptr, flags uint32, code, errs **buffer) int32
	disassemble func(code *uint32, colorCode int32, comments uintptr, text **buffer) int32
}

// Load loads the library at path, or LibraryName when path is empty.
func Load(path string) (Assembler, error) {
	if path == "" {
		path = LibraryName
	}
	handle, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, fmt.Errorf("%w: purego dlopen %s: %w", ErrUnavailable, path, err)
	}
	for _, sym := range []string{"D3DXAssembleShader", "D3DXDisassembleShader"} {
		if _, err := purego.Dlsym(handle, sym); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrUnavailable, sym, err)
		}
	}
	lib := &library{}
	purego.RegisterLibFunc(&lib.assemble, handle, "D3DXAssembleShader")
	purego.RegisterLibFunc(&lib.disassemble, handle, "D3DXDisassembleShader")
	return lib, nil
}

func (l *library) Assemble(src string) ([]uint32, error) {
	if src == "" {
		return nil, fmt.Errorf("shaderutil: empty shader source")
	}
	text := []byte(src)
	var code, errs *buffer
	r := l.assemble(&text[0], uint32(len(text)), 0, 0, 0, &code, &errs)
	msg := bufferText(errs)
	if r < 0 {
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
	if r := l.disassemble(&code[0], 0, 0, &text); r < 0 {
		return "", fmt.Errorf("shaderutil: D3DXDisassembleShader: %#x", uint32(r))
	}
	return bufferText(text), nil
}
