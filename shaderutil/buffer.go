//go:build windows || darwin || linux

package shaderutil

import "unsafe"

// buffer is the library's reference-counted byte buffer object.
type buffer struct {
	vtbl *struct {
		QueryInterface   uintptr
		AddRef           uintptr
		Release          uintptr
		GetBufferPointer uintptr
		GetBufferSize    uintptr
	}
}

func (b *buffer) bytes() []byte {
	ptr := callN(b.vtbl.GetBufferPointer, uintptr(unsafe.Pointer(b)))
	n := callN(b.vtbl.GetBufferSize, uintptr(unsafe.Pointer(b)))
	if ptr == 0 || n == 0 {
		return nil
	}
	src := unsafe.Slice((*byte)(unsafe.Pointer(ptr)), n)
	return append([]byte(nil), src...)
}

func (b *buffer) release() {
	callN(b.vtbl.Release, uintptr(unsafe.Pointer(b)))
}

func bytesToWords(b []byte) []uint32 {
	words := make([]uint32, len(b)/4)
	for i := range words {
		words[i] = uint32(b[4*i]) | uint32(b[4*i+1])<<8 | uint32(b[4*i+2])<<16 | uint32(b[4*i+3])<<24
	}
	return words
}

// bufferText returns a buffer's NUL-terminated text and releases it.
func bufferText(b *buffer) string {
	if b == nil {
		return ""
	}
	defer b.release()
	data := b.bytes()
	for i, c := range data {
		if c == 0 {
			data = data[:i]
			break
		}
	}
	return string(data)
}
