//go:build !windows && !darwin && !linux

package shaderutil

// LibraryName is empty: no shader utility library exists on this platform.
const LibraryName = ""

// Load always fails on this platform.
func Load(string) (Assembler, error) {
	return nil, ErrUnavailable
}
