//go:build windows

package window

// Default returns the Win32 host.
func Default() Host { return Win32{} }
