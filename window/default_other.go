//go:build !windows && !linux && !freebsd && !openbsd && !netbsd

package window

// Default returns Nop.
func Default() Host { return Nop{} }
