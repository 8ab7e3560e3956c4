//go:build linux || freebsd || openbsd || netbsd

package window

import "os"

// Default returns an X11 host when a display is configured, Nop otherwise.
func Default() Host {
	if os.Getenv("DISPLAY") == "" {
		return Nop{}
	}
	return NewX11()
}
