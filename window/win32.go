//go:build windows

package window

import (
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/gogpu/d3d8/d3dtypes"
)

const (
	smCXScreen = 0
	smCYScreen = 1

	// GWL_STYLE (-16) and GWL_EXSTYLE (-20) as sign-extended indices.
	gwlStyle   = ^uintptr(15)
	gwlExStyle = ^uintptr(19)

	wsVisible     = 0x10000000
	wsExAppWindow = 0x00040000

	swpNoSize     = 0x0001
	swpNoZOrder   = 0x0004
	swpNoActivate = 0x0010
	swpNoCopyBits = 0x0100
)

var (
	user32                = windows.NewLazySystemDLL("user32.dll")
	procGetSystemMetrics  = user32.NewProc("GetSystemMetrics")
	procGetParent         = user32.NewProc("GetParent")
	procGetWindowLong     = user32.NewProc("GetWindowLongW")
	procSetWindowLong     = user32.NewProc("SetWindowLongW")
	procAdjustWindowRect  = user32.NewProc("AdjustWindowRect")
	procSetWindowPosition = user32.NewProc("SetWindowPos")
)

// Win32 is a Host backed by user32.
type Win32 struct{}

var _ Host = Win32{}

func (Win32) ScreenSize() (int, int, error) {
	w, _, _ := procGetSystemMetrics.Call(smCXScreen)
	h, _, _ := procGetSystemMetrics.Call(smCYScreen)
	return int(int32(w)), int(int32(h)), nil
}

func (Win32) Parent(focus d3dtypes.HWND) d3dtypes.HWND {
	p, _, _ := procGetParent.Call(uintptr(focus))
	return d3dtypes.HWND(p)
}

func (Win32) Apply(hwnd d3dtypes.HWND, p Placement) error {
	win := uintptr(hwnd)
	if p.Borderless {
		procSetWindowLong.Call(win, gwlStyle, wsVisible)
	}
	if p.Move {
		if err := move(win, p); err != nil {
			return err
		}
	}
	if p.ShowInTaskbar {
		ex, _, _ := procGetWindowLong.Call(win, gwlExStyle)
		procSetWindowLong.Call(win, gwlExStyle, ex|wsExAppWindow)
	}
	return nil
}

func move(win uintptr, p Placement) error {
	if p.Resize {
		r, _, err := procSetWindowPosition.Call(win, 0,
			uintptr(p.X), uintptr(p.Y), uintptr(p.Width), uintptr(p.Height),
			swpNoActivate|swpNoCopyBits|swpNoZOrder)
		if r == 0 {
			return err
		}
		return nil
	}
	style, _, _ := procGetWindowLong.Call(win, gwlStyle)
	rect := windows.Rect{Left: int32(p.X), Top: int32(p.Y), Right: int32(p.Width), Bottom: int32(p.Height)}
	procAdjustWindowRect.Call(uintptr(unsafe.Pointer(&rect)), style, 0)
	r, _, err := procSetWindowPosition.Call(win, 0,
		uintptr(rect.Left), 0, 0, 0,
		swpNoSize|swpNoActivate|swpNoCopyBits|swpNoZOrder)
	if r == 0 {
		return err
	}
	return nil
}
