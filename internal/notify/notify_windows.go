//go:build windows

package notify

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

const mbIconWarning = 0x00000030

var (
	user32         = windows.NewLazySystemDLL("user32.dll")
	procMessageBox = user32.NewProc("MessageBoxW")
)

type messageBox struct{}

// System returns the platform notifier: a warning message box.
func System() Notifier { return messageBox{} }

func (messageBox) Warn(title, message string) {
	t, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return
	}
	m, err := windows.UTF16PtrFromString(message)
	if err != nil {
		return
	}
	procMessageBox.Call(0, uintptr(unsafe.Pointer(m)), uintptr(unsafe.Pointer(t)), mbIconWarning)
}
