// Package window applies the host window policy for windowed legacy
// devices: centering on the screen, optional borderless styling and taskbar
// visibility.
package window

import "github.com/gogpu/d3d8/d3dtypes"

// Placement is where and how a device window is shown.
type Placement struct {
	X, Y          int
	Width, Height int

	// Move is false when the window keeps its position and size and only
	// its style changes.
	Move bool
	// Resize is false for bordered windows, which keep their size and
	// only move.
	Resize        bool
	Borderless    bool
	ShowInTaskbar bool
}

// Plan centers a back buffer of backW x backH on a screenW x screenH screen.
// Borderless windows are placed at the centered origin and sized to the back
// buffer. Bordered windows keep their size and are moved to the top edge at
// the centered column; hosts shift them left by the frame width.
func Plan(screenW, screenH, backW, backH int, borderless bool) Placement {
	p := Placement{
		X:          max(0, (screenW-backW)/2),
		Y:          max(0, (screenH-backH)/2),
		Width:      backW,
		Height:     backH,
		Move:       true,
		Resize:     borderless,
		Borderless: borderless,
	}
	if !borderless {
		p.Y = 0
	}
	return p
}

// Host is the window system the device window lives in.
type Host interface {
	// ScreenSize returns the primary screen size in pixels.
	ScreenSize() (width, height int, err error)
	// Parent returns the top-level window that owns focus.
	Parent(focus d3dtypes.HWND) d3dtypes.HWND
	// Apply styles win, and moves it when p.Move is set.
	Apply(win d3dtypes.HWND, p Placement) error
}

// Nop is a Host that reports a zero screen and changes nothing.
type Nop struct{}

var _ Host = Nop{}

func (Nop) ScreenSize() (int, int, error)            { return 0, 0, nil }
func (Nop) Parent(focus d3dtypes.HWND) d3dtypes.HWND { return focus }
func (Nop) Apply(d3dtypes.HWND, Placement) error     { return nil }
