//go:build linux || freebsd || openbsd || netbsd

package window

import (
	"fmt"
	"sync"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/motif"
	"github.com/BurntSushi/xgbutil/xwindow"

	"github.com/gogpu/d3d8/d3dtypes"
)

// X11 is a Host backed by an X server connection opened on first use.
type X11 struct {
	once sync.Once
	xu   *xgbutil.XUtil
	err  error
}

var _ Host = (*X11)(nil)

// NewX11 returns an X11 host. The connection is opened lazily.
func NewX11() *X11 { return &X11{} }

func (h *X11) conn() (*xgbutil.XUtil, error) {
	h.once.Do(func() {
		h.xu, h.err = xgbutil.NewConn()
		if h.err != nil {
			h.err = fmt.Errorf("window: connect to X server: %w", h.err)
		}
	})
	return h.xu, h.err
}

// ScreenSize returns the default screen size.
func (h *X11) ScreenSize() (int, int, error) {
	xu, err := h.conn()
	if err != nil {
		return 0, 0, err
	}
	s := xu.Screen()
	return int(s.WidthInPixels), int(s.HeightInPixels), nil
}

// Parent returns focus unchanged: X11 clients hand over their top-level
// window, and its tree parent is the window manager frame.
func (h *X11) Parent(focus d3dtypes.HWND) d3dtypes.HWND { return focus }

// Apply removes decorations from borderless windows and, when p.Move is set,
// moves the window and resizes borderless ones.
func (h *X11) Apply(hwnd d3dtypes.HWND, p Placement) error {
	xu, err := h.conn()
	if err != nil {
		return err
	}
	win := xproto.Window(hwnd)

	if p.Borderless {
		hints := &motif.Hints{Flags: motif.HintDecorations, Decoration: motif.DecorationNone}
		if err := motif.WmHintsSet(xu, win, hints); err != nil {
			return fmt.Errorf("window: set motif hints: %w", err)
		}
	}

	if p.Move {
		h.move(xu, win, p)
	}

	if p.ShowInTaskbar {
		if err := ewmh.WmStateReq(xu, win, ewmh.StateRemove, "_NET_WM_STATE_SKIP_TASKBAR"); err != nil {
			return fmt.Errorf("window: show in taskbar: %w", err)
		}
	}
	return nil
}

func (h *X11) move(xu *xgbutil.XUtil, win xproto.Window, p Placement) {
	x := p.X
	if !p.Borderless {
		if ext, err := ewmh.FrameExtentsGet(xu, win); err == nil {
			x = max(0, x-int(ext.Left))
		}
	}

	w := xwindow.New(xu, win)
	if p.Resize {
		if err := ewmh.MoveresizeWindow(xu, win, x, p.Y, p.Width, p.Height); err != nil {
			w.MoveResize(x, p.Y, p.Width, p.Height)
		}
		return
	}
	w.Move(x, p.Y)
}

// Close disconnects from the X server if connected.
func (h *X11) Close() {
	if h.xu != nil {
		h.xu.Conn().Close()
	}
}
