package hal

import (
	"cmp"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgbutil"
)

// Resolution is a display size and refresh rate, independent of format.
type Resolution struct {
	Width, Height uint32
	RefreshRate   uint32
}

// ModeSource lists the display resolutions of the screen.
type ModeSource interface {
	// Modes returns the available resolutions and the current one.
	Modes() (modes []Resolution, current Resolution, err error)
}

// builtinModes is the table reported when the display cannot be queried.
var builtinModes = []Resolution{
	{640, 480, 60},
	{800, 600, 60},
	{1024, 768, 60},
	{1280, 720, 60},
	{1280, 1024, 60},
	{1600, 900, 60},
	{1920, 1080, 60},
}

// StaticModes is a fixed ModeSource. The zero value reports the built-in
// table with 1024x768 current.
type StaticModes struct {
	List    []Resolution
	Current Resolution
}

// Modes implements ModeSource.
func (s StaticModes) Modes() ([]Resolution, Resolution, error) {
	if len(s.List) == 0 {
		return builtinModes, builtinModes[2], nil
	}
	cur := s.Current
	if cur == (Resolution{}) {
		cur = s.List[0]
	}
	return s.List, cur, nil
}

// RandRModes queries the X server with the RandR extension.
type RandRModes struct{}

// Modes implements ModeSource.
func (RandRModes) Modes() ([]Resolution, Resolution, error) {
	X, err := xgbutil.NewConn()
	if err != nil {
		return nil, Resolution{}, fmt.Errorf("connect to X server: %w", err)
	}
	defer X.Conn().Close()

	if err := randr.Init(X.Conn()); err != nil {
		return nil, Resolution{}, fmt.Errorf("randr init: %w", err)
	}
	res, err := randr.GetScreenResources(X.Conn(), X.RootWin()).Reply()
	if err != nil {
		return nil, Resolution{}, fmt.Errorf("screen resources: %w", err)
	}

	byID := make(map[uint32]Resolution, len(res.Modes))
	var modes []Resolution
	for _, m := range res.Modes {
		r := Resolution{Width: uint32(m.Width), Height: uint32(m.Height), RefreshRate: refreshRate(m)}
		byID[m.Id] = r
		if !slices.Contains(modes, r) {
			modes = append(modes, r)
		}
	}
	if len(modes) == 0 {
		return nil, Resolution{}, errors.New("randr reported no modes")
	}
	slices.SortFunc(modes, compareResolution)

	current := modes[len(modes)-1]
	for _, crtc := range res.Crtcs {
		info, err := randr.GetCrtcInfo(X.Conn(), crtc, res.ConfigTimestamp).Reply()
		if err != nil || info.Width == 0 || len(info.Outputs) == 0 {
			continue
		}
		if r, ok := byID[uint32(info.Mode)]; ok {
			current = r
			break
		}
	}
	return modes, current, nil
}

func refreshRate(m randr.ModeInfo) uint32 {
	dots := uint32(m.Htotal) * uint32(m.Vtotal)
	if dots == 0 {
		return 0
	}
	return (m.DotClock + dots/2) / dots
}

func compareResolution(a, b Resolution) int {
	return cmp.Or(
		cmp.Compare(a.Width, b.Width),
		cmp.Compare(a.Height, b.Height),
		cmp.Compare(a.RefreshRate, b.RefreshRate),
	)
}

// fallbackModes tries primary and reports the built-in table if it fails.
type fallbackModes struct {
	primary ModeSource
}

func (f fallbackModes) Modes() ([]Resolution, Resolution, error) {
	modes, cur, err := f.primary.Modes()
	if err != nil {
		slogger().Debug("display mode query failed, using built-in table", "err", err)
		return StaticModes{}.Modes()
	}
	return modes, cur, nil
}

// DefaultModeSource returns RandR when DISPLAY is set, falling back to the
// built-in table.
func DefaultModeSource() ModeSource {
	if os.Getenv("DISPLAY") == "" {
		return StaticModes{}
	}
	return fallbackModes{primary: RandRModes{}}
}
