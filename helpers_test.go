package d3d8

import (
	"testing"

	"github.com/gogpu/d3d8/d3dtypes"
	"github.com/gogpu/d3d8/internal/fake"
	"github.com/gogpu/d3d8/legacy"
	"github.com/gogpu/d3d8/modern"
	"github.com/gogpu/d3d8/shaderutil"
	"github.com/gogpu/d3d8/window"
)

var (
	argbModes = []d3dtypes.DisplayMode{
		{Width: 640, Height: 480, RefreshRate: 60, Format: d3dtypes.FormatA8R8G8B8},
		{Width: 800, Height: 600, RefreshRate: 60, Format: d3dtypes.FormatA8R8G8B8},
		{Width: 1024, Height: 768, RefreshRate: 75, Format: d3dtypes.FormatA8R8G8B8},
	}
	rgb565Modes = []d3dtypes.DisplayMode{
		{Width: 640, Height: 480, RefreshRate: 60, Format: d3dtypes.FormatR5G6B5},
		{Width: 800, Height: 600, RefreshRate: 60, Format: d3dtypes.FormatR5G6B5},
	}
)

// newTestRuntime returns a runtime with one adapter reporting three ARGB
// modes and two R5G6B5 modes.
func newTestRuntime() *fake.Runtime {
	return fake.NewRuntime(fake.Adapter{
		Modes: map[d3dtypes.Format][]d3dtypes.DisplayMode{
			d3dtypes.FormatA8R8G8B8: argbModes,
			d3dtypes.FormatR5G6B5:   rgb565Modes,
			// Not a catalog format.
			d3dtypes.FormatA2R10G10B10: {{Width: 1920, Height: 1080, RefreshRate: 60, Format: d3dtypes.FormatA2R10G10B10}},
		},
		DisplayMode: argbModes[1],
		Caps: modern.Caps{
			MaxTextureWidth:       2048,
			MaxTextureHeight:      2048,
			VertexShaderVersion:   0xFFFE0101,
			MaxVertexShaderConst:  96,
			PixelShaderVersion:    0xFFFF0104,
			PixelShader1xMaxValue: 8,
		},
		Monitor: 0x5151,
	})
}

// recordingHost is a window.Host that records placements.
type recordingHost struct {
	width, height int
	applied       []window.Placement
	windows       []d3dtypes.HWND
}

func (h *recordingHost) ScreenSize() (int, int, error)            { return h.width, h.height, nil }
func (h *recordingHost) Parent(focus d3dtypes.HWND) d3dtypes.HWND { return focus + 1 }
func (h *recordingHost) Apply(win d3dtypes.HWND, p window.Placement) error {
	h.windows = append(h.windows, win)
	h.applied = append(h.applied, p)
	return nil
}

// newTestFactory returns a factory over rt with a no-op window host and no
// shader library, unless overridden by opts.
func newTestFactory(t *testing.T, rt modern.Runtime, opts ...Option) *Direct3D8 {
	t.Helper()
	base := []Option{
		WithWindowHost(window.Nop{}),
		WithShaderUtility(shaderutil.Disabled()),
		WithNotifier(func(title, message string) { t.Errorf("unexpected warning %s: %s", title, message) }),
	}
	d := Create(legacy.SDKVersion, rt, append(base, opts...)...)
	if d == nil {
		t.Fatal("Create() = nil")
	}
	return d
}

func fullscreenParams() legacy.PresentParameters {
	return legacy.PresentParameters{
		BackBufferWidth:                800,
		BackBufferHeight:               600,
		BackBufferFormat:               d3dtypes.FormatX8R8G8B8,
		BackBufferCount:                1,
		SwapEffect:                     d3dtypes.SwapEffectDiscard,
		DeviceWindow:                   0x100,
		EnableAutoDepthStencil:         1,
		AutoDepthStencilFormat:         d3dtypes.FormatD24S8,
		FullScreenRefreshRateInHz:      60,
		FullScreenPresentationInterval: modern.PresentIntervalOne,
	}
}

// mustCreateDevice creates a device or fails the test.
func mustCreateDevice(t *testing.T, d *Direct3D8, pp legacy.PresentParameters) *Device {
	t.Helper()
	var dev *Device
	if err := d.CreateDevice(0, d3dtypes.DevTypeHAL, 0x100, 0, &pp, &dev); err != nil {
		t.Fatalf("CreateDevice() error = %v", err)
	}
	if dev == nil {
		t.Fatal("CreateDevice() returned nil device")
	}
	return dev
}
