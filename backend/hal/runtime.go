package hal

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gogpu/gputypes"
	gpuhal "github.com/gogpu/wgpu/hal"

	"github.com/gogpu/d3d8/backend"
	"github.com/gogpu/d3d8/d3dtypes"
	"github.com/gogpu/d3d8/legacy"
	"github.com/gogpu/d3d8/modern"
)

// Runtime is a modern.Runtime over a HAL instance. It owns the instance and
// destroys it on its final release.
type Runtime struct {
	instance gpuhal.Instance
	adapters []gpuhal.ExposedAdapter

	modes   []Resolution
	current Resolution

	refs      atomic.Int32
	destroyed sync.Once
}

var _ modern.Runtime = (*Runtime)(nil)

// NewRuntime enumerates the adapters of instance and queries modes once.
// The returned runtime has a reference count of 1.
func NewRuntime(instance gpuhal.Instance, modes ModeSource) (*Runtime, error) {
	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		return nil, fmt.Errorf("%w: no GPU adapters found", backend.ErrNoRuntime)
	}
	list, current, err := modes.Modes()
	if err != nil {
		return nil, fmt.Errorf("%w: display modes: %w", backend.ErrNoRuntime, err)
	}

	rt := &Runtime{
		instance: instance,
		adapters: adapters,
		modes:    list,
		current:  current,
	}
	rt.refs.Store(1)
	for i := range adapters {
		slogger().Debug("hal adapter", "index", i, "name", adapters[i].Info.Name, "type", adapters[i].Info.DeviceType)
	}
	return rt, nil
}

func (r *Runtime) AddRef() uint32 {
	return uint32(r.refs.Add(1))
}

func (r *Runtime) Release() uint32 {
	n := r.refs.Add(-1)
	if n <= 0 {
		r.destroyed.Do(func() {
			slogger().Debug("hal runtime destroyed")
			r.instance.Destroy()
		})
		return 0
	}
	return uint32(n)
}

func (r *Runtime) QueryInterface(iid d3dtypes.GUID) (any, error) {
	if iid == modern.IIDDirect3D9 || iid == d3dtypes.IIDUnknown {
		r.AddRef()
		return r, nil
	}
	return nil, d3dtypes.ErrNoInterface
}

// RegisterSoftwareDevice is not supported.
func (r *Runtime) RegisterSoftwareDevice(uintptr) error {
	return d3dtypes.ErrNotAvailable
}

func (r *Runtime) GetAdapterCount() uint32 {
	return uint32(len(r.adapters))
}

func (r *Runtime) adapter(i uint32) (*gpuhal.ExposedAdapter, error) {
	if int(i) >= len(r.adapters) {
		return nil, d3dtypes.ErrInvalidCall
	}
	return &r.adapters[i], nil
}

// GetAdapterIdentifier describes an adapter. HAL adapters carry no PCI
// identifiers or driver certification, so those fields are zero whatever
// the flags.
func (r *Runtime) GetAdapterIdentifier(adapter, _ uint32) (modern.AdapterIdentifier, error) {
	a, err := r.adapter(adapter)
	if err != nil {
		return modern.AdapterIdentifier{}, err
	}
	var id modern.AdapterIdentifier
	legacy.EncodeString(id.Description[:], a.Info.Name)
	legacy.EncodeString(id.Driver[:], a.Info.Driver)
	legacy.EncodeString(id.DeviceName[:], fmt.Sprintf(`\\.\DISPLAY%d`, adapter+1))
	id.DeviceIdentifier = d3dtypes.GUID{Data1: 0x8d3d8000 | adapter}
	return id, nil
}

func (r *Runtime) GetAdapterModeCount(adapter uint32, format d3dtypes.Format) uint32 {
	if _, err := r.adapter(adapter); err != nil || !isDisplayFormat(format) {
		return 0
	}
	return uint32(len(r.modes))
}

func (r *Runtime) EnumAdapterModes(adapter uint32, format d3dtypes.Format, mode uint32) (d3dtypes.DisplayMode, error) {
	if _, err := r.adapter(adapter); err != nil {
		return d3dtypes.DisplayMode{}, err
	}
	if !isDisplayFormat(format) || int(mode) >= len(r.modes) {
		return d3dtypes.DisplayMode{}, d3dtypes.ErrInvalidCall
	}
	return displayMode(r.modes[mode], format), nil
}

func (r *Runtime) GetAdapterDisplayMode(adapter uint32) (d3dtypes.DisplayMode, error) {
	if _, err := r.adapter(adapter); err != nil {
		return d3dtypes.DisplayMode{}, err
	}
	return displayMode(r.current, d3dtypes.FormatX8R8G8B8), nil
}

func displayMode(res Resolution, f d3dtypes.Format) d3dtypes.DisplayMode {
	return d3dtypes.DisplayMode{Width: res.Width, Height: res.Height, RefreshRate: res.RefreshRate, Format: f}
}

func (r *Runtime) CheckDeviceType(adapter uint32, devType d3dtypes.DevType, displayFormat, backBufferFormat d3dtypes.Format, _ bool) error {
	if err := r.checkDevice(adapter, devType); err != nil {
		return err
	}
	if !isDisplayFormat(displayFormat) || !isRenderFormat(backBufferFormat) {
		return d3dtypes.ErrNotAvailable
	}
	return nil
}

func (r *Runtime) CheckDeviceFormat(adapter uint32, devType d3dtypes.DevType, _ d3dtypes.Format, _ uint32, _ d3dtypes.ResourceType, checkFormat d3dtypes.Format) error {
	if err := r.checkDevice(adapter, devType); err != nil {
		return err
	}
	if _, ok := textureFormat(checkFormat); !ok {
		return d3dtypes.ErrNotAvailable
	}
	return nil
}

// CheckDeviceMultiSampleType accepts the sample counts WebGPU guarantees: 1
// and 4, each with a single quality level.
func (r *Runtime) CheckDeviceMultiSampleType(adapter uint32, devType d3dtypes.DevType, surfaceFormat d3dtypes.Format, _ bool, msType d3dtypes.MultiSampleType) (uint32, error) {
	if err := r.checkDevice(adapter, devType); err != nil {
		return 0, err
	}
	if _, ok := textureFormat(surfaceFormat); !ok {
		return 0, d3dtypes.ErrNotAvailable
	}
	switch msType {
	case d3dtypes.MultiSampleNone, d3dtypes.MultiSample4:
		return 1, nil
	default:
		return 0, d3dtypes.ErrNotAvailable
	}
}

func (r *Runtime) CheckDepthStencilMatch(adapter uint32, devType d3dtypes.DevType, _, renderTargetFormat, depthStencilFormat d3dtypes.Format) error {
	if err := r.checkDevice(adapter, devType); err != nil {
		return err
	}
	if !isRenderFormat(renderTargetFormat) || !isDepthFormat(depthStencilFormat) {
		return d3dtypes.ErrNotAvailable
	}
	return nil
}

func (r *Runtime) GetDeviceCaps(adapter uint32, devType d3dtypes.DevType) (modern.Caps, error) {
	if err := r.checkDevice(adapter, devType); err != nil {
		return modern.Caps{}, err
	}
	return deviceCaps(adapter, devType, gputypes.DefaultLimits()), nil
}

// GetAdapterMonitor returns a synthetic handle, unique per adapter.
func (r *Runtime) GetAdapterMonitor(adapter uint32) d3dtypes.HMONITOR {
	if _, err := r.adapter(adapter); err != nil {
		return 0
	}
	return d3dtypes.HMONITOR(adapter + 1)
}

// checkDevice accepts only the hardware device type on a known adapter.
func (r *Runtime) checkDevice(adapter uint32, devType d3dtypes.DevType) error {
	if _, err := r.adapter(adapter); err != nil {
		return err
	}
	if devType != d3dtypes.DevTypeHAL {
		return d3dtypes.ErrNotAvailable
	}
	return nil
}

// CreateDevice opens the adapter. Windowed devices with an unknown back
// buffer format or a zero size take them from the current display mode;
// pp is updated with the values applied.
func (r *Runtime) CreateDevice(adapter uint32, devType d3dtypes.DevType, focus d3dtypes.HWND, behaviorFlags uint32, pp *modern.PresentParameters) (modern.Device, error) {
	if pp == nil {
		return nil, d3dtypes.ErrInvalidCall
	}
	if err := r.checkDevice(adapter, devType); err != nil {
		return nil, err
	}
	if err := r.applyDefaults(pp); err != nil {
		return nil, err
	}
	if _, err := r.CheckDeviceMultiSampleType(adapter, devType, pp.BackBufferFormat, pp.Windowed.True(), pp.MultiSampleType); err != nil {
		return nil, err
	}

	a := &r.adapters[adapter]
	open, err := a.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", d3dtypes.ErrNotAvailable, a.Info.Name, err)
	}

	dev, err := newDevice(r, open.Device, adapter, devType, behaviorFlags, pp)
	if err != nil {
		open.Device.Destroy()
		return nil, err
	}
	slogger().Info("hal device created", "adapter", a.Info.Name, "focus", focus,
		"width", pp.BackBufferWidth, "height", pp.BackBufferHeight)
	return dev, nil
}

func (r *Runtime) applyDefaults(pp *modern.PresentParameters) error {
	if pp.Windowed.True() {
		if pp.BackBufferFormat == d3dtypes.FormatUnknown {
			pp.BackBufferFormat = d3dtypes.FormatX8R8G8B8
		}
		if pp.BackBufferWidth == 0 {
			pp.BackBufferWidth = r.current.Width
		}
		if pp.BackBufferHeight == 0 {
			pp.BackBufferHeight = r.current.Height
		}
	}
	if pp.BackBufferCount == 0 {
		pp.BackBufferCount = 1
	}
	if !isRenderFormat(pp.BackBufferFormat) {
		return d3dtypes.ErrInvalidCall
	}
	if pp.EnableAutoDepthStencil.True() && !isDepthFormat(pp.AutoDepthStencilFormat) {
		return d3dtypes.ErrInvalidCall
	}
	return nil
}
