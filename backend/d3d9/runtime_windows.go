//go:build windows

package d3d9

import (
	"github.com/gonutz/d3d9"

	"github.com/gogpu/d3d8/d3dtypes"
	"github.com/gogpu/d3d8/modern"
)

// Runtime is a modern.Runtime over the system IDirect3D9 object.
type Runtime struct {
	obj *d3d9.Direct3D
}

var _ modern.Runtime = (*Runtime)(nil)

func (r *Runtime) AddRef() uint32  { return r.obj.AddRef() }
func (r *Runtime) Release() uint32 { return r.obj.Release() }

func (r *Runtime) QueryInterface(iid d3dtypes.GUID) (any, error) {
	if iid == modern.IIDDirect3D9 || iid == d3dtypes.IIDUnknown {
		r.AddRef()
		return r, nil
	}
	return nil, d3dtypes.ErrNoInterface
}

func (r *Runtime) RegisterSoftwareDevice(initFunction uintptr) error {
	return result(r.obj.RegisterSoftwareDevice(initFunction))
}

func (r *Runtime) GetAdapterCount() uint32 {
	return uint32(r.obj.GetAdapterCount())
}

func (r *Runtime) GetAdapterIdentifier(adapter, flags uint32) (modern.AdapterIdentifier, error) {
	id, err := r.obj.GetAdapterIdentifier(uint(adapter), flags)
	if err != nil {
		return modern.AdapterIdentifier{}, result(err)
	}
	return identifier(id), nil
}

func (r *Runtime) GetAdapterModeCount(adapter uint32, format d3dtypes.Format) uint32 {
	return uint32(r.obj.GetAdapterModeCount(uint(adapter), d3d9.FORMAT(format)))
}

func (r *Runtime) EnumAdapterModes(adapter uint32, format d3dtypes.Format, mode uint32) (d3dtypes.DisplayMode, error) {
	m, err := r.obj.EnumAdapterModes(uint(adapter), d3d9.FORMAT(format), uint(mode))
	if err != nil {
		return d3dtypes.DisplayMode{}, result(err)
	}
	return displayMode(m), nil
}

func (r *Runtime) GetAdapterDisplayMode(adapter uint32) (d3dtypes.DisplayMode, error) {
	m, err := r.obj.GetAdapterDisplayMode(uint(adapter))
	if err != nil {
		return d3dtypes.DisplayMode{}, result(err)
	}
	return displayMode(m), nil
}

func (r *Runtime) CheckDeviceType(adapter uint32, devType d3dtypes.DevType, displayFormat, backBufferFormat d3dtypes.Format, windowed bool) error {
	return result(r.obj.CheckDeviceType(uint(adapter), d3d9.DEVTYPE(devType),
		d3d9.FORMAT(displayFormat), d3d9.FORMAT(backBufferFormat), windowed))
}

func (r *Runtime) CheckDeviceFormat(adapter uint32, devType d3dtypes.DevType, adapterFormat d3dtypes.Format, usage uint32, rtype d3dtypes.ResourceType, checkFormat d3dtypes.Format) error {
	return result(r.obj.CheckDeviceFormat(uint(adapter), d3d9.DEVTYPE(devType),
		d3d9.FORMAT(adapterFormat), usage, d3d9.RESOURCETYPE(rtype), d3d9.FORMAT(checkFormat)))
}

func (r *Runtime) CheckDeviceMultiSampleType(adapter uint32, devType d3dtypes.DevType, surfaceFormat d3dtypes.Format, windowed bool, msType d3dtypes.MultiSampleType) (uint32, error) {
	levels, err := r.obj.CheckDeviceMultiSampleType(uint(adapter), d3d9.DEVTYPE(devType),
		d3d9.FORMAT(surfaceFormat), windowed, d3d9.MULTISAMPLE_TYPE(msType))
	return levels, result(err)
}

func (r *Runtime) CheckDepthStencilMatch(adapter uint32, devType d3dtypes.DevType, adapterFormat, renderTargetFormat, depthStencilFormat d3dtypes.Format) error {
	return result(r.obj.CheckDepthStencilMatch(uint(adapter), d3d9.DEVTYPE(devType),
		d3d9.FORMAT(adapterFormat), d3d9.FORMAT(renderTargetFormat), d3d9.FORMAT(depthStencilFormat)))
}

func (r *Runtime) GetDeviceCaps(adapter uint32, devType d3dtypes.DevType) (modern.Caps, error) {
	c, err := r.obj.GetDeviceCaps(uint(adapter), d3d9.DEVTYPE(devType))
	if err != nil {
		return modern.Caps{}, result(err)
	}
	return caps(c), nil
}

func (r *Runtime) GetAdapterMonitor(adapter uint32) d3dtypes.HMONITOR {
	return d3dtypes.HMONITOR(r.obj.GetAdapterMonitor(uint(adapter)))
}

// CreateDevice creates the device and copies the applied parameters back
// into pp.
func (r *Runtime) CreateDevice(adapter uint32, devType d3dtypes.DevType, focus d3dtypes.HWND, behaviorFlags uint32, pp *modern.PresentParameters) (modern.Device, error) {
	if pp == nil {
		return nil, d3dtypes.ErrInvalidCall
	}
	dev, applied, err := r.obj.CreateDevice(uint(adapter), d3d9.DEVTYPE(devType),
		d3d9.HWND(focus), behaviorFlags, toPresentParameters(pp))
	if err != nil {
		return nil, result(err)
	}
	fromPresentParameters(pp, applied)
	return &Device{dev: dev}, nil
}
