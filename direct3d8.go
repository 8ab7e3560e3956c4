package d3d8

import (
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/d3d8/convert"
	"github.com/gogpu/d3d8/d3dtypes"
	"github.com/gogpu/d3d8/internal/tracelog"
	"github.com/gogpu/d3d8/legacy"
	"github.com/gogpu/d3d8/modern"
	"github.com/gogpu/d3d8/shaderutil"
	"github.com/gogpu/d3d8/window"
)

// Direct3D8 is the legacy top-level object. It enumerates adapters and
// display modes, answers capability queries and creates devices, forwarding
// to a modern runtime.
//
// Direct3D8 keeps no reference count of its own: AddRef and Release forward
// to the wrapped runtime, and the factory is destroyed when the runtime
// count reaches zero. Methods must not be called concurrently on the same
// factory.
type Direct3D8 struct {
	proxy   modern.Runtime
	catalog *catalog

	config  Config
	log     *slog.Logger
	trace   *tracelog.Log
	host    window.Host
	shaders *shaderutil.Capability

	destroyed atomic.Bool
}

func newDirect3D8(rt modern.Runtime, o options) *Direct3D8 {
	d := &Direct3D8{
		proxy:   rt,
		config:  o.config,
		log:     o.logger,
		trace:   o.trace,
		host:    o.host,
		shaders: o.shaders,
	}
	d.catalog = buildCatalog(rt, d.log)
	d.log.Info("factory created", "adapters", d.catalog.adapterCount())
	return d
}

// Runtime returns the wrapped modern runtime.
func (d *Direct3D8) Runtime() modern.Runtime {
	return d.proxy
}

// Config returns the configuration the factory was created with.
func (d *Direct3D8) Config() Config {
	return d.config
}

// QueryInterface returns the factory itself for the legacy factory and
// IUnknown identities, adding a reference. Other identities are mapped to
// their modern counterparts and answered by the runtime.
func (d *Direct3D8) QueryInterface(iid d3dtypes.GUID, out *any) error {
	if out == nil {
		return d3dtypes.ErrPointer
	}
	if iid == legacy.IIDDirect3D8 || iid == d3dtypes.IIDUnknown {
		d.AddRef()
		*out = d
		return nil
	}

	obj, err := d.proxy.QueryInterface(convert.IID(iid))
	if err != nil {
		*out = nil
		return err
	}
	*out = obj
	return nil
}

// AddRef adds a reference to the wrapped runtime and returns its new count.
func (d *Direct3D8) AddRef() uint32 {
	return d.proxy.AddRef()
}

// Release releases a reference on the wrapped runtime and returns its new
// count. The factory is destroyed when the count reaches zero.
func (d *Direct3D8) Release() uint32 {
	n := d.proxy.Release()
	if n == 0 {
		d.destroy()
	}
	return n
}

func (d *Direct3D8) destroy() {
	if d.destroyed.Swap(true) {
		return
	}
	d.log.Info("factory destroyed")
	d.catalog = &catalog{}
	if d.trace != nil {
		if err := d.trace.Close(); err != nil {
			d.log.Warn("closing trace file", "err", err)
		}
	}
}

// RegisterSoftwareDevice forwards to the runtime.
func (d *Direct3D8) RegisterSoftwareDevice(initFunction uintptr) error {
	return d.proxy.RegisterSoftwareDevice(initFunction)
}

// GetAdapterCount returns the number of adapters, at most MaxAdapters.
func (d *Direct3D8) GetAdapterCount() uint32 {
	return d.catalog.adapterCount()
}

// GetAdapterIdentifier describes an adapter. The legacy flag that skips
// driver validation is translated to the modern flag that requests it.
func (d *Direct3D8) GetAdapterIdentifier(adapter, flags uint32, out *legacy.AdapterIdentifier) error {
	if out == nil {
		return d3dtypes.ErrInvalidCall
	}

	id, err := d.proxy.GetAdapterIdentifier(adapter, convert.EnumFlags(flags))
	if err != nil {
		return err
	}
	convert.AdapterIdentifier(out, &id)
	return nil
}

// GetAdapterModeCount returns the number of cataloged display modes of an
// adapter, or 0 for an unknown adapter.
func (d *Direct3D8) GetAdapterModeCount(adapter uint32) uint32 {
	return d.catalog.modeCount(adapter)
}

// EnumAdapterModes returns a cataloged display mode. Modes are ordered by
// format (A8R8G8B8, X8R8G8B8, R5G6B5, X1R5G5B5, A1R5G5B5), then in runtime
// order.
func (d *Direct3D8) EnumAdapterModes(adapter, mode uint32, out *d3dtypes.DisplayMode) error {
	if out == nil {
		return d3dtypes.ErrInvalidCall
	}
	m, ok := d.catalog.mode(adapter, mode)
	if !ok {
		return d3dtypes.ErrInvalidCall
	}
	*out = m
	return nil
}

// GetAdapterDisplayMode returns the current display mode of an adapter.
func (d *Direct3D8) GetAdapterDisplayMode(adapter uint32, out *d3dtypes.DisplayMode) error {
	if out == nil {
		return d3dtypes.ErrInvalidCall
	}
	m, err := d.proxy.GetAdapterDisplayMode(adapter)
	if err != nil {
		return err
	}
	*out = m
	return nil
}

// CheckDeviceType forwards to the runtime.
func (d *Direct3D8) CheckDeviceType(adapter uint32, devType d3dtypes.DevType, displayFormat, backBufferFormat d3dtypes.Format, windowed bool) error {
	return d.proxy.CheckDeviceType(adapter, devType, displayFormat, backBufferFormat, windowed)
}

// CheckDeviceFormat forwards to the runtime, except that the packed and
// planar YUV video formats are always reported unavailable.
func (d *Direct3D8) CheckDeviceFormat(adapter uint32, devType d3dtypes.DevType, adapterFormat d3dtypes.Format, usage uint32, rtype d3dtypes.ResourceType, checkFormat d3dtypes.Format) error {
	if convert.IsVideoFormat(checkFormat) {
		return d3dtypes.ErrNotAvailable
	}
	return d.proxy.CheckDeviceFormat(adapter, devType, adapterFormat, usage, rtype, checkFormat)
}

// CheckDeviceMultiSampleType forwards to the runtime. The legacy interface
// has no quality levels, so the count is discarded.
func (d *Direct3D8) CheckDeviceMultiSampleType(adapter uint32, devType d3dtypes.DevType, surfaceFormat d3dtypes.Format, windowed bool, msType d3dtypes.MultiSampleType) error {
	_, err := d.proxy.CheckDeviceMultiSampleType(adapter, devType, surfaceFormat, windowed, msType)
	return err
}

// CheckDepthStencilMatch forwards to the runtime.
func (d *Direct3D8) CheckDepthStencilMatch(adapter uint32, devType d3dtypes.DevType, adapterFormat, renderTargetFormat, depthStencilFormat d3dtypes.Format) error {
	return d.proxy.CheckDepthStencilMatch(adapter, devType, adapterFormat, renderTargetFormat, depthStencilFormat)
}

// GetDeviceCaps returns the legacy capabilities of an adapter. Shader
// versions read as zero when the shader utility library is unavailable.
func (d *Direct3D8) GetDeviceCaps(adapter uint32, devType d3dtypes.DevType, out *legacy.Caps) error {
	if out == nil {
		return d3dtypes.ErrInvalidCall
	}

	caps, err := d.proxy.GetDeviceCaps(adapter, devType)
	if err != nil {
		return err
	}
	convert.Caps(out, &caps)
	d.maskShaderCaps(out)
	return nil
}

func (d *Direct3D8) maskShaderCaps(caps *legacy.Caps) {
	if d.shaders.Available() {
		return
	}
	caps.VertexShaderVersion = 0
	caps.MaxVertexShaderConst = 0
	caps.PixelShaderVersion = 0
}

// GetAdapterMonitor forwards to the runtime.
func (d *Direct3D8) GetAdapterMonitor(adapter uint32) d3dtypes.HMONITOR {
	return d.proxy.GetAdapterMonitor(adapter)
}
