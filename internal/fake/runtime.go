// Package fake provides scriptable in-memory implementations of
// modern.Runtime and modern.Device for tests.
package fake

import (
	"sync"

	"github.com/gogpu/d3d8/d3dtypes"
	"github.com/gogpu/d3d8/modern"
)

// Adapter describes one adapter reported by a Runtime.
type Adapter struct {
	Identifier  modern.AdapterIdentifier
	Modes       map[d3dtypes.Format][]d3dtypes.DisplayMode
	DisplayMode d3dtypes.DisplayMode
	Caps        modern.Caps
	Monitor     d3dtypes.HMONITOR
}

// Runtime is a modern.Runtime backed by a list of adapters. Its reference
// count starts at 1.
type Runtime struct {
	Adapters []Adapter

	// Hooks override the default behavior when set.
	CheckDeviceFormatFunc func(adapter uint32, format d3dtypes.Format) error
	EnumAdapterModesFunc  func(adapter uint32, format d3dtypes.Format, mode uint32) error
	MultiSampleFunc       func(format d3dtypes.Format, ms d3dtypes.MultiSampleType) (uint32, error)
	CreateDeviceErr       error
	QueryInterfaceFunc    func(iid d3dtypes.GUID) (any, error)

	mu        sync.Mutex
	refs      uint32
	calls     map[string]int
	lastFlags uint32
	lastPP    modern.PresentParameters
	devices   []*Device
}

var _ modern.Runtime = (*Runtime)(nil)

// NewRuntime returns a runtime reporting the given adapters.
func NewRuntime(adapters ...Adapter) *Runtime {
	return &Runtime{Adapters: adapters, refs: 1, calls: make(map[string]int)}
}

// Calls returns how often the named method was called.
func (r *Runtime) Calls(method string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls[method]
}

// Refs returns the current reference count.
func (r *Runtime) Refs() uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.refs
}

// LastIdentifierFlags returns the flags of the last GetAdapterIdentifier call.
func (r *Runtime) LastIdentifierFlags() uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastFlags
}

// LastPresentParameters returns the parameters of the last CreateDevice call.
func (r *Runtime) LastPresentParameters() modern.PresentParameters {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastPP
}

// Devices returns every device created so far.
func (r *Runtime) Devices() []*Device {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*Device(nil), r.devices...)
}

func (r *Runtime) record(method string) {
	r.mu.Lock()
	r.calls[method]++
	r.mu.Unlock()
}

func (r *Runtime) adapter(i uint32) (*Adapter, error) {
	if int(i) >= len(r.Adapters) {
		return nil, d3dtypes.ErrInvalidCall
	}
	return &r.Adapters[i], nil
}

func (r *Runtime) AddRef() uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.refs++
	return r.refs
}

func (r *Runtime) Release() uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.refs > 0 {
		r.refs--
	}
	return r.refs
}

func (r *Runtime) QueryInterface(iid d3dtypes.GUID) (any, error) {
	r.record("QueryInterface")
	if r.QueryInterfaceFunc != nil {
		return r.QueryInterfaceFunc(iid)
	}
	if iid == modern.IIDDirect3D9 || iid == d3dtypes.IIDUnknown {
		r.AddRef()
		return r, nil
	}
	return nil, d3dtypes.ErrNoInterface
}

func (r *Runtime) RegisterSoftwareDevice(uintptr) error {
	r.record("RegisterSoftwareDevice")
	return nil
}

func (r *Runtime) GetAdapterCount() uint32 {
	r.record("GetAdapterCount")
	return uint32(len(r.Adapters))
}

func (r *Runtime) GetAdapterIdentifier(adapter, flags uint32) (modern.AdapterIdentifier, error) {
	r.record("GetAdapterIdentifier")
	r.mu.Lock()
	r.lastFlags = flags
	r.mu.Unlock()
	a, err := r.adapter(adapter)
	if err != nil {
		return modern.AdapterIdentifier{}, err
	}
	return a.Identifier, nil
}

func (r *Runtime) GetAdapterModeCount(adapter uint32, format d3dtypes.Format) uint32 {
	r.record("GetAdapterModeCount")
	a, err := r.adapter(adapter)
	if err != nil {
		return 0
	}
	return uint32(len(a.Modes[format]))
}

func (r *Runtime) EnumAdapterModes(adapter uint32, format d3dtypes.Format, mode uint32) (d3dtypes.DisplayMode, error) {
	r.record("EnumAdapterModes")
	if r.EnumAdapterModesFunc != nil {
		if err := r.EnumAdapterModesFunc(adapter, format, mode); err != nil {
			return d3dtypes.DisplayMode{}, err
		}
	}
	a, err := r.adapter(adapter)
	if err != nil {
		return d3dtypes.DisplayMode{}, err
	}
	modes := a.Modes[format]
	if int(mode) >= len(modes) {
		return d3dtypes.DisplayMode{}, d3dtypes.ErrInvalidCall
	}
	return modes[mode], nil
}

func (r *Runtime) GetAdapterDisplayMode(adapter uint32) (d3dtypes.DisplayMode, error) {
	r.record("GetAdapterDisplayMode")
	a, err := r.adapter(adapter)
	if err != nil {
		return d3dtypes.DisplayMode{}, err
	}
	return a.DisplayMode, nil
}

func (r *Runtime) CheckDeviceType(adapter uint32, _ d3dtypes.DevType, _, _ d3dtypes.Format, _ bool) error {
	r.record("CheckDeviceType")
	_, err := r.adapter(adapter)
	return err
}

func (r *Runtime) CheckDeviceFormat(adapter uint32, _ d3dtypes.DevType, _ d3dtypes.Format, _ uint32, _ d3dtypes.ResourceType, check d3dtypes.Format) error {
	r.record("CheckDeviceFormat")
	if r.CheckDeviceFormatFunc != nil {
		return r.CheckDeviceFormatFunc(adapter, check)
	}
	_, err := r.adapter(adapter)
	return err
}

func (r *Runtime) CheckDeviceMultiSampleType(adapter uint32, _ d3dtypes.DevType, format d3dtypes.Format, _ bool, ms d3dtypes.MultiSampleType) (uint32, error) {
	r.record("CheckDeviceMultiSampleType")
	if r.MultiSampleFunc != nil {
		return r.MultiSampleFunc(format, ms)
	}
	if _, err := r.adapter(adapter); err != nil {
		return 0, err
	}
	return 1, nil
}

func (r *Runtime) CheckDepthStencilMatch(adapter uint32, _ d3dtypes.DevType, _, _, _ d3dtypes.Format) error {
	r.record("CheckDepthStencilMatch")
	_, err := r.adapter(adapter)
	return err
}

func (r *Runtime) GetDeviceCaps(adapter uint32, devType d3dtypes.DevType) (modern.Caps, error) {
	r.record("GetDeviceCaps")
	a, err := r.adapter(adapter)
	if err != nil {
		return modern.Caps{}, err
	}
	caps := a.Caps
	caps.DeviceType = devType
	caps.AdapterOrdinal = adapter
	return caps, nil
}

func (r *Runtime) GetAdapterMonitor(adapter uint32) d3dtypes.HMONITOR {
	r.record("GetAdapterMonitor")
	a, err := r.adapter(adapter)
	if err != nil {
		return 0
	}
	return a.Monitor
}

func (r *Runtime) CreateDevice(adapter uint32, devType d3dtypes.DevType, _ d3dtypes.HWND, flags uint32, pp *modern.PresentParameters) (modern.Device, error) {
	r.record("CreateDevice")
	r.mu.Lock()
	r.lastPP = *pp
	r.mu.Unlock()
	if r.CreateDeviceErr != nil {
		return nil, r.CreateDeviceErr
	}
	a, err := r.adapter(adapter)
	if err != nil {
		return nil, err
	}
	caps := a.Caps
	caps.DeviceType = devType
	caps.AdapterOrdinal = adapter

	d := NewDevice()
	d.Caps = caps
	d.Mode = a.DisplayMode
	d.BehaviorFlags = flags
	d.PresentParameters = *pp

	r.mu.Lock()
	r.devices = append(r.devices, d)
	r.mu.Unlock()
	return d, nil
}
