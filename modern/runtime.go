package modern

import "github.com/gogpu/d3d8/d3dtypes"

// Runtime is the modern top-level object (IDirect3D9).
//
// Every method is a synchronous call whose error, when non-nil, is
// authoritative: callers propagate it unchanged. Failure codes are
// d3dtypes.Result values, possibly wrapped.
//
// Reference counting follows COM: AddRef and Release return the new count,
// and the object is destroyed when Release returns 0.
type Runtime interface {
	AddRef() uint32
	Release() uint32

	// QueryInterface returns the object implementing iid, with a reference
	// added, or d3dtypes.ErrNoInterface.
	QueryInterface(iid d3dtypes.GUID) (any, error)

	RegisterSoftwareDevice(initFunction uintptr) error

	GetAdapterCount() uint32
	GetAdapterIdentifier(adapter, flags uint32) (AdapterIdentifier, error)
	GetAdapterModeCount(adapter uint32, format d3dtypes.Format) uint32
	EnumAdapterModes(adapter uint32, format d3dtypes.Format, mode uint32) (d3dtypes.DisplayMode, error)
	GetAdapterDisplayMode(adapter uint32) (d3dtypes.DisplayMode, error)

	CheckDeviceType(adapter uint32, devType d3dtypes.DevType, displayFormat, backBufferFormat d3dtypes.Format, windowed bool) error
	CheckDeviceFormat(adapter uint32, devType d3dtypes.DevType, adapterFormat d3dtypes.Format, usage uint32, rtype d3dtypes.ResourceType, checkFormat d3dtypes.Format) error

	// CheckDeviceMultiSampleType reports support for the sample type and the
	// number of quality levels available for it.
	CheckDeviceMultiSampleType(adapter uint32, devType d3dtypes.DevType, surfaceFormat d3dtypes.Format, windowed bool, msType d3dtypes.MultiSampleType) (qualityLevels uint32, err error)
	CheckDepthStencilMatch(adapter uint32, devType d3dtypes.DevType, adapterFormat, renderTargetFormat, depthStencilFormat d3dtypes.Format) error

	GetDeviceCaps(adapter uint32, devType d3dtypes.DevType) (Caps, error)
	GetAdapterMonitor(adapter uint32) d3dtypes.HMONITOR

	// CreateDevice creates a device. The runtime may update pp with the
	// values it actually applied.
	CreateDevice(adapter uint32, devType d3dtypes.DevType, focusWindow d3dtypes.HWND, behaviorFlags uint32, pp *PresentParameters) (Device, error)
}

// Device is a modern rendering device (IDirect3DDevice9), reduced to the
// calls the legacy device object forwards.
type Device interface {
	AddRef() uint32
	Release() uint32
	QueryInterface(iid d3dtypes.GUID) (any, error)

	TestCooperativeLevel() error
	GetDeviceCaps() (Caps, error)
	GetDisplayMode(swapChain uint32) (d3dtypes.DisplayMode, error)
	Reset(pp *PresentParameters) error
	Present() error

	BeginScene() error
	EndScene() error
	Clear(flags uint32, color uint32, z float32, stencil uint32) error

	SetRenderState(state RenderStateType, value uint32) error
	GetRenderState(state RenderStateType) (uint32, error)
	SetSamplerState(sampler uint32, state SamplerStateType, value uint32) error
	GetSamplerState(sampler uint32, state SamplerStateType) (uint32, error)
	SetTextureStageState(stage uint32, state TextureStageStateType, value uint32) error
	GetTextureStageState(stage uint32, state TextureStageStateType) (uint32, error)

	SetFVF(fvf uint32) error
	CreateVertexShader(function []uint32) (Shader, error)
	CreatePixelShader(function []uint32) (Shader, error)

	// SetVertexShader and SetPixelShader accept nil to return to the
	// fixed-function pipeline.
	SetVertexShader(s Shader) error
	SetPixelShader(s Shader) error
}

// Shader is a compiled modern shader object.
type Shader interface {
	Release() uint32
}
