package modern

import "github.com/gogpu/d3d8/d3dtypes"

// Sizes of the fixed character arrays in AdapterIdentifier.
const (
	MaxDeviceIdentifierString = 512
	DeviceNameLength          = 32
)

// AdapterIdentifier describes an adapter (D3DADAPTER_IDENTIFIER9).
type AdapterIdentifier struct {
	Driver           [MaxDeviceIdentifierString]byte
	Description      [MaxDeviceIdentifierString]byte
	DeviceName       [DeviceNameLength]byte
	DriverVersion    int64
	VendorID         uint32
	DeviceID         uint32
	SubSysID         uint32
	Revision         uint32
	DeviceIdentifier d3dtypes.GUID
	WHQLLevel        uint32
}

// VShaderCaps20 is D3DVSHADERCAPS2_0.
type VShaderCaps20 struct {
	Caps                    uint32
	DynamicFlowControlDepth int32
	NumTemps                int32
	StaticFlowControlDepth  int32
}

// PShaderCaps20 is D3DPSHADERCAPS2_0.
type PShaderCaps20 struct {
	Caps                    uint32
	DynamicFlowControlDepth int32
	NumTemps                int32
	StaticFlowControlDepth  int32
	NumInstructionSlots     int32
}

// Caps is the modern device capability descriptor (D3DCAPS9).
// Field order matches the C declaration exactly.
type Caps struct {
	DeviceType     d3dtypes.DevType
	AdapterOrdinal uint32

	Caps                  uint32
	Caps2                 uint32
	Caps3                 uint32
	PresentationIntervals uint32

	CursorCaps uint32
	DevCaps    uint32

	PrimitiveMiscCaps        uint32
	RasterCaps               uint32
	ZCmpCaps                 uint32
	SrcBlendCaps             uint32
	DestBlendCaps            uint32
	AlphaCmpCaps             uint32
	ShadeCaps                uint32
	TextureCaps              uint32
	TextureFilterCaps        uint32
	CubeTextureFilterCaps    uint32
	VolumeTextureFilterCaps  uint32
	TextureAddressCaps       uint32
	VolumeTextureAddressCaps uint32

	LineCaps uint32

	MaxTextureWidth       uint32
	MaxTextureHeight      uint32
	MaxVolumeExtent       uint32
	MaxTextureRepeat      uint32
	MaxTextureAspectRatio uint32
	MaxAnisotropy         uint32
	MaxVertexW            float32

	GuardBandLeft   float32
	GuardBandTop    float32
	GuardBandRight  float32
	GuardBandBottom float32

	ExtentsAdjust float32
	StencilCaps   uint32

	FVFCaps                 uint32
	TextureOpCaps           uint32
	MaxTextureBlendStages   uint32
	MaxSimultaneousTextures uint32

	VertexProcessingCaps      uint32
	MaxActiveLights           uint32
	MaxUserClipPlanes         uint32
	MaxVertexBlendMatrices    uint32
	MaxVertexBlendMatrixIndex uint32

	MaxPointSize float32

	MaxPrimitiveCount uint32
	MaxVertexIndex    uint32
	MaxStreams        uint32
	MaxStreamStride   uint32

	VertexShaderVersion  uint32
	MaxVertexShaderConst uint32

	PixelShaderVersion    uint32
	PixelShader1xMaxValue float32

	// Fields below have no legacy counterpart.

	DevCaps2                          uint32
	MaxNpatchTessellationLevel        float32
	Reserved5                         uint32
	MasterAdapterOrdinal              uint32
	AdapterOrdinalInGroup             uint32
	NumberOfAdaptersInGroup           uint32
	DeclTypes                         uint32
	NumSimultaneousRTs                uint32
	StretchRectFilterCaps             uint32
	VS20Caps                          VShaderCaps20
	PS20Caps                          PShaderCaps20
	VertexTextureFilterCaps           uint32
	MaxVShaderInstructionsExecuted    uint32
	MaxPShaderInstructionsExecuted    uint32
	MaxVertexShader30InstructionSlots uint32
	MaxPixelShader30InstructionSlots  uint32
}

// PresentParameters is the modern presentation descriptor
// (D3DPRESENT_PARAMETERS in the newer headers).
type PresentParameters struct {
	BackBufferWidth           uint32
	BackBufferHeight          uint32
	BackBufferFormat          d3dtypes.Format
	BackBufferCount           uint32
	MultiSampleType           d3dtypes.MultiSampleType
	MultiSampleQuality        uint32
	SwapEffect                d3dtypes.SwapEffect
	DeviceWindow              d3dtypes.HWND
	Windowed                  d3dtypes.Bool
	EnableAutoDepthStencil    d3dtypes.Bool
	AutoDepthStencilFormat    d3dtypes.Format
	Flags                     uint32
	FullScreenRefreshRateInHz uint32
	PresentationInterval      uint32
}
