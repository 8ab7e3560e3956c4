package legacy

import "github.com/gogpu/d3d8/d3dtypes"

// MaxDeviceIdentifierString is the size of the Driver and Description arrays.
const MaxDeviceIdentifierString = 512

// AdapterIdentifier describes an adapter (D3DADAPTER_IDENTIFIER8).
// It lacks the DeviceName field of the modern shape.
type AdapterIdentifier struct {
	Driver           [MaxDeviceIdentifierString]byte
	Description      [MaxDeviceIdentifierString]byte
	DriverVersion    int64
	VendorID         uint32
	DeviceID         uint32
	SubSysID         uint32
	Revision         uint32
	DeviceIdentifier d3dtypes.GUID
	WHQLLevel        uint32
}

// DriverString returns Driver decoded from the ANSI code page.
func (id *AdapterIdentifier) DriverString() string {
	return DecodeString(id.Driver[:])
}

// DescriptionString returns Description decoded from the ANSI code page.
func (id *AdapterIdentifier) DescriptionString() string {
	return DecodeString(id.Description[:])
}

// Caps is the legacy device capability descriptor (D3DCAPS8).
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

	PixelShaderVersion  uint32
	MaxPixelShaderValue float32
}

// PresentParameters is the legacy presentation descriptor. It has no
// multisample quality and names the interval FullScreenPresentationInterval.
type PresentParameters struct {
	BackBufferWidth                uint32
	BackBufferHeight               uint32
	BackBufferFormat               d3dtypes.Format
	BackBufferCount                uint32
	MultiSampleType                d3dtypes.MultiSampleType
	SwapEffect                     d3dtypes.SwapEffect
	DeviceWindow                   d3dtypes.HWND
	Windowed                       d3dtypes.Bool
	EnableAutoDepthStencil         d3dtypes.Bool
	AutoDepthStencilFormat         d3dtypes.Format
	Flags                          uint32
	FullScreenRefreshRateInHz      uint32
	FullScreenPresentationInterval uint32
}
