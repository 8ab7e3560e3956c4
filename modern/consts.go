package modern

import "github.com/gogpu/d3d8/d3dtypes"

// EnumWHQLLevel asks GetAdapterIdentifier to fill in WHQLLevel.
const EnumWHQLLevel = 0x00000002

// Presentation flags.
const (
	PresentFlagLockableBackBuffer  = 0x00000001
	PresentFlagDiscardDepthStencil = 0x00000002
	PresentFlagDeviceClip          = 0x00000004
	PresentFlagVideo               = 0x00000010
)

// Presentation intervals.
const (
	PresentIntervalDefault   = 0x00000000
	PresentIntervalOne       = 0x00000001
	PresentIntervalTwo       = 0x00000002
	PresentIntervalThree     = 0x00000004
	PresentIntervalFour      = 0x00000008
	PresentIntervalImmediate = 0x80000000
)

// PresentRateDefault lets the runtime pick the refresh rate.
const PresentRateDefault = 0

// FVF (flexible vertex format) bits.
const (
	FVFXYZ     = 0x002
	FVFXYZRHW  = 0x004
	FVFNormal  = 0x010
	FVFDiffuse = 0x040
	FVFTex1    = 0x100
)

// MaxSamplerStages is the number of fixed-function sampler stages the
// legacy interface exposes.
const MaxSamplerStages = 8

// SamplerStateType selects a sampler state (D3DSAMPLERSTATETYPE).
type SamplerStateType uint32

// Sampler states.
const (
	SampAddressU      SamplerStateType = 1
	SampAddressV      SamplerStateType = 2
	SampAddressW      SamplerStateType = 3
	SampBorderColor   SamplerStateType = 4
	SampMagFilter     SamplerStateType = 5
	SampMinFilter     SamplerStateType = 6
	SampMipFilter     SamplerStateType = 7
	SampMipMapLODBias SamplerStateType = 8
	SampMaxMipLevel   SamplerStateType = 9
	SampMaxAnisotropy SamplerStateType = 10
)

// Texture filter types (D3DTEXTUREFILTERTYPE).
const (
	TexFilterNone        = 0
	TexFilterPoint       = 1
	TexFilterLinear      = 2
	TexFilterAnisotropic = 3
)

// RenderStateType selects a render state (D3DRENDERSTATETYPE).
type RenderStateType uint32

// Render states referenced by the translation layer.
const (
	RSZEnable              RenderStateType = 7
	RSFillMode             RenderStateType = 8
	RSShadeMode            RenderStateType = 9
	RSZWriteEnable         RenderStateType = 14
	RSAlphaTestEnable      RenderStateType = 15
	RSSrcBlend             RenderStateType = 19
	RSDestBlend            RenderStateType = 20
	RSCullMode             RenderStateType = 22
	RSZFunc                RenderStateType = 23
	RSAlphaBlendEnable     RenderStateType = 27
	RSFogEnable            RenderStateType = 28
	RSLighting             RenderStateType = 137
	RSMultiSampleAntialias RenderStateType = 161
	RSDepthBias            RenderStateType = 195
)

// TextureStageStateType selects a texture stage state (D3DTEXTURESTAGESTATETYPE).
type TextureStageStateType uint32

// Texture stage states shared by both generations.
const (
	TSSColorOp       TextureStageStateType = 1
	TSSColorArg1     TextureStageStateType = 2
	TSSColorArg2     TextureStageStateType = 3
	TSSAlphaOp       TextureStageStateType = 4
	TSSAlphaArg1     TextureStageStateType = 5
	TSSAlphaArg2     TextureStageStateType = 6
	TSSTexCoordIndex TextureStageStateType = 11
)

// Clear flags.
const (
	ClearTarget  = 0x00000001
	ClearZBuffer = 0x00000002
	ClearStencil = 0x00000004
)

// Interface identifiers of the modern object model.
var (
	IIDDirect3D9       = d3dtypes.GUID{Data1: 0x81BDCBCA, Data2: 0x64D4, Data3: 0x426D, Data4: [8]byte{0xAE, 0x8D, 0xAD, 0x01, 0x47, 0xF4, 0x27, 0x5C}}
	IIDDirect3DDevice9 = d3dtypes.GUID{Data1: 0xD0223B96, Data2: 0xBF7A, Data3: 0x43FD, Data4: [8]byte{0x92, 0xBD, 0xA4, 0x3B, 0x0D, 0x82, 0xB9, 0xEB}}
)
