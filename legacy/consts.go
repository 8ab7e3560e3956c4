package legacy

import (
	"github.com/gogpu/d3d8/d3dtypes"
	"github.com/gogpu/d3d8/modern"
)

// SDKVersion is the version token legacy clients pass to the entry point.
const SDKVersion = 220

// EnumNoWHQLLevel asks GetAdapterIdentifier to skip driver validation.
// It occupies the bit the modern generation uses for the opposite request.
const EnumNoWHQLLevel = 0x00000002

// Presentation flags understood by the legacy generation.
const (
	PresentFlagLockableBackBuffer  = 0x00000001
	PresentFlagDiscardDepthStencil = 0x00000002
	PresentFlagDeviceClip          = 0x00000004
	PresentFlagVideo               = 0x00000010
)

// SwapEffectCopyVSync copies the back buffer on vertical blank. The modern
// generation folds it into SwapEffectCopy plus a presentation interval.
const SwapEffectCopyVSync d3dtypes.SwapEffect = 4

// Refresh rate values.
const (
	PresentRateDefault   = 0
	PresentRateUnlimited = 0x7fffffff
)

// Render states the legacy generation defines and the modern one dropped or
// renumbered. States not listed here share their number across generations.
const (
	RSLinePattern              modern.RenderStateType = 10
	RSZVisible                 modern.RenderStateType = 30
	RSEdgeAntialias            modern.RenderStateType = 40
	RSZBias                    modern.RenderStateType = 47
	RSSoftwareVertexProcessing modern.RenderStateType = 153
	RSPatchSegments            modern.RenderStateType = 164
	RSMultiSampleAntialias                            = modern.RSMultiSampleAntialias
)

// Texture stage states that the modern generation moved to sampler states.
const (
	TSSAddressU      modern.TextureStageStateType = 13
	TSSAddressV      modern.TextureStageStateType = 14
	TSSBorderColor   modern.TextureStageStateType = 15
	TSSMagFilter     modern.TextureStageStateType = 16
	TSSMinFilter     modern.TextureStageStateType = 17
	TSSMipFilter     modern.TextureStageStateType = 18
	TSSMipMapLODBias modern.TextureStageStateType = 19
	TSSMaxMipLevel   modern.TextureStageStateType = 20
	TSSMaxAnisotropy modern.TextureStageStateType = 21
	TSSAddressW      modern.TextureStageStateType = 25
)

// ShaderHandleFlag marks a vertex shader handle as a created shader rather
// than a flexible vertex format.
const ShaderHandleFlag = 0x80000000

// Interface identifiers of the legacy object model.
var (
	IIDDirect3D8       = d3dtypes.GUID{Data1: 0x1DD9E8DA, Data2: 0x1C77, Data3: 0x4D40, Data4: [8]byte{0xB0, 0xCF, 0x98, 0xFE, 0xFD, 0xFF, 0x95, 0x12}}
	IIDDirect3DDevice8 = d3dtypes.GUID{Data1: 0x7385E5DF, Data2: 0x8FE8, Data3: 0x41D5, Data4: [8]byte{0x86, 0xB6, 0xD7, 0xB4, 0x85, 0x47, 0xB6, 0xCF}}
)
