package convert

import (
	"math"

	"github.com/gogpu/d3d8/legacy"
	"github.com/gogpu/d3d8/modern"
)

// depthBiasScale converts a legacy integer z-bias to a modern depth bias.
const depthBiasScale = -0.000005

// RenderState converts a legacy render state and value. ok is false for
// states the modern generation dropped; callers accept and ignore them.
func RenderState(state modern.RenderStateType, value uint32) (modern.RenderStateType, uint32, bool) {
	switch state {
	case legacy.RSLinePattern, legacy.RSZVisible, legacy.RSEdgeAntialias,
		legacy.RSPatchSegments, legacy.RSSoftwareVertexProcessing:
		return 0, 0, false
	case legacy.RSZBias:
		return modern.RSDepthBias, math.Float32bits(float32(value) * depthBiasScale), true
	default:
		return state, value, true
	}
}

// RenderStateValue converts a modern render state value read back for a
// legacy state. Dropped states read as 0.
func RenderStateValue(state modern.RenderStateType, value uint32) uint32 {
	switch state {
	case legacy.RSZBias:
		bias := math.Float32frombits(value) / depthBiasScale
		return uint32(int32(math.Round(float64(bias))))
	default:
		return value
	}
}

// SamplerState reports the modern sampler state that replaced a legacy
// texture stage state. ok is false for states that remain stage states.
func SamplerState(state modern.TextureStageStateType) (modern.SamplerStateType, bool) {
	switch state {
	case legacy.TSSAddressU:
		return modern.SampAddressU, true
	case legacy.TSSAddressV:
		return modern.SampAddressV, true
	case legacy.TSSAddressW:
		return modern.SampAddressW, true
	case legacy.TSSBorderColor:
		return modern.SampBorderColor, true
	case legacy.TSSMagFilter:
		return modern.SampMagFilter, true
	case legacy.TSSMinFilter:
		return modern.SampMinFilter, true
	case legacy.TSSMipFilter:
		return modern.SampMipFilter, true
	case legacy.TSSMipMapLODBias:
		return modern.SampMipMapLODBias, true
	case legacy.TSSMaxMipLevel:
		return modern.SampMaxMipLevel, true
	case legacy.TSSMaxAnisotropy:
		return modern.SampMaxAnisotropy, true
	default:
		return 0, false
	}
}

// IsFVF reports whether a legacy vertex shader handle names a flexible
// vertex format rather than a created shader.
func IsFVF(handle uint32) bool {
	return handle&legacy.ShaderHandleFlag == 0
}
