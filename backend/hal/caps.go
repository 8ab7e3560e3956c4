package hal

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/d3d8/d3dtypes"
	"github.com/gogpu/d3d8/modern"
)

// Capability bits reported by HAL devices.
const (
	devCapsHWTransformAndLight = 0x00010000
	devCapsHWRasterization     = 0x00080000

	filterMinPoint       = 0x00000100
	filterMinLinear      = 0x00000200
	filterMinAnisotropic = 0x00000400
	filterMipPoint       = 0x00010000
	filterMipLinear      = 0x00020000
	filterMagPoint       = 0x01000000
	filterMagLinear      = 0x02000000

	maxVolumeExtent = 2048
	maxAnisotropy   = 16
)

// deviceCaps synthesizes the capabilities of a HAL device from its limits.
// Shader versions are zero: legacy bytecode does not run on the HAL.
func deviceCaps(adapter uint32, devType d3dtypes.DevType, limits gputypes.Limits) modern.Caps {
	filters := uint32(filterMinPoint | filterMinLinear | filterMinAnisotropic |
		filterMipPoint | filterMipLinear | filterMagPoint | filterMagLinear)

	return modern.Caps{
		DeviceType:     devType,
		AdapterOrdinal: adapter,

		PresentationIntervals: modern.PresentIntervalOne | modern.PresentIntervalImmediate,
		DevCaps:               devCapsHWTransformAndLight | devCapsHWRasterization,

		TextureFilterCaps:       filters,
		CubeTextureFilterCaps:   filters,
		VolumeTextureFilterCaps: filters,

		MaxTextureWidth:       limits.MaxTextureDimension2D,
		MaxTextureHeight:      limits.MaxTextureDimension2D,
		MaxVolumeExtent:       maxVolumeExtent,
		MaxTextureAspectRatio: limits.MaxTextureDimension2D,
		MaxAnisotropy:         maxAnisotropy,
		MaxVertexW:            1e10,

		MaxTextureBlendStages:   modern.MaxSamplerStages,
		MaxSimultaneousTextures: modern.MaxSamplerStages,
		MaxActiveLights:         8,
		MaxUserClipPlanes:       6,
		MaxPointSize:            1,

		MaxPrimitiveCount: 0xFFFFF,
		MaxVertexIndex:    0xFFFFFF,
		MaxStreams:        16,
		MaxStreamStride:   2048,

		MasterAdapterOrdinal:    adapter,
		NumberOfAdaptersInGroup: 1,
		NumSimultaneousRTs:      1,
	}
}
