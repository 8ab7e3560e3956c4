package convert

import (
	"github.com/gogpu/d3d8/d3dtypes"
	"github.com/gogpu/d3d8/legacy"
	"github.com/gogpu/d3d8/modern"
)

// AdapterIdentifier copies the fields of src that the legacy shape defines.
// DeviceName is dropped.
func AdapterIdentifier(dst *legacy.AdapterIdentifier, src *modern.AdapterIdentifier) {
	dst.Driver = src.Driver
	dst.Description = src.Description
	dst.DriverVersion = src.DriverVersion
	dst.VendorID = src.VendorID
	dst.DeviceID = src.DeviceID
	dst.SubSysID = src.SubSysID
	dst.Revision = src.Revision
	dst.DeviceIdentifier = src.DeviceIdentifier
	dst.WHQLLevel = src.WHQLLevel
}

// Caps copies the capability fields the legacy shape defines. Modern-only
// capabilities are dropped.
func Caps(dst *legacy.Caps, src *modern.Caps) {
	dst.DeviceType = src.DeviceType
	dst.AdapterOrdinal = src.AdapterOrdinal

	dst.Caps = src.Caps
	dst.Caps2 = src.Caps2
	dst.Caps3 = src.Caps3
	dst.PresentationIntervals = src.PresentationIntervals

	dst.CursorCaps = src.CursorCaps
	dst.DevCaps = src.DevCaps

	dst.PrimitiveMiscCaps = src.PrimitiveMiscCaps
	dst.RasterCaps = src.RasterCaps
	dst.ZCmpCaps = src.ZCmpCaps
	dst.SrcBlendCaps = src.SrcBlendCaps
	dst.DestBlendCaps = src.DestBlendCaps
	dst.AlphaCmpCaps = src.AlphaCmpCaps
	dst.ShadeCaps = src.ShadeCaps
	dst.TextureCaps = src.TextureCaps
	dst.TextureFilterCaps = src.TextureFilterCaps
	dst.CubeTextureFilterCaps = src.CubeTextureFilterCaps
	dst.VolumeTextureFilterCaps = src.VolumeTextureFilterCaps
	dst.TextureAddressCaps = src.TextureAddressCaps
	dst.VolumeTextureAddressCaps = src.VolumeTextureAddressCaps

	dst.LineCaps = src.LineCaps

	dst.MaxTextureWidth = src.MaxTextureWidth
	dst.MaxTextureHeight = src.MaxTextureHeight
	dst.MaxVolumeExtent = src.MaxVolumeExtent
	dst.MaxTextureRepeat = src.MaxTextureRepeat
	dst.MaxTextureAspectRatio = src.MaxTextureAspectRatio
	dst.MaxAnisotropy = src.MaxAnisotropy
	dst.MaxVertexW = src.MaxVertexW

	dst.GuardBandLeft = src.GuardBandLeft
	dst.GuardBandTop = src.GuardBandTop
	dst.GuardBandRight = src.GuardBandRight
	dst.GuardBandBottom = src.GuardBandBottom

	dst.ExtentsAdjust = src.ExtentsAdjust
	dst.StencilCaps = src.StencilCaps

	dst.FVFCaps = src.FVFCaps
	dst.TextureOpCaps = src.TextureOpCaps
	dst.MaxTextureBlendStages = src.MaxTextureBlendStages
	dst.MaxSimultaneousTextures = src.MaxSimultaneousTextures

	dst.VertexProcessingCaps = src.VertexProcessingCaps
	dst.MaxActiveLights = src.MaxActiveLights
	dst.MaxUserClipPlanes = src.MaxUserClipPlanes
	dst.MaxVertexBlendMatrices = src.MaxVertexBlendMatrices
	dst.MaxVertexBlendMatrixIndex = src.MaxVertexBlendMatrixIndex

	dst.MaxPointSize = src.MaxPointSize

	dst.MaxPrimitiveCount = src.MaxPrimitiveCount
	dst.MaxVertexIndex = src.MaxVertexIndex
	dst.MaxStreams = src.MaxStreams
	dst.MaxStreamStride = src.MaxStreamStride

	dst.VertexShaderVersion = src.VertexShaderVersion
	dst.MaxVertexShaderConst = src.MaxVertexShaderConst

	dst.PixelShaderVersion = src.PixelShaderVersion
	dst.MaxPixelShaderValue = src.PixelShader1xMaxValue
}

// PresentParameters converts legacy presentation parameters to the modern
// shape.
//
// The lockable back buffer flag is cleared. Multisample quality is 0 and is
// negotiated by the caller. Multisampling is dropped unless the swap effect
// is SwapEffectDiscard. Windowed devices present immediately, and the legacy
// copy-on-vblank swap effect and unlimited refresh rate are folded into
// their modern equivalents.
func PresentParameters(dst *modern.PresentParameters, src *legacy.PresentParameters) {
	*dst = modern.PresentParameters{
		BackBufferWidth:           src.BackBufferWidth,
		BackBufferHeight:          src.BackBufferHeight,
		BackBufferFormat:          src.BackBufferFormat,
		BackBufferCount:           src.BackBufferCount,
		MultiSampleType:           src.MultiSampleType,
		MultiSampleQuality:        0,
		SwapEffect:                src.SwapEffect,
		DeviceWindow:              src.DeviceWindow,
		Windowed:                  src.Windowed,
		EnableAutoDepthStencil:    src.EnableAutoDepthStencil,
		AutoDepthStencilFormat:    src.AutoDepthStencilFormat,
		Flags:                     src.Flags &^ legacy.PresentFlagLockableBackBuffer,
		FullScreenRefreshRateInHz: src.FullScreenRefreshRateInHz,
		PresentationInterval:      src.FullScreenPresentationInterval,
	}

	if dst.SwapEffect != d3dtypes.SwapEffectDiscard {
		dst.MultiSampleType = d3dtypes.MultiSampleNone
	}
	if dst.Windowed.True() {
		dst.PresentationInterval = modern.PresentIntervalImmediate
	}
	if dst.SwapEffect == legacy.SwapEffectCopyVSync {
		dst.SwapEffect = d3dtypes.SwapEffectCopy
		if dst.PresentationInterval == modern.PresentIntervalImmediate {
			dst.PresentationInterval = modern.PresentIntervalOne
		}
	}
	if dst.FullScreenRefreshRateInHz == legacy.PresentRateUnlimited {
		dst.FullScreenRefreshRateInHz = modern.PresentRateDefault
	}
}

// EnumFlags converts GetAdapterIdentifier flags. The legacy generation asks
// to skip driver validation with the same bit the modern generation uses to
// request it, so the bit is inverted.
func EnumFlags(flags uint32) uint32 {
	if flags&legacy.EnumNoWHQLLevel == 0 {
		return flags | modern.EnumWHQLLevel
	}
	return flags &^ legacy.EnumNoWHQLLevel
}

// PresentInterval converts a configured interval count (1..4, or 255 for
// immediate) to a modern presentation interval. 0 and unknown counts yield
// PresentIntervalDefault.
func PresentInterval(count uint8) uint32 {
	switch count {
	case 1:
		return modern.PresentIntervalOne
	case 2:
		return modern.PresentIntervalTwo
	case 3:
		return modern.PresentIntervalThree
	case 4:
		return modern.PresentIntervalFour
	case 255:
		return modern.PresentIntervalImmediate
	default:
		return modern.PresentIntervalDefault
	}
}
