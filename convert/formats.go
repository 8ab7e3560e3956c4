package convert

import (
	"github.com/gogpu/d3d8/d3dtypes"
	"github.com/gogpu/d3d8/legacy"
	"github.com/gogpu/d3d8/modern"
)

// IsVideoFormat reports whether f is one of the packed or planar YUV formats
// the legacy interface never exposes.
func IsVideoFormat(f d3dtypes.Format) bool {
	switch f {
	case d3dtypes.FormatUYVY, d3dtypes.FormatYUY2, d3dtypes.FormatYV12, d3dtypes.FormatNV12:
		return true
	default:
		return false
	}
}

// IID maps a legacy interface identifier to its modern counterpart.
// Identifiers without a mapping are returned unchanged.
func IID(iid d3dtypes.GUID) d3dtypes.GUID {
	switch iid {
	case legacy.IIDDirect3D8:
		return modern.IIDDirect3D9
	case legacy.IIDDirect3DDevice8:
		return modern.IIDDirect3DDevice9
	default:
		return iid
	}
}
