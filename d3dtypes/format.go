package d3dtypes

import "fmt"

// Format is a surface pixel format code (D3DFORMAT).
// Values below 256 are enumerated formats; larger values are FOURCC codes.
type Format uint32

// Enumerated pixel formats.
const (
	FormatUnknown  Format = 0
	FormatR8G8B8   Format = 20
	FormatA8R8G8B8 Format = 21
	FormatX8R8G8B8 Format = 22
	FormatR5G6B5   Format = 23
	FormatX1R5G5B5 Format = 24
	FormatA1R5G5B5 Format = 25
	FormatA4R4G4B4 Format = 26
	FormatR3G3B2   Format = 27
	FormatA8       Format = 28
	FormatX4R4G4B4 Format = 30

	FormatA2B10G10R10 Format = 31
	FormatA8B8G8R8    Format = 32
	FormatX8B8G8R8    Format = 33
	FormatA2R10G10B10 Format = 35

	FormatA8P8 Format = 40
	FormatP8   Format = 41
	FormatL8   Format = 50
	FormatA8L8 Format = 51

	FormatV8U8     Format = 60
	FormatL6V5U5   Format = 61
	FormatQ8W8V8U8 Format = 63

	FormatD16Lockable  Format = 70
	FormatD32          Format = 71
	FormatD15S1        Format = 73
	FormatD24S8        Format = 75
	FormatD24X8        Format = 77
	FormatD24X4S4      Format = 79
	FormatD16          Format = 80
	FormatD32FLockable Format = 82

	FormatVertexData Format = 100
	FormatIndex16    Format = 101
	FormatIndex32    Format = 102
)

// MakeFourCC packs four ASCII characters into a FOURCC format code.
func MakeFourCC(a, b, c, d byte) Format {
	return Format(uint32(a) | uint32(b)<<8 | uint32(c)<<16 | uint32(d)<<24)
}

// FOURCC formats.
var (
	FormatUYVY = MakeFourCC('U', 'Y', 'V', 'Y')
	FormatYUY2 = MakeFourCC('Y', 'U', 'Y', '2')
	FormatYV12 = MakeFourCC('Y', 'V', '1', '2')
	FormatNV12 = MakeFourCC('N', 'V', '1', '2')
	FormatDXT1 = MakeFourCC('D', 'X', 'T', '1')
	FormatDXT3 = MakeFourCC('D', 'X', 'T', '3')
	FormatDXT5 = MakeFourCC('D', 'X', 'T', '5')
)

var formatNames = map[Format]string{
	FormatUnknown:      "UNKNOWN",
	FormatR8G8B8:       "R8G8B8",
	FormatA8R8G8B8:     "A8R8G8B8",
	FormatX8R8G8B8:     "X8R8G8B8",
	FormatR5G6B5:       "R5G6B5",
	FormatX1R5G5B5:     "X1R5G5B5",
	FormatA1R5G5B5:     "A1R5G5B5",
	FormatA4R4G4B4:     "A4R4G4B4",
	FormatR3G3B2:       "R3G3B2",
	FormatA8:           "A8",
	FormatX4R4G4B4:     "X4R4G4B4",
	FormatA2B10G10R10:  "A2B10G10R10",
	FormatA8B8G8R8:     "A8B8G8R8",
	FormatX8B8G8R8:     "X8B8G8R8",
	FormatA2R10G10B10:  "A2R10G10B10",
	FormatA8P8:         "A8P8",
	FormatP8:           "P8",
	FormatL8:           "L8",
	FormatA8L8:         "A8L8",
	FormatV8U8:         "V8U8",
	FormatL6V5U5:       "L6V5U5",
	FormatQ8W8V8U8:     "Q8W8V8U8",
	FormatD16Lockable:  "D16_LOCKABLE",
	FormatD32:          "D32",
	FormatD15S1:        "D15S1",
	FormatD24S8:        "D24S8",
	FormatD24X8:        "D24X8",
	FormatD24X4S4:      "D24X4S4",
	FormatD16:          "D16",
	FormatD32FLockable: "D32F_LOCKABLE",
	FormatVertexData:   "VERTEXDATA",
	FormatIndex16:      "INDEX16",
	FormatIndex32:      "INDEX32",
}

// IsFourCC reports whether f is a FOURCC code rather than an enumerated format.
func (f Format) IsFourCC() bool {
	return f > 0xFF
}

// IsDepthStencil reports whether f is one of the depth/stencil formats.
func (f Format) IsDepthStencil() bool {
	switch f {
	case FormatD16Lockable, FormatD32, FormatD15S1, FormatD24S8,
		FormatD24X8, FormatD24X4S4, FormatD16, FormatD32FLockable:
		return true
	}
	return false
}

// String returns the format name without the D3DFMT_ prefix.
func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	if f.IsFourCC() {
		return string([]byte{byte(f), byte(f >> 8), byte(f >> 16), byte(f >> 24)})
	}
	return fmt.Sprintf("Format(%d)", uint32(f))
}
