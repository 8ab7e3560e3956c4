package d3dtypes

import "fmt"

// DevType selects the device implementation (D3DDEVTYPE).
type DevType uint32

// Device types.
const (
	DevTypeHAL DevType = 1
	DevTypeREF DevType = 2
	DevTypeSW  DevType = 3
)

// String returns the device type name.
func (t DevType) String() string {
	switch t {
	case DevTypeHAL:
		return "HAL"
	case DevTypeREF:
		return "REF"
	case DevTypeSW:
		return "SW"
	default:
		return fmt.Sprintf("DevType(%d)", uint32(t))
	}
}

// MultiSampleType is the number of samples per pixel (D3DMULTISAMPLE_TYPE).
type MultiSampleType uint32

// Multisample types. Values 2 through 16 are the sample count itself.
const (
	MultiSampleNone        MultiSampleType = 0
	MultiSampleNonMaskable MultiSampleType = 1
	MultiSample2           MultiSampleType = 2
	MultiSample4           MultiSampleType = 4
	MultiSample8           MultiSampleType = 8
	MultiSample16          MultiSampleType = 16
)

// SwapEffect selects how back buffers are presented (D3DSWAPEFFECT).
type SwapEffect uint32

// Swap effects common to both generations.
const (
	SwapEffectDiscard SwapEffect = 1
	SwapEffectFlip    SwapEffect = 2
	SwapEffectCopy    SwapEffect = 3
)

// ResourceType identifies the resource kind in format checks (D3DRESOURCETYPE).
type ResourceType uint32

// Resource types.
const (
	ResourceTypeSurface       ResourceType = 1
	ResourceTypeVolume        ResourceType = 2
	ResourceTypeTexture       ResourceType = 3
	ResourceTypeVolumeTexture ResourceType = 4
	ResourceTypeCubeTexture   ResourceType = 5
	ResourceTypeVertexBuffer  ResourceType = 6
	ResourceTypeIndexBuffer   ResourceType = 7
)

// HWND is an opaque host window handle.
type HWND uintptr

// HMONITOR is an opaque host monitor handle.
type HMONITOR uintptr

// DisplayMode describes one display mode (D3DDISPLAYMODE).
// The layout is identical in both generations.
type DisplayMode struct {
	Width       uint32
	Height      uint32
	RefreshRate uint32
	Format      Format
}

// String formats the mode as WIDTHxHEIGHT@RATE FORMAT.
func (m DisplayMode) String() string {
	return fmt.Sprintf("%dx%d@%d %s", m.Width, m.Height, m.RefreshRate, m.Format)
}

// GUID is a COM interface identifier.
type GUID struct {
	Data1 uint32
	Data2 uint16
	Data3 uint16
	Data4 [8]byte
}

// String formats the identifier in registry form.
func (g GUID) String() string {
	return fmt.Sprintf("{%08X-%04X-%04X-%02X%02X-%02X%02X%02X%02X%02X%02X}",
		g.Data1, g.Data2, g.Data3,
		g.Data4[0], g.Data4[1], g.Data4[2], g.Data4[3],
		g.Data4[4], g.Data4[5], g.Data4[6], g.Data4[7])
}

// IIDUnknown is the identity every COM object answers to.
var IIDUnknown = GUID{Data1: 0, Data2: 0, Data3: 0, Data4: [8]byte{0xC0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x46}}

// Bool is a 32-bit Win32 BOOL, kept as an integer so descriptor layouts
// match their C declarations.
type Bool int32

// BoolOf converts a Go bool to Bool.
func BoolOf(b bool) Bool {
	if b {
		return 1
	}
	return 0
}

// True reports whether b is non-zero.
func (b Bool) True() bool {
	return b != 0
}
