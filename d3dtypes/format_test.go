package d3dtypes

import "testing"

func TestFourCC(t *testing.T) {
	if FormatYUY2 != Format(0x32595559) {
		t.Errorf("FormatYUY2 = 0x%08X, want 0x32595559", uint32(FormatYUY2))
	}
	for _, f := range []Format{FormatUYVY, FormatYUY2, FormatYV12, FormatNV12, FormatDXT1} {
		if !f.IsFourCC() {
			t.Errorf("%v.IsFourCC() = false", f)
		}
	}
	if FormatA8R8G8B8.IsFourCC() {
		t.Error("A8R8G8B8.IsFourCC() = true")
	}
}

func TestFormatString(t *testing.T) {
	tests := []struct {
		f    Format
		want string
	}{
		{FormatA8R8G8B8, "A8R8G8B8"},
		{FormatR5G6B5, "R5G6B5"},
		{FormatNV12, "NV12"},
		{Format(99), "Format(99)"},
	}
	for _, tt := range tests {
		if got := tt.f.String(); got != tt.want {
			t.Errorf("Format(%d).String() = %q, want %q", uint32(tt.f), got, tt.want)
		}
	}
}

func TestIsDepthStencil(t *testing.T) {
	if !FormatD24S8.IsDepthStencil() || !FormatD16.IsDepthStencil() {
		t.Error("depth formats not recognised")
	}
	if FormatX8R8G8B8.IsDepthStencil() {
		t.Error("X8R8G8B8 reported as depth/stencil")
	}
}

func TestGUIDString(t *testing.T) {
	if got := IIDUnknown.String(); got != "{00000000-0000-0000-C000-000000000046}" {
		t.Errorf("IIDUnknown.String() = %q", got)
	}
}
