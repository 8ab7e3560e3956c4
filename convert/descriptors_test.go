package convert

import (
	"math"
	"reflect"
	"testing"

	"github.com/gogpu/d3d8/d3dtypes"
	"github.com/gogpu/d3d8/legacy"
	"github.com/gogpu/d3d8/modern"
)

// fillDistinct gives every numeric field of the struct pointed to by v a
// different non-zero value.
func fillDistinct(t *testing.T, v any) {
	t.Helper()
	rv := reflect.ValueOf(v).Elem()
	n := uint64(1)
	var fill func(f reflect.Value)
	fill = func(f reflect.Value) {
		switch f.Kind() {
		case reflect.Struct:
			for i := 0; i < f.NumField(); i++ {
				fill(f.Field(i))
			}
		case reflect.Array:
			for i := 0; i < f.Len(); i++ {
				fill(f.Index(i))
			}
		case reflect.Uint8, reflect.Uint16, reflect.Uint32:
			f.SetUint(n % (uint64(1) << (8 * f.Type().Size())))
			n++
		case reflect.Int32, reflect.Int64:
			f.SetInt(int64(n))
			n++
		case reflect.Float32:
			f.SetFloat(float64(n) + 0.5)
			n++
		default:
			t.Fatalf("unhandled kind %v", f.Kind())
		}
	}
	fill(rv)
}

func TestCapsCopiesEveryLegacyField(t *testing.T) {
	var src modern.Caps
	fillDistinct(t, &src)

	var dst legacy.Caps
	Caps(&dst, &src)

	dv := reflect.ValueOf(dst)
	sv := reflect.ValueOf(src)
	for i := 0; i < dv.NumField(); i++ {
		name := dv.Type().Field(i).Name
		srcName := name
		if name == "MaxPixelShaderValue" {
			srcName = "PixelShader1xMaxValue"
		}
		// Legacy fields are a prefix of the modern layout.
		if got := sv.Type().Field(i).Name; got != srcName {
			t.Fatalf("field %d: modern %s, legacy %s", i, got, name)
		}
		want := sv.FieldByName(srcName).Interface()
		if got := dv.Field(i).Interface(); got != want {
			t.Errorf("%s = %v, want %v", name, got, want)
		}
	}
}

func TestAdapterIdentifier(t *testing.T) {
	var src modern.AdapterIdentifier
	fillDistinct(t, &src)

	var dst legacy.AdapterIdentifier
	AdapterIdentifier(&dst, &src)

	if dst.Driver != src.Driver || dst.Description != src.Description {
		t.Error("driver strings not copied")
	}
	if dst.DriverVersion != src.DriverVersion || dst.VendorID != src.VendorID ||
		dst.DeviceID != src.DeviceID || dst.SubSysID != src.SubSysID ||
		dst.Revision != src.Revision || dst.WHQLLevel != src.WHQLLevel {
		t.Errorf("numeric fields differ: got %+v", dst)
	}
	if dst.DeviceIdentifier != src.DeviceIdentifier {
		t.Errorf("DeviceIdentifier = %v, want %v", dst.DeviceIdentifier, src.DeviceIdentifier)
	}
}

func TestPresentParameters(t *testing.T) {
	base := legacy.PresentParameters{
		BackBufferWidth:                800,
		BackBufferHeight:               600,
		BackBufferFormat:               d3dtypes.FormatX8R8G8B8,
		BackBufferCount:                1,
		MultiSampleType:                d3dtypes.MultiSample4,
		SwapEffect:                     d3dtypes.SwapEffectDiscard,
		DeviceWindow:                   0x1234,
		EnableAutoDepthStencil:         1,
		AutoDepthStencilFormat:         d3dtypes.FormatD24S8,
		Flags:                          legacy.PresentFlagDiscardDepthStencil,
		FullScreenRefreshRateInHz:      60,
		FullScreenPresentationInterval: modern.PresentIntervalOne,
	}

	tests := []struct {
		name  string
		edit  func(*legacy.PresentParameters)
		check func(*testing.T, *modern.PresentParameters)
	}{
		{
			name: "fields copied",
			check: func(t *testing.T, pp *modern.PresentParameters) {
				want := modern.PresentParameters{
					BackBufferWidth:           800,
					BackBufferHeight:          600,
					BackBufferFormat:          d3dtypes.FormatX8R8G8B8,
					BackBufferCount:           1,
					MultiSampleType:           d3dtypes.MultiSample4,
					SwapEffect:                d3dtypes.SwapEffectDiscard,
					DeviceWindow:              0x1234,
					EnableAutoDepthStencil:    1,
					AutoDepthStencilFormat:    d3dtypes.FormatD24S8,
					Flags:                     modern.PresentFlagDiscardDepthStencil,
					FullScreenRefreshRateInHz: 60,
					PresentationInterval:      modern.PresentIntervalOne,
				}
				if *pp != want {
					t.Errorf("got %+v, want %+v", *pp, want)
				}
			},
		},
		{
			name: "lockable back buffer cleared",
			edit: func(p *legacy.PresentParameters) { p.Flags |= legacy.PresentFlagLockableBackBuffer },
			check: func(t *testing.T, pp *modern.PresentParameters) {
				if pp.Flags != modern.PresentFlagDiscardDepthStencil {
					t.Errorf("Flags = %#x, want %#x", pp.Flags, modern.PresentFlagDiscardDepthStencil)
				}
			},
		},
		{
			name: "windowed presents immediately",
			edit: func(p *legacy.PresentParameters) { p.Windowed = 1 },
			check: func(t *testing.T, pp *modern.PresentParameters) {
				if pp.PresentationInterval != modern.PresentIntervalImmediate {
					t.Errorf("PresentationInterval = %#x, want immediate", pp.PresentationInterval)
				}
			},
		},
		{
			name: "copy vsync",
			edit: func(p *legacy.PresentParameters) {
				p.SwapEffect = legacy.SwapEffectCopyVSync
				p.Windowed = 1
			},
			check: func(t *testing.T, pp *modern.PresentParameters) {
				if pp.SwapEffect != d3dtypes.SwapEffectCopy {
					t.Errorf("SwapEffect = %d, want copy", pp.SwapEffect)
				}
				if pp.PresentationInterval != modern.PresentIntervalOne {
					t.Errorf("PresentationInterval = %#x, want one", pp.PresentationInterval)
				}
				if pp.MultiSampleType != d3dtypes.MultiSampleNone {
					t.Errorf("MultiSampleType = %d, want none without discard", pp.MultiSampleType)
				}
			},
		},
		{
			name: "unlimited refresh rate",
			edit: func(p *legacy.PresentParameters) { p.FullScreenRefreshRateInHz = legacy.PresentRateUnlimited },
			check: func(t *testing.T, pp *modern.PresentParameters) {
				if pp.FullScreenRefreshRateInHz != modern.PresentRateDefault {
					t.Errorf("FullScreenRefreshRateInHz = %d, want default", pp.FullScreenRefreshRateInHz)
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := base
			if tt.edit != nil {
				tt.edit(&src)
			}
			before := src
			dst := modern.PresentParameters{MultiSampleQuality: 7}
			PresentParameters(&dst, &src)
			if dst.MultiSampleQuality != 0 {
				t.Errorf("MultiSampleQuality = %d, want 0", dst.MultiSampleQuality)
			}
			if src != before {
				t.Error("source parameters modified")
			}
			tt.check(t, &dst)
		})
	}
}

func TestEnumFlags(t *testing.T) {
	tests := []struct {
		in, want uint32
	}{
		{0, modern.EnumWHQLLevel},
		{legacy.EnumNoWHQLLevel, 0},
		{0x10, 0x10 | modern.EnumWHQLLevel},
		{0x10 | legacy.EnumNoWHQLLevel, 0x10},
	}
	for _, tt := range tests {
		if got := EnumFlags(tt.in); got != tt.want {
			t.Errorf("EnumFlags(%#x) = %#x, want %#x", tt.in, got, tt.want)
		}
	}
}

func TestPresentInterval(t *testing.T) {
	tests := []struct {
		in   uint8
		want uint32
	}{
		{0, modern.PresentIntervalDefault},
		{1, modern.PresentIntervalOne},
		{2, modern.PresentIntervalTwo},
		{3, modern.PresentIntervalThree},
		{4, modern.PresentIntervalFour},
		{255, modern.PresentIntervalImmediate},
		{9, modern.PresentIntervalDefault},
	}
	for _, tt := range tests {
		if got := PresentInterval(tt.in); got != tt.want {
			t.Errorf("PresentInterval(%d) = %#x, want %#x", tt.in, got, tt.want)
		}
	}
}

func TestRenderState(t *testing.T) {
	for _, s := range []modern.RenderStateType{
		legacy.RSLinePattern, legacy.RSZVisible, legacy.RSEdgeAntialias,
		legacy.RSPatchSegments, legacy.RSSoftwareVertexProcessing,
	} {
		if _, _, ok := RenderState(s, 1); ok {
			t.Errorf("RenderState(%d) ok = true, want dropped", s)
		}
	}

	state, value, ok := RenderState(modern.RSLighting, 1)
	if !ok || state != modern.RSLighting || value != 1 {
		t.Errorf("RenderState(Lighting) = %d, %d, %v", state, value, ok)
	}

	state, value, ok = RenderState(legacy.RSZBias, 4)
	if !ok || state != modern.RSDepthBias {
		t.Fatalf("RenderState(ZBias) = %d, _, %v", state, ok)
	}
	if got := math.Float32frombits(value); math.Abs(float64(got)+0.00002) > 1e-9 {
		t.Errorf("depth bias = %v, want -0.00002", got)
	}
	if got := RenderStateValue(legacy.RSZBias, value); got != 4 {
		t.Errorf("RenderStateValue(ZBias) = %d, want 4", got)
	}
	if got := RenderStateValue(modern.RSZEnable, 3); got != 3 {
		t.Errorf("RenderStateValue(ZEnable) = %d, want 3", got)
	}
}
