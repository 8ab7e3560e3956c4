package d3d8

import (
	"errors"
	"testing"

	"github.com/gogpu/d3d8/d3dtypes"
	"github.com/gogpu/d3d8/internal/fake"
	"github.com/gogpu/d3d8/legacy"
	"github.com/gogpu/d3d8/modern"
	"github.com/gogpu/d3d8/shaderutil"
)

func TestCreateNilRuntime(t *testing.T) {
	if d := Create(legacy.SDKVersion, nil, WithShaderUtility(shaderutil.Disabled())); d != nil {
		t.Errorf("Create(nil runtime) = %v, want nil", d)
	}
}

func TestCatalogEndToEnd(t *testing.T) {
	d := newTestFactory(t, newTestRuntime())

	if got := d.GetAdapterCount(); got != 1 {
		t.Fatalf("GetAdapterCount() = %d, want 1", got)
	}
	if got := d.GetAdapterModeCount(0); got != 5 {
		t.Fatalf("GetAdapterModeCount(0) = %d, want 5", got)
	}

	want := append(append([]d3dtypes.DisplayMode(nil), argbModes...), rgb565Modes...)
	for pass := range 2 {
		for i, w := range want {
			var m d3dtypes.DisplayMode
			if err := d.EnumAdapterModes(0, uint32(i), &m); err != nil {
				t.Fatalf("pass %d: EnumAdapterModes(0, %d) error = %v", pass, i, err)
			}
			if m != w {
				t.Errorf("pass %d: EnumAdapterModes(0, %d) = %v, want %v", pass, i, m, w)
			}
		}
	}

	sentinel := d3dtypes.DisplayMode{Width: 1}
	m := sentinel
	if err := d.EnumAdapterModes(0, 5, &m); err != d3dtypes.ErrInvalidCall {
		t.Errorf("EnumAdapterModes(0, 5) error = %v, want ErrInvalidCall", err)
	}
	if m != sentinel {
		t.Errorf("EnumAdapterModes(0, 5) modified output: %v", m)
	}
	if err := d.EnumAdapterModes(1, 0, &m); err != d3dtypes.ErrInvalidCall {
		t.Errorf("EnumAdapterModes(1, 0) error = %v, want ErrInvalidCall", err)
	}
	if err := d.EnumAdapterModes(0, 0, nil); err != d3dtypes.ErrInvalidCall {
		t.Errorf("EnumAdapterModes(nil) error = %v, want ErrInvalidCall", err)
	}
	if got := d.GetAdapterModeCount(3); got != 0 {
		t.Errorf("GetAdapterModeCount(3) = %d, want 0", got)
	}
}

func TestCatalogBuiltOnce(t *testing.T) {
	rt := newTestRuntime()
	d := newTestFactory(t, rt)
	enumerated := rt.Calls("EnumAdapterModes")

	var m d3dtypes.DisplayMode
	for i := range d.GetAdapterModeCount(0) {
		if err := d.EnumAdapterModes(0, i, &m); err != nil {
			t.Fatal(err)
		}
	}
	if got := rt.Calls("EnumAdapterModes"); got != enumerated {
		t.Errorf("runtime EnumAdapterModes calls grew from %d to %d", enumerated, got)
	}
}

func TestCatalogKeepsFailedModeSlots(t *testing.T) {
	rt := newTestRuntime()
	rt.EnumAdapterModesFunc = func(_ uint32, format d3dtypes.Format, mode uint32) error {
		if format == d3dtypes.FormatA8R8G8B8 && mode == 1 {
			return d3dtypes.ErrDriverInternalError
		}
		return nil
	}
	d := newTestFactory(t, rt)

	var want uint32
	for _, f := range catalogFormats {
		want += rt.GetAdapterModeCount(0, f)
	}
	if got := d.GetAdapterModeCount(0); got != want {
		t.Fatalf("GetAdapterModeCount(0) = %d, want %d", got, want)
	}

	wantModes := []d3dtypes.DisplayMode{
		argbModes[0],
		{Format: d3dtypes.FormatA8R8G8B8},
		argbModes[2],
		rgb565Modes[0],
		rgb565Modes[1],
	}
	for i, w := range wantModes {
		var m d3dtypes.DisplayMode
		if err := d.EnumAdapterModes(0, uint32(i), &m); err != nil {
			t.Fatalf("EnumAdapterModes(0, %d) error = %v", i, err)
		}
		if m != w {
			t.Errorf("EnumAdapterModes(0, %d) = %v, want %v", i, m, w)
		}
	}
}

func TestCatalogClampsAdapters(t *testing.T) {
	adapters := make([]fake.Adapter, MaxAdapters+3)
	for i := range adapters {
		adapters[i].Modes = map[d3dtypes.Format][]d3dtypes.DisplayMode{
			d3dtypes.FormatX8R8G8B8: {{Width: 640, Height: 480, Format: d3dtypes.FormatX8R8G8B8}},
		}
	}
	d := newTestFactory(t, fake.NewRuntime(adapters...))

	if got := d.GetAdapterCount(); got != MaxAdapters {
		t.Errorf("GetAdapterCount() = %d, want %d", got, MaxAdapters)
	}
	var m d3dtypes.DisplayMode
	if err := d.EnumAdapterModes(MaxAdapters, 0, &m); err != d3dtypes.ErrInvalidCall {
		t.Errorf("EnumAdapterModes(past ceiling) error = %v, want ErrInvalidCall", err)
	}
}

func TestCheckDeviceFormatRejectsVideoFormats(t *testing.T) {
	rt := newTestRuntime()
	rt.CheckDeviceFormatFunc = func(uint32, d3dtypes.Format) error { return nil }
	d := newTestFactory(t, rt)

	for _, f := range []d3dtypes.Format{d3dtypes.FormatUYVY, d3dtypes.FormatYUY2, d3dtypes.FormatYV12, d3dtypes.FormatNV12} {
		for _, rtype := range []d3dtypes.ResourceType{d3dtypes.ResourceTypeSurface, d3dtypes.ResourceTypeTexture} {
			err := d.CheckDeviceFormat(0, d3dtypes.DevTypeHAL, d3dtypes.FormatX8R8G8B8, 0, rtype, f)
			if err != d3dtypes.ErrNotAvailable {
				t.Errorf("CheckDeviceFormat(%v, %d) = %v, want ErrNotAvailable", f, rtype, err)
			}
		}
	}
	if got := rt.Calls("CheckDeviceFormat"); got != 0 {
		t.Errorf("runtime consulted %d times for video formats", got)
	}

	if err := d.CheckDeviceFormat(0, d3dtypes.DevTypeHAL, d3dtypes.FormatX8R8G8B8, 0, d3dtypes.ResourceTypeTexture, d3dtypes.FormatDXT1); err != nil {
		t.Errorf("CheckDeviceFormat(DXT1) = %v, want nil", err)
	}
}

func TestPassThroughErrorsUnchanged(t *testing.T) {
	d := newTestFactory(t, newTestRuntime())

	if err := d.CheckDeviceType(4, d3dtypes.DevTypeHAL, d3dtypes.FormatX8R8G8B8, d3dtypes.FormatX8R8G8B8, true); err != d3dtypes.ErrInvalidCall {
		t.Errorf("CheckDeviceType(bad adapter) = %v", err)
	}
	if err := d.CheckDepthStencilMatch(0, d3dtypes.DevTypeHAL, d3dtypes.FormatX8R8G8B8, d3dtypes.FormatX8R8G8B8, d3dtypes.FormatD24S8); err != nil {
		t.Errorf("CheckDepthStencilMatch() = %v", err)
	}
	if err := d.CheckDeviceMultiSampleType(0, d3dtypes.DevTypeHAL, d3dtypes.FormatX8R8G8B8, false, d3dtypes.MultiSample4); err != nil {
		t.Errorf("CheckDeviceMultiSampleType() = %v", err)
	}
	if err := d.RegisterSoftwareDevice(0); err != nil {
		t.Errorf("RegisterSoftwareDevice() = %v", err)
	}
	if got := d.GetAdapterMonitor(0); got != 0x5151 {
		t.Errorf("GetAdapterMonitor(0) = %#x", got)
	}

	var m d3dtypes.DisplayMode
	if err := d.GetAdapterDisplayMode(0, &m); err != nil || m != argbModes[1] {
		t.Errorf("GetAdapterDisplayMode() = %v, %v", m, err)
	}
	if err := d.GetAdapterDisplayMode(0, nil); err != d3dtypes.ErrInvalidCall {
		t.Errorf("GetAdapterDisplayMode(nil) = %v", err)
	}
}

func TestGetAdapterIdentifier(t *testing.T) {
	rt := newTestRuntime()
	legacy.EncodeString(rt.Adapters[0].Identifier.Description[:], "Test Adapter")
	rt.Adapters[0].Identifier.VendorID = 0x10DE
	rt.Adapters[0].Identifier.WHQLLevel = 1
	d := newTestFactory(t, rt)

	if err := d.GetAdapterIdentifier(0, 0, nil); err != d3dtypes.ErrInvalidCall {
		t.Errorf("GetAdapterIdentifier(nil) = %v, want ErrInvalidCall", err)
	}
	if got := rt.Calls("GetAdapterIdentifier"); got != 0 {
		t.Errorf("runtime consulted on nil output: %d calls", got)
	}

	var id legacy.AdapterIdentifier
	if err := d.GetAdapterIdentifier(0, 0, &id); err != nil {
		t.Fatal(err)
	}
	if rt.LastIdentifierFlags() != modern.EnumWHQLLevel {
		t.Errorf("flags = %#x, want WHQL level requested", rt.LastIdentifierFlags())
	}
	if id.DescriptionString() != "Test Adapter" || id.VendorID != 0x10DE || id.WHQLLevel != 1 {
		t.Errorf("identifier = %q vendor %#x whql %d", id.DescriptionString(), id.VendorID, id.WHQLLevel)
	}

	if err := d.GetAdapterIdentifier(0, legacy.EnumNoWHQLLevel, &id); err != nil {
		t.Fatal(err)
	}
	if rt.LastIdentifierFlags() != 0 {
		t.Errorf("flags = %#x, want 0", rt.LastIdentifierFlags())
	}

	if err := d.GetAdapterIdentifier(2, 0, &id); err != d3dtypes.ErrInvalidCall {
		t.Errorf("GetAdapterIdentifier(bad adapter) = %v", err)
	}
}

func TestGetDeviceCaps(t *testing.T) {
	rt := newTestRuntime()

	t.Run("shaders unavailable", func(t *testing.T) {
		d := newTestFactory(t, rt)
		if err := d.GetDeviceCaps(0, d3dtypes.DevTypeHAL, nil); err != d3dtypes.ErrInvalidCall {
			t.Errorf("GetDeviceCaps(nil) = %v", err)
		}
		var caps legacy.Caps
		if err := d.GetDeviceCaps(0, d3dtypes.DevTypeHAL, &caps); err != nil {
			t.Fatal(err)
		}
		if caps.MaxTextureWidth != 2048 || caps.MaxPixelShaderValue != 8 {
			t.Errorf("caps not converted: %+v", caps)
		}
		if caps.VertexShaderVersion != 0 || caps.PixelShaderVersion != 0 || caps.MaxVertexShaderConst != 0 {
			t.Errorf("shader caps not masked: vs %#x ps %#x", caps.VertexShaderVersion, caps.PixelShaderVersion)
		}
	})

	t.Run("shaders available", func(t *testing.T) {
		d := newTestFactory(t, rt, WithShaderUtility(shaderutil.Static(nopAssembler{})))
		var caps legacy.Caps
		if err := d.GetDeviceCaps(0, d3dtypes.DevTypeHAL, &caps); err != nil {
			t.Fatal(err)
		}
		if caps.VertexShaderVersion != 0xFFFE0101 || caps.PixelShaderVersion != 0xFFFF0104 {
			t.Errorf("shader caps = vs %#x ps %#x", caps.VertexShaderVersion, caps.PixelShaderVersion)
		}
	})

	t.Run("runtime failure", func(t *testing.T) {
		d := newTestFactory(t, rt)
		caps := legacy.Caps{MaxTextureWidth: 7}
		if err := d.GetDeviceCaps(5, d3dtypes.DevTypeHAL, &caps); err != d3dtypes.ErrInvalidCall {
			t.Errorf("GetDeviceCaps(bad adapter) = %v", err)
		}
		if caps.MaxTextureWidth != 7 {
			t.Error("output modified on failure")
		}
	})
}

func TestFactoryQueryInterface(t *testing.T) {
	rt := newTestRuntime()
	d := newTestFactory(t, rt)

	if err := d.QueryInterface(legacy.IIDDirect3D8, nil); err != d3dtypes.ErrPointer {
		t.Errorf("QueryInterface(nil) = %v, want ErrPointer", err)
	}

	for _, iid := range []d3dtypes.GUID{legacy.IIDDirect3D8, d3dtypes.IIDUnknown} {
		var obj any
		before := rt.Refs()
		if err := d.QueryInterface(iid, &obj); err != nil {
			t.Fatalf("QueryInterface(%v) = %v", iid, err)
		}
		if obj != d {
			t.Errorf("QueryInterface(%v) returned %T, want the factory", iid, obj)
		}
		if rt.Refs() != before+1 {
			t.Errorf("QueryInterface(%v) refs %d -> %d, want +1", iid, before, rt.Refs())
		}
		d.Release()
	}

	var mapped d3dtypes.GUID
	rt.QueryInterfaceFunc = func(iid d3dtypes.GUID) (any, error) {
		mapped = iid
		return nil, d3dtypes.ErrNoInterface
	}
	obj := any("stale")
	if err := d.QueryInterface(legacy.IIDDirect3DDevice8, &obj); err != d3dtypes.ErrNoInterface {
		t.Errorf("QueryInterface(device iid) = %v", err)
	}
	if mapped != modern.IIDDirect3DDevice9 {
		t.Errorf("forwarded iid = %v, want modern device iid", mapped)
	}
	if obj != nil {
		t.Errorf("output = %v after failure, want nil", obj)
	}
}

func TestFactoryLifetime(t *testing.T) {
	rt := newTestRuntime()
	d := newTestFactory(t, rt)

	const extra = 3
	for range extra {
		d.AddRef()
	}
	for i := range extra {
		if n := d.Release(); n == 0 {
			t.Fatalf("Release %d reached zero early", i)
		}
		if d.destroyed.Load() {
			t.Fatal("factory destroyed before runtime count reached zero")
		}
	}
	if n := d.Release(); n != 0 {
		t.Fatalf("final Release() = %d, want 0", n)
	}
	if !d.destroyed.Load() {
		t.Error("factory not destroyed when runtime count reached zero")
	}
	if rt.Refs() != 0 {
		t.Errorf("runtime refs = %d, want 0", rt.Refs())
	}
}

type nopAssembler struct{}

func (nopAssembler) Disassemble([]uint32) (string, error) { return "vs_1_1\n", nil }
func (nopAssembler) Assemble(string) ([]uint32, error)    { return []uint32{0xFFFE0101, 0x0000FFFF}, nil }

type failingAssembler struct{}

func (failingAssembler) Disassemble([]uint32) (string, error) { return "", errors.New("bad bytecode") }
func (failingAssembler) Assemble(string) ([]uint32, error)    { return nil, errors.New("bad source") }
