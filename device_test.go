package d3d8

import (
	"testing"

	"github.com/gogpu/d3d8/d3dtypes"
	"github.com/gogpu/d3d8/internal/fake"
	"github.com/gogpu/d3d8/legacy"
	"github.com/gogpu/d3d8/modern"
	"github.com/gogpu/d3d8/shaderutil"
)

func newTestDevice(t *testing.T, opts ...Option) (*Device, *fake.Device) {
	t.Helper()
	rt := newTestRuntime()
	d := newTestFactory(t, rt, opts...)
	dev := mustCreateDevice(t, d, fullscreenParams())
	return dev, rt.Devices()[0]
}

func TestDeviceRenderState(t *testing.T) {
	dev, fd := newTestDevice(t)

	if err := dev.SetRenderState(modern.RSZEnable, 1); err != nil {
		t.Fatal(err)
	}
	if v, _ := fd.RenderState(modern.RSZEnable); v != 1 {
		t.Errorf("ZEnable = %d, want 1", v)
	}

	var v uint32
	if err := dev.GetRenderState(modern.RSZEnable, &v); err != nil || v != 1 {
		t.Errorf("GetRenderState(ZEnable) = %d, %v", v, err)
	}
	if err := dev.GetRenderState(modern.RSZEnable, nil); err != d3dtypes.ErrInvalidCall {
		t.Errorf("GetRenderState(nil) = %v", err)
	}
}

func TestDeviceDroppedRenderStates(t *testing.T) {
	dev, fd := newTestDevice(t)

	dropped := []modern.RenderStateType{
		legacy.RSLinePattern,
		legacy.RSZVisible,
		legacy.RSEdgeAntialias,
		legacy.RSPatchSegments,
		legacy.RSSoftwareVertexProcessing,
	}
	before := fd.Calls("SetRenderState")
	for _, s := range dropped {
		if err := dev.SetRenderState(s, 1); err != nil {
			t.Errorf("SetRenderState(%d) = %v, want nil", s, err)
		}
		v := uint32(7)
		if err := dev.GetRenderState(s, &v); err != nil || v != 0 {
			t.Errorf("GetRenderState(%d) = %d, %v, want 0", s, v, err)
		}
	}
	if got := fd.Calls("SetRenderState"); got != before {
		t.Errorf("dropped states reached the device: %d calls", got-before)
	}
}

func TestDeviceZBias(t *testing.T) {
	dev, fd := newTestDevice(t)

	for _, bias := range []uint32{0, 1, 8, 16} {
		if err := dev.SetRenderState(legacy.RSZBias, bias); err != nil {
			t.Fatal(err)
		}
		if _, ok := fd.RenderState(modern.RSDepthBias); !ok {
			t.Fatal("z-bias not set as depth bias")
		}
		var got uint32
		if err := dev.GetRenderState(legacy.RSZBias, &got); err != nil {
			t.Fatal(err)
		}
		if got != bias {
			t.Errorf("z-bias round trip = %d, want %d", got, bias)
		}
	}
}

func TestDeviceTextureStageState(t *testing.T) {
	dev, fd := newTestDevice(t)

	if err := dev.SetTextureStageState(2, legacy.TSSMagFilter, modern.TexFilterPoint); err != nil {
		t.Fatal(err)
	}
	if v, _ := fd.SamplerState(2, modern.SampMagFilter); v != modern.TexFilterPoint {
		t.Errorf("sampler 2 mag filter = %d, want point", v)
	}
	if _, ok := fd.StageState(2, legacy.TSSMagFilter); ok {
		t.Error("filter state set as a stage state")
	}

	if err := dev.SetTextureStageState(0, modern.TSSColorOp, 4); err != nil {
		t.Fatal(err)
	}
	if v, _ := fd.StageState(0, modern.TSSColorOp); v != 4 {
		t.Errorf("stage 0 color op = %d, want 4", v)
	}

	var v uint32
	if err := dev.GetTextureStageState(2, legacy.TSSMagFilter, &v); err != nil || v != modern.TexFilterPoint {
		t.Errorf("GetTextureStageState(mag filter) = %d, %v", v, err)
	}
	if err := dev.GetTextureStageState(0, modern.TSSColorOp, &v); err != nil || v != 4 {
		t.Errorf("GetTextureStageState(color op) = %d, %v", v, err)
	}
	if err := dev.GetTextureStageState(0, modern.TSSColorOp, nil); err != d3dtypes.ErrInvalidCall {
		t.Errorf("GetTextureStageState(nil) = %v", err)
	}
}

func TestDeviceFVFHandle(t *testing.T) {
	dev, fd := newTestDevice(t)

	fvf := uint32(modern.FVFXYZ | modern.FVFDiffuse | modern.FVFTex1)
	if err := dev.SetVertexShader(fvf); err != nil {
		t.Fatal(err)
	}
	if fd.FVF() != fvf {
		t.Errorf("FVF = %#x, want %#x", fd.FVF(), fvf)
	}
	if vs, _ := fd.Shaders(); vs != nil {
		t.Error("programmable vertex shader left bound")
	}
	if err := dev.SetVertexShader(legacy.ShaderHandleFlag | 99); err != d3dtypes.ErrInvalidCall {
		t.Errorf("SetVertexShader(unknown handle) = %v", err)
	}
}

func TestDeviceShadersUnavailable(t *testing.T) {
	dev, fd := newTestDevice(t)
	decl := []uint32{0x40000000 | 0, 0xFFFFFFFF}

	var h uint32
	if err := dev.CreateVertexShader(decl, []uint32{0xFFFE0101, 0x0000FFFF}, &h, 0); err != d3dtypes.ErrNotAvailable {
		t.Errorf("CreateVertexShader() = %v, want ErrNotAvailable", err)
	}
	if err := dev.CreatePixelShader([]uint32{0xFFFF0101, 0x0000FFFF}, &h); err != d3dtypes.ErrNotAvailable {
		t.Errorf("CreatePixelShader() = %v, want ErrNotAvailable", err)
	}
	if fd.Calls("CreateVertexShader") != 0 || fd.Calls("CreatePixelShader") != 0 {
		t.Error("device asked to create shaders without the utility library")
	}

	// Declaration-only shaders need no translation.
	if err := dev.CreateVertexShader(decl, nil, &h, 0); err != nil {
		t.Fatalf("CreateVertexShader(fixed function) = %v", err)
	}
	if h&legacy.ShaderHandleFlag == 0 {
		t.Errorf("handle %#x lacks the shader flag", h)
	}
	if err := dev.SetVertexShader(h); err != nil {
		t.Errorf("SetVertexShader(fixed function) = %v", err)
	}

	var caps legacy.Caps
	if err := dev.GetDeviceCaps(&caps); err != nil {
		t.Fatal(err)
	}
	if caps.VertexShaderVersion != 0 || caps.PixelShaderVersion != 0 {
		t.Errorf("device shader caps not masked: vs %#x ps %#x", caps.VertexShaderVersion, caps.PixelShaderVersion)
	}
}

func TestDeviceShaderLifecycle(t *testing.T) {
	dev, fd := newTestDevice(t, WithShaderUtility(shaderutil.Static(nopAssembler{})))
	decl := []uint32{0x40000000 | 0, 0xFFFFFFFF}

	var vsh, psh uint32
	if err := dev.CreateVertexShader(decl, []uint32{0xFFFE0101, 0x0000FFFF}, &vsh, 0); err != nil {
		t.Fatal(err)
	}
	if err := dev.CreatePixelShader([]uint32{0xFFFF0101, 0x0000FFFF}, &psh); err != nil {
		t.Fatal(err)
	}
	if vsh&legacy.ShaderHandleFlag == 0 || psh == 0 || psh&legacy.ShaderHandleFlag != 0 {
		t.Errorf("handles vs %#x ps %#x", vsh, psh)
	}

	if err := dev.SetVertexShader(vsh); err != nil {
		t.Fatal(err)
	}
	if err := dev.SetPixelShader(psh); err != nil {
		t.Fatal(err)
	}
	vs, ps := fd.Shaders()
	if vs == nil || ps == nil {
		t.Fatal("shaders not bound")
	}

	if err := dev.SetPixelShader(0); err != nil {
		t.Fatal(err)
	}
	if _, ps := fd.Shaders(); ps != nil {
		t.Error("SetPixelShader(0) left a shader bound")
	}

	if err := dev.DeletePixelShader(psh); err != nil {
		t.Fatal(err)
	}
	if got := ps.(*fake.Shader).Refs(); got != 0 {
		t.Errorf("pixel shader refs = %d after delete", got)
	}
	if err := dev.DeletePixelShader(psh); err != d3dtypes.ErrInvalidCall {
		t.Errorf("second DeletePixelShader() = %v", err)
	}
	if err := dev.SetPixelShader(psh); err != d3dtypes.ErrInvalidCall {
		t.Errorf("SetPixelShader(deleted) = %v", err)
	}

	// Shaders still alive are released with the device.
	dev.Release()
	if got := vs.(*fake.Shader).Refs(); got != 0 {
		t.Errorf("vertex shader refs = %d after device release", got)
	}
}

func TestDeviceShaderTranslationFailure(t *testing.T) {
	dev, _ := newTestDevice(t, WithShaderUtility(shaderutil.Static(failingAssembler{})))

	h := uint32(5)
	if err := dev.CreatePixelShader([]uint32{0xFFFF0101}, &h); err != d3dtypes.ErrInvalidCall {
		t.Errorf("CreatePixelShader() = %v, want ErrInvalidCall", err)
	}
	if h != 0 {
		t.Errorf("handle = %d after failure, want 0", h)
	}
	if err := dev.CreateVertexShader([]uint32{0xFFFFFFFF}, []uint32{0xFFFE0101}, &h, 0); err != d3dtypes.ErrInvalidCall {
		t.Errorf("CreateVertexShader() = %v, want ErrInvalidCall", err)
	}
	if err := dev.CreateVertexShader(nil, nil, &h, 0); err != d3dtypes.ErrInvalidCall {
		t.Errorf("CreateVertexShader(nil declaration) = %v", err)
	}
}

func TestDeviceQueryInterface(t *testing.T) {
	dev, fd := newTestDevice(t)

	if err := dev.QueryInterface(legacy.IIDDirect3DDevice8, nil); err != d3dtypes.ErrPointer {
		t.Errorf("QueryInterface(nil) = %v, want ErrPointer", err)
	}

	var obj any
	if err := dev.QueryInterface(legacy.IIDDirect3DDevice8, &obj); err != nil {
		t.Fatal(err)
	}
	if obj != dev {
		t.Errorf("QueryInterface returned %T, want the device", obj)
	}
	if fd.Refs() != 2 {
		t.Errorf("device refs = %d, want 2", fd.Refs())
	}
	dev.Release()

	if err := dev.QueryInterface(legacy.IIDDirect3D8, &obj); err != d3dtypes.ErrNoInterface {
		t.Errorf("QueryInterface(factory iid) = %v, want ErrNoInterface", err)
	}
	if obj != nil {
		t.Errorf("output = %v after failure", obj)
	}
}

func TestDeviceSceneAndReset(t *testing.T) {
	dev, fd := newTestDevice(t, WithConfig(Config{PresentInterval: 2}))

	if err := dev.TestCooperativeLevel(); err != nil {
		t.Errorf("TestCooperativeLevel() = %v", err)
	}
	fd.CooperativeLevel = d3dtypes.ErrDeviceLost
	if err := dev.TestCooperativeLevel(); err != d3dtypes.ErrDeviceLost {
		t.Errorf("TestCooperativeLevel(lost) = %v", err)
	}
	fd.CooperativeLevel = nil

	if err := dev.EndScene(); err != d3dtypes.ErrInvalidCall {
		t.Errorf("EndScene() outside a scene = %v", err)
	}
	if err := dev.BeginScene(); err != nil {
		t.Fatal(err)
	}
	if err := dev.Clear(modern.ClearTarget, 0xFF000000, 1, 0); err != nil {
		t.Fatal(err)
	}
	if err := dev.EndScene(); err != nil {
		t.Fatal(err)
	}
	if err := dev.Present(); err != nil {
		t.Fatal(err)
	}

	var m d3dtypes.DisplayMode
	if err := dev.GetDisplayMode(&m); err != nil || m != argbModes[1] {
		t.Errorf("GetDisplayMode() = %v, %v", m, err)
	}

	if err := dev.Reset(nil); err != d3dtypes.ErrInvalidCall {
		t.Errorf("Reset(nil) = %v", err)
	}
	pp := fullscreenParams()
	pp.BackBufferWidth, pp.BackBufferHeight = 1024, 768
	if err := dev.Reset(&pp); err != nil {
		t.Fatal(err)
	}
	if fd.PresentParameters.BackBufferWidth != 1024 {
		t.Errorf("reset width = %d", fd.PresentParameters.BackBufferWidth)
	}
	if fd.PresentParameters.PresentationInterval != modern.PresentIntervalTwo {
		t.Errorf("reset interval = %#x, want override applied", fd.PresentParameters.PresentationInterval)
	}
	if dev.DiscardsDepthStencil() {
		t.Error("discard flag set without the presentation flag")
	}
}
