//go:build windows

package d3d9

import (
	"github.com/gonutz/d3d9"

	"github.com/gogpu/d3d8/d3dtypes"
	"github.com/gogpu/d3d8/modern"
)

// Device is a modern.Device over the system IDirect3DDevice9 object.
type Device struct {
	dev *d3d9.Device
}

var _ modern.Device = (*Device)(nil)

func (d *Device) AddRef() uint32  { return d.dev.AddRef() }
func (d *Device) Release() uint32 { return d.dev.Release() }

func (d *Device) QueryInterface(iid d3dtypes.GUID) (any, error) {
	if iid == modern.IIDDirect3DDevice9 || iid == d3dtypes.IIDUnknown {
		d.AddRef()
		return d, nil
	}
	return nil, d3dtypes.ErrNoInterface
}

func (d *Device) TestCooperativeLevel() error {
	return result(d.dev.TestCooperativeLevel())
}

func (d *Device) GetDeviceCaps() (modern.Caps, error) {
	c, err := d.dev.GetDeviceCaps()
	if err != nil {
		return modern.Caps{}, result(err)
	}
	return caps(c), nil
}

func (d *Device) GetDisplayMode(swapChain uint32) (d3dtypes.DisplayMode, error) {
	m, err := d.dev.GetDisplayMode(uint(swapChain))
	if err != nil {
		return d3dtypes.DisplayMode{}, result(err)
	}
	return displayMode(m), nil
}

func (d *Device) Reset(pp *modern.PresentParameters) error {
	if pp == nil {
		return d3dtypes.ErrInvalidCall
	}
	applied, err := d.dev.Reset(toPresentParameters(pp))
	if err != nil {
		return result(err)
	}
	fromPresentParameters(pp, applied)
	return nil
}

func (d *Device) Present() error {
	return result(d.dev.Present(nil, nil, 0, nil))
}

func (d *Device) BeginScene() error { return result(d.dev.BeginScene()) }
func (d *Device) EndScene() error   { return result(d.dev.EndScene()) }

func (d *Device) Clear(flags uint32, color uint32, z float32, stencil uint32) error {
	return result(d.dev.Clear(nil, flags, d3d9.COLOR(color), z, stencil))
}

func (d *Device) SetRenderState(state modern.RenderStateType, value uint32) error {
	return result(d.dev.SetRenderState(d3d9.RENDERSTATETYPE(state), value))
}

func (d *Device) GetRenderState(state modern.RenderStateType) (uint32, error) {
	v, err := d.dev.GetRenderState(d3d9.RENDERSTATETYPE(state))
	return v, result(err)
}

func (d *Device) SetSamplerState(sampler uint32, state modern.SamplerStateType, value uint32) error {
	return result(d.dev.SetSamplerState(sampler, d3d9.SAMPLERSTATETYPE(state), value))
}

func (d *Device) GetSamplerState(sampler uint32, state modern.SamplerStateType) (uint32, error) {
	v, err := d.dev.GetSamplerState(sampler, d3d9.SAMPLERSTATETYPE(state))
	return v, result(err)
}

func (d *Device) SetTextureStageState(stage uint32, state modern.TextureStageStateType, value uint32) error {
	return result(d.dev.SetTextureStageState(stage, d3d9.TEXTURESTAGESTATETYPE(state), value))
}

func (d *Device) GetTextureStageState(stage uint32, state modern.TextureStageStateType) (uint32, error) {
	v, err := d.dev.GetTextureStageState(stage, d3d9.TEXTURESTAGESTATETYPE(state))
	return v, result(err)
}

func (d *Device) SetFVF(fvf uint32) error {
	return result(d.dev.SetFVF(fvf))
}

type vertexShader struct{ s *d3d9.VertexShader }

func (v vertexShader) Release() uint32 { return v.s.Release() }

type pixelShader struct{ s *d3d9.PixelShader }

func (p pixelShader) Release() uint32 { return p.s.Release() }

func (d *Device) CreateVertexShader(function []uint32) (modern.Shader, error) {
	s, err := d.dev.CreateVertexShader(bytecode(function))
	if err != nil {
		return nil, result(err)
	}
	return vertexShader{s}, nil
}

func (d *Device) CreatePixelShader(function []uint32) (modern.Shader, error) {
	s, err := d.dev.CreatePixelShader(bytecode(function))
	if err != nil {
		return nil, result(err)
	}
	return pixelShader{s}, nil
}

func (d *Device) SetVertexShader(s modern.Shader) error {
	if s == nil {
		return result(d.dev.SetVertexShader(nil))
	}
	vs, ok := s.(vertexShader)
	if !ok {
		return d3dtypes.ErrInvalidCall
	}
	return result(d.dev.SetVertexShader(vs.s))
}

func (d *Device) SetPixelShader(s modern.Shader) error {
	if s == nil {
		return result(d.dev.SetPixelShader(nil))
	}
	ps, ok := s.(pixelShader)
	if !ok {
		return d3dtypes.ErrInvalidCall
	}
	return result(d.dev.SetPixelShader(ps.s))
}
