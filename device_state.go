package d3d8

import (
	"github.com/gogpu/d3d8/convert"
	"github.com/gogpu/d3d8/d3dtypes"
	"github.com/gogpu/d3d8/modern"
)

// SetRenderState sets a render state. States the modern generation dropped
// are accepted and ignored; the legacy z-bias is set as a depth bias.
func (dev *Device) SetRenderState(state modern.RenderStateType, value uint32) error {
	target, v, ok := convert.RenderState(state, value)
	if !ok {
		return nil
	}
	return dev.proxy.SetRenderState(target, v)
}

// GetRenderState reads a render state. Dropped states read as 0.
func (dev *Device) GetRenderState(state modern.RenderStateType, out *uint32) error {
	if out == nil {
		return d3dtypes.ErrInvalidCall
	}
	target, _, ok := convert.RenderState(state, 0)
	if !ok {
		*out = 0
		return nil
	}
	v, err := dev.proxy.GetRenderState(target)
	if err != nil {
		return err
	}
	*out = convert.RenderStateValue(state, v)
	return nil
}

// SetTextureStageState sets a texture stage state. Addressing and filtering
// states are set on the sampler of the same index.
func (dev *Device) SetTextureStageState(stage uint32, state modern.TextureStageStateType, value uint32) error {
	if sampler, ok := convert.SamplerState(state); ok {
		return dev.proxy.SetSamplerState(stage, sampler, value)
	}
	return dev.proxy.SetTextureStageState(stage, state, value)
}

// GetTextureStageState reads a texture stage state.
func (dev *Device) GetTextureStageState(stage uint32, state modern.TextureStageStateType, out *uint32) error {
	if out == nil {
		return d3dtypes.ErrInvalidCall
	}
	var (
		v   uint32
		err error
	)
	if sampler, ok := convert.SamplerState(state); ok {
		v, err = dev.proxy.GetSamplerState(stage, sampler)
	} else {
		v, err = dev.proxy.GetTextureStageState(stage, state)
	}
	if err != nil {
		return err
	}
	*out = v
	return nil
}
