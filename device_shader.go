package d3d8

import (
	"github.com/gogpu/d3d8/convert"
	"github.com/gogpu/d3d8/d3dtypes"
	"github.com/gogpu/d3d8/legacy"
	"github.com/gogpu/d3d8/modern"
	"github.com/gogpu/d3d8/shaderutil"
)

// vertexShader is a created legacy vertex shader. shader is nil for
// declaration-only shaders, which run the fixed-function pipeline.
type vertexShader struct {
	declaration []uint32
	shader      modern.Shader
}

func (s *vertexShader) release() {
	if s.shader != nil {
		s.shader.Release()
	}
}

func (dev *Device) newHandle() uint32 {
	dev.nextShader++
	return dev.nextShader
}

func (dev *Device) assembler() (shaderutil.Assembler, error) {
	asm, err := dev.shaders.Resolve()
	if err != nil {
		return nil, d3dtypes.ErrNotAvailable
	}
	return asm, nil
}

// CreateVertexShader creates a vertex shader from a legacy declaration and
// bytecode and returns its handle in out. A nil function creates a
// fixed-function shader. Programmable shaders need the shader utility
// library and fail with ErrNotAvailable without it.
func (dev *Device) CreateVertexShader(declaration, function []uint32, out *uint32, usage uint32) error {
	if declaration == nil || out == nil {
		return d3dtypes.ErrInvalidCall
	}
	*out = 0

	vs := &vertexShader{declaration: append([]uint32(nil), declaration...)}
	if function != nil {
		asm, err := dev.assembler()
		if err != nil {
			return err
		}
		code, err := shaderutil.TranslateVertexShader(asm, declaration, function)
		if err != nil {
			dev.log.Warn("vertex shader translation failed", "err", err)
			return d3dtypes.ErrInvalidCall
		}
		vs.shader, err = dev.proxy.CreateVertexShader(code)
		if err != nil {
			return err
		}
	}

	h := legacy.ShaderHandleFlag | dev.newHandle()
	dev.vertexShaders[h] = vs
	dev.log.Debug("vertex shader created", "handle", h, "usage", usage, "fixed_function", function == nil)
	*out = h
	return nil
}

// SetVertexShader selects a vertex shader by handle. Handles without the
// shader flag are flexible vertex formats and select the fixed-function
// pipeline with that format.
func (dev *Device) SetVertexShader(handle uint32) error {
	if convert.IsFVF(handle) {
		if err := dev.proxy.SetVertexShader(nil); err != nil {
			return err
		}
		return dev.proxy.SetFVF(handle)
	}

	vs, ok := dev.vertexShaders[handle]
	if !ok {
		return d3dtypes.ErrInvalidCall
	}
	return dev.proxy.SetVertexShader(vs.shader)
}

// DeleteVertexShader releases a vertex shader handle.
func (dev *Device) DeleteVertexShader(handle uint32) error {
	vs, ok := dev.vertexShaders[handle]
	if !ok {
		return d3dtypes.ErrInvalidCall
	}
	vs.release()
	delete(dev.vertexShaders, handle)
	return nil
}

// CreatePixelShader creates a pixel shader from legacy bytecode and returns
// its handle in out. It fails with ErrNotAvailable without the shader
// utility library.
func (dev *Device) CreatePixelShader(function []uint32, out *uint32) error {
	if function == nil || out == nil {
		return d3dtypes.ErrInvalidCall
	}
	*out = 0

	asm, err := dev.assembler()
	if err != nil {
		return err
	}
	code, err := shaderutil.TranslatePixelShader(asm, function)
	if err != nil {
		dev.log.Warn("pixel shader translation failed", "err", err)
		return d3dtypes.ErrInvalidCall
	}
	ps, err := dev.proxy.CreatePixelShader(code)
	if err != nil {
		return err
	}

	h := dev.newHandle()
	dev.pixelShaders[h] = ps
	*out = h
	return nil
}

// SetPixelShader selects a pixel shader by handle. Handle 0 selects the
// fixed-function pipeline.
func (dev *Device) SetPixelShader(handle uint32) error {
	if handle == 0 {
		return dev.proxy.SetPixelShader(nil)
	}
	ps, ok := dev.pixelShaders[handle]
	if !ok {
		return d3dtypes.ErrInvalidCall
	}
	return dev.proxy.SetPixelShader(ps)
}

// DeletePixelShader releases a pixel shader handle.
func (dev *Device) DeletePixelShader(handle uint32) error {
	ps, ok := dev.pixelShaders[handle]
	if !ok {
		return d3dtypes.ErrInvalidCall
	}
	ps.Release()
	delete(dev.pixelShaders, handle)
	return nil
}
