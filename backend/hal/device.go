package hal

import (
	"sync"
	"sync/atomic"

	gpuhal "github.com/gogpu/wgpu/hal"

	"github.com/gogpu/d3d8/d3dtypes"
	"github.com/gogpu/d3d8/modern"
)

// Device is a modern.Device on an open HAL device. Pipeline state is kept
// in memory; the device holds a reference on its runtime until destroyed.
type Device struct {
	runtime *Runtime
	dev     gpuhal.Device
	fixed   gpuhal.ShaderModule

	adapter       uint32
	devType       d3dtypes.DevType
	behaviorFlags uint32

	refs      atomic.Int32
	destroyed sync.Once

	mu            sync.Mutex
	pp            modern.PresentParameters
	inScene       bool
	clearColor    uint32
	renderStates  map[modern.RenderStateType]uint32
	samplerStates [modern.MaxSamplerStages]map[modern.SamplerStateType]uint32
	stageStates   [modern.MaxSamplerStages]map[modern.TextureStageStateType]uint32
	fvf           uint32
}

var _ modern.Device = (*Device)(nil)

func newDevice(rt *Runtime, dev gpuhal.Device, adapter uint32, devType d3dtypes.DevType, behaviorFlags uint32, pp *modern.PresentParameters) (*Device, error) {
	fixed, err := createFixedFunctionModule(dev)
	if err != nil {
		return nil, err
	}

	d := &Device{
		runtime:       rt,
		dev:           dev,
		fixed:         fixed,
		adapter:       adapter,
		devType:       devType,
		behaviorFlags: behaviorFlags,
		pp:            *pp,
		renderStates:  make(map[modern.RenderStateType]uint32),
	}
	for i := range d.samplerStates {
		d.samplerStates[i] = make(map[modern.SamplerStateType]uint32)
		d.stageStates[i] = make(map[modern.TextureStageStateType]uint32)
	}
	d.refs.Store(1)
	rt.AddRef()
	return d, nil
}

func (d *Device) AddRef() uint32 {
	return uint32(d.refs.Add(1))
}

// Release destroys the HAL resources and releases the runtime when the
// count reaches zero.
func (d *Device) Release() uint32 {
	n := d.refs.Add(-1)
	if n > 0 {
		return uint32(n)
	}
	d.destroyed.Do(func() {
		d.dev.DestroyShaderModule(d.fixed)
		d.dev.Destroy()
		slogger().Debug("hal device destroyed", "adapter", d.adapter)
		d.runtime.Release()
	})
	return 0
}

func (d *Device) QueryInterface(iid d3dtypes.GUID) (any, error) {
	if iid == modern.IIDDirect3DDevice9 || iid == d3dtypes.IIDUnknown {
		d.AddRef()
		return d, nil
	}
	return nil, d3dtypes.ErrNoInterface
}

// TestCooperativeLevel always succeeds: HAL devices are never lost.
func (d *Device) TestCooperativeLevel() error {
	return nil
}

func (d *Device) GetDeviceCaps() (modern.Caps, error) {
	return d.runtime.GetDeviceCaps(d.adapter, d.devType)
}

func (d *Device) GetDisplayMode(swapChain uint32) (d3dtypes.DisplayMode, error) {
	if swapChain != 0 {
		return d3dtypes.DisplayMode{}, d3dtypes.ErrInvalidCall
	}
	return d.runtime.GetAdapterDisplayMode(d.adapter)
}

func (d *Device) Reset(pp *modern.PresentParameters) error {
	if pp == nil {
		return d3dtypes.ErrInvalidCall
	}
	if err := d.runtime.applyDefaults(pp); err != nil {
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.inScene {
		return d3dtypes.ErrInvalidCall
	}
	d.pp = *pp
	return nil
}

func (d *Device) Present() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.inScene {
		return d3dtypes.ErrInvalidCall
	}
	return nil
}

func (d *Device) BeginScene() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.inScene {
		return d3dtypes.ErrInvalidCall
	}
	d.inScene = true
	return nil
}

func (d *Device) EndScene() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.inScene {
		return d3dtypes.ErrInvalidCall
	}
	d.inScene = false
	return nil
}

// Clear records the clear color. Clearing depth or stencil without a depth
// buffer is an invalid call.
func (d *Device) Clear(flags uint32, color uint32, _ float32, _ uint32) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if flags&(modern.ClearZBuffer|modern.ClearStencil) != 0 && !d.pp.EnableAutoDepthStencil.True() {
		return d3dtypes.ErrInvalidCall
	}
	if flags&modern.ClearTarget != 0 {
		d.clearColor = color
	}
	return nil
}

func (d *Device) SetRenderState(state modern.RenderStateType, value uint32) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.renderStates[state] = value
	return nil
}

func (d *Device) GetRenderState(state modern.RenderStateType) (uint32, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.renderStates[state], nil
}

func (d *Device) SetSamplerState(sampler uint32, state modern.SamplerStateType, value uint32) error {
	if sampler >= modern.MaxSamplerStages {
		return d3dtypes.ErrInvalidCall
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.samplerStates[sampler][state] = value
	return nil
}

func (d *Device) GetSamplerState(sampler uint32, state modern.SamplerStateType) (uint32, error) {
	if sampler >= modern.MaxSamplerStages {
		return 0, d3dtypes.ErrInvalidCall
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.samplerStates[sampler][state], nil
}

func (d *Device) SetTextureStageState(stage uint32, state modern.TextureStageStateType, value uint32) error {
	if stage >= modern.MaxSamplerStages {
		return d3dtypes.ErrInvalidCall
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stageStates[stage][state] = value
	return nil
}

func (d *Device) GetTextureStageState(stage uint32, state modern.TextureStageStateType) (uint32, error) {
	if stage >= modern.MaxSamplerStages {
		return 0, d3dtypes.ErrInvalidCall
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.stageStates[stage][state], nil
}

func (d *Device) SetFVF(fvf uint32) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.fvf = fvf
	return nil
}

// FVF returns the current flexible vertex format.
func (d *Device) FVF() uint32 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.fvf
}

// ClearColor returns the color of the last target clear.
func (d *Device) ClearColor() uint32 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.clearColor
}

// CreateVertexShader is not supported on the HAL.
func (d *Device) CreateVertexShader([]uint32) (modern.Shader, error) {
	return nil, d3dtypes.ErrNotAvailable
}

// CreatePixelShader is not supported on the HAL.
func (d *Device) CreatePixelShader([]uint32) (modern.Shader, error) {
	return nil, d3dtypes.ErrNotAvailable
}

// SetVertexShader accepts only nil, the fixed-function pipeline.
func (d *Device) SetVertexShader(s modern.Shader) error {
	if s != nil {
		return d3dtypes.ErrInvalidCall
	}
	return nil
}

// SetPixelShader accepts only nil, the fixed-function pipeline.
func (d *Device) SetPixelShader(s modern.Shader) error {
	if s != nil {
		return d3dtypes.ErrInvalidCall
	}
	return nil
}
