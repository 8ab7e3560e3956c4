package fake

import (
	"sync"

	"github.com/gogpu/d3d8/d3dtypes"
	"github.com/gogpu/d3d8/modern"
)

// SamplerKey addresses one sampler state.
type SamplerKey struct {
	Sampler uint32
	State   modern.SamplerStateType
}

// StageKey addresses one texture stage state.
type StageKey struct {
	Stage uint32
	State modern.TextureStageStateType
}

// Device is an in-memory modern.Device that records every state change.
// Its reference count starts at 1.
type Device struct {
	Caps              modern.Caps
	Mode              d3dtypes.DisplayMode
	BehaviorFlags     uint32
	PresentParameters modern.PresentParameters

	// CooperativeLevel is returned by TestCooperativeLevel.
	CooperativeLevel error

	mu            sync.Mutex
	refs          uint32
	calls         map[string]int
	renderStates  map[modern.RenderStateType]uint32
	samplerStates map[SamplerKey]uint32
	stageStates   map[StageKey]uint32
	fvf           uint32
	vertexShader  modern.Shader
	pixelShader   modern.Shader
	inScene       bool
}

var _ modern.Device = (*Device)(nil)

// NewDevice returns a device with no state set.
func NewDevice() *Device {
	return &Device{
		refs:          1,
		calls:         make(map[string]int),
		renderStates:  make(map[modern.RenderStateType]uint32),
		samplerStates: make(map[SamplerKey]uint32),
		stageStates:   make(map[StageKey]uint32),
	}
}

// Calls returns how often the named method was called.
func (d *Device) Calls(method string) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.calls[method]
}

// Refs returns the current reference count.
func (d *Device) Refs() uint32 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.refs
}

// RenderState returns a recorded render state and whether it was set.
func (d *Device) RenderState(s modern.RenderStateType) (uint32, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	v, ok := d.renderStates[s]
	return v, ok
}

// SamplerState returns a recorded sampler state and whether it was set.
func (d *Device) SamplerState(sampler uint32, s modern.SamplerStateType) (uint32, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	v, ok := d.samplerStates[SamplerKey{sampler, s}]
	return v, ok
}

// StageState returns a recorded texture stage state and whether it was set.
func (d *Device) StageState(stage uint32, s modern.TextureStageStateType) (uint32, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	v, ok := d.stageStates[StageKey{stage, s}]
	return v, ok
}

// FVF returns the last flexible vertex format set.
func (d *Device) FVF() uint32 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.fvf
}

// Shaders returns the bound vertex and pixel shaders.
func (d *Device) Shaders() (vertex, pixel modern.Shader) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.vertexShader, d.pixelShader
}

func (d *Device) record(method string) {
	d.mu.Lock()
	d.calls[method]++
	d.mu.Unlock()
}

func (d *Device) AddRef() uint32 {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.refs++
	return d.refs
}

func (d *Device) Release() uint32 {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.refs > 0 {
		d.refs--
	}
	return d.refs
}

func (d *Device) QueryInterface(iid d3dtypes.GUID) (any, error) {
	d.record("QueryInterface")
	if iid == modern.IIDDirect3DDevice9 || iid == d3dtypes.IIDUnknown {
		d.AddRef()
		return d, nil
	}
	return nil, d3dtypes.ErrNoInterface
}

func (d *Device) TestCooperativeLevel() error {
	d.record("TestCooperativeLevel")
	return d.CooperativeLevel
}

func (d *Device) GetDeviceCaps() (modern.Caps, error) {
	d.record("GetDeviceCaps")
	return d.Caps, nil
}

func (d *Device) GetDisplayMode(swapChain uint32) (d3dtypes.DisplayMode, error) {
	d.record("GetDisplayMode")
	if swapChain != 0 {
		return d3dtypes.DisplayMode{}, d3dtypes.ErrInvalidCall
	}
	return d.Mode, nil
}

func (d *Device) Reset(pp *modern.PresentParameters) error {
	d.record("Reset")
	d.mu.Lock()
	d.PresentParameters = *pp
	d.mu.Unlock()
	return nil
}

func (d *Device) Present() error {
	d.record("Present")
	return d.CooperativeLevel
}

func (d *Device) BeginScene() error {
	d.record("BeginScene")
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.inScene {
		return d3dtypes.ErrInvalidCall
	}
	d.inScene = true
	return nil
}

func (d *Device) EndScene() error {
	d.record("EndScene")
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.inScene {
		return d3dtypes.ErrInvalidCall
	}
	d.inScene = false
	return nil
}

func (d *Device) Clear(uint32, uint32, float32, uint32) error {
	d.record("Clear")
	return nil
}

func (d *Device) SetRenderState(s modern.RenderStateType, v uint32) error {
	d.record("SetRenderState")
	d.mu.Lock()
	d.renderStates[s] = v
	d.mu.Unlock()
	return nil
}

func (d *Device) GetRenderState(s modern.RenderStateType) (uint32, error) {
	d.record("GetRenderState")
	v, _ := d.RenderState(s)
	return v, nil
}

func (d *Device) SetSamplerState(sampler uint32, s modern.SamplerStateType, v uint32) error {
	d.record("SetSamplerState")
	d.mu.Lock()
	d.samplerStates[SamplerKey{sampler, s}] = v
	d.mu.Unlock()
	return nil
}

func (d *Device) GetSamplerState(sampler uint32, s modern.SamplerStateType) (uint32, error) {
	d.record("GetSamplerState")
	v, _ := d.SamplerState(sampler, s)
	return v, nil
}

func (d *Device) SetTextureStageState(stage uint32, s modern.TextureStageStateType, v uint32) error {
	d.record("SetTextureStageState")
	d.mu.Lock()
	d.stageStates[StageKey{stage, s}] = v
	d.mu.Unlock()
	return nil
}

func (d *Device) GetTextureStageState(stage uint32, s modern.TextureStageStateType) (uint32, error) {
	d.record("GetTextureStageState")
	v, _ := d.StageState(stage, s)
	return v, nil
}

func (d *Device) SetFVF(fvf uint32) error {
	d.record("SetFVF")
	d.mu.Lock()
	d.fvf = fvf
	d.mu.Unlock()
	return nil
}

func (d *Device) CreateVertexShader(function []uint32) (modern.Shader, error) {
	d.record("CreateVertexShader")
	if len(function) == 0 {
		return nil, d3dtypes.ErrInvalidCall
	}
	return &Shader{Function: append([]uint32(nil), function...), refs: 1}, nil
}

func (d *Device) CreatePixelShader(function []uint32) (modern.Shader, error) {
	d.record("CreatePixelShader")
	if len(function) == 0 {
		return nil, d3dtypes.ErrInvalidCall
	}
	return &Shader{Function: append([]uint32(nil), function...), refs: 1}, nil
}

func (d *Device) SetVertexShader(s modern.Shader) error {
	d.record("SetVertexShader")
	d.mu.Lock()
	d.vertexShader = s
	d.mu.Unlock()
	return nil
}

func (d *Device) SetPixelShader(s modern.Shader) error {
	d.record("SetPixelShader")
	d.mu.Lock()
	d.pixelShader = s
	d.mu.Unlock()
	return nil
}

// Shader is a created fake shader.
type Shader struct {
	Function []uint32

	mu   sync.Mutex
	refs uint32
}

// Refs returns the current reference count.
func (s *Shader) Refs() uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refs
}

func (s *Shader) Release() uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.refs > 0 {
		s.refs--
	}
	return s.refs
}
