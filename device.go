package d3d8

import (
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/d3d8/convert"
	"github.com/gogpu/d3d8/d3dtypes"
	"github.com/gogpu/d3d8/legacy"
	"github.com/gogpu/d3d8/modern"
	"github.com/gogpu/d3d8/shaderutil"
)

// Device is a legacy rendering device wrapping one modern device.
//
// Like Direct3D8 it forwards reference counting to the wrapped object. A
// device holds a reference on its factory until its final release. Methods
// must not be called concurrently on the same device.
type Device struct {
	proxy   modern.Device
	parent  *Direct3D8
	adapter uint32
	devType d3dtypes.DevType

	// discardDepthStencil records whether the depth stencil contents may be
	// discarded after Present.
	discardDepthStencil bool

	log     *slog.Logger
	shaders *shaderutil.Capability

	vertexShaders map[uint32]*vertexShader
	pixelShaders  map[uint32]modern.Shader
	nextShader    uint32

	destroyed atomic.Bool
}

func newDevice(parent *Direct3D8, proxy modern.Device, adapter uint32, devType d3dtypes.DevType, discardDepthStencil bool) *Device {
	parent.AddRef()
	return &Device{
		proxy:               proxy,
		parent:              parent,
		adapter:             adapter,
		devType:             devType,
		discardDepthStencil: discardDepthStencil,
		log:                 parent.log,
		shaders:             parent.shaders,
		vertexShaders:       make(map[uint32]*vertexShader),
		pixelShaders:        make(map[uint32]modern.Shader),
	}
}

// primeDefaults sets the state the legacy runtime started devices with:
// linear or anisotropic minification with linear mip filtering on every
// sampler stage, antialiasing per the configuration and a position-only
// vertex format.
func (dev *Device) primeDefaults() {
	cfg := dev.parent.config

	filter := uint32(modern.TexFilterLinear)
	if cfg.AnisotropyLevel > 0 {
		filter = modern.TexFilterAnisotropic
	}
	for sampler := range uint32(modern.MaxSamplerStages) {
		dev.prime(dev.proxy.SetSamplerState(sampler, modern.SampMinFilter, filter))
		dev.prime(dev.proxy.SetSamplerState(sampler, modern.SampMipFilter, modern.TexFilterLinear))
		dev.prime(dev.proxy.SetSamplerState(sampler, modern.SampMaxAnisotropy, cfg.AnisotropyLevel))
	}

	var antialias uint32
	if cfg.AntialiasLevel > 0 {
		antialias = 1
	}
	dev.prime(dev.proxy.SetRenderState(modern.RSMultiSampleAntialias, antialias))
	dev.prime(dev.proxy.SetFVF(modern.FVFXYZ))
}

func (dev *Device) prime(err error) {
	if err != nil {
		dev.log.Debug("default state rejected", "err", err)
	}
}

// Proxy returns the wrapped modern device.
func (dev *Device) Proxy() modern.Device {
	return dev.proxy
}

// DiscardsDepthStencil reports whether the device was created with the
// discard depth stencil presentation flag.
func (dev *Device) DiscardsDepthStencil() bool {
	return dev.discardDepthStencil
}

// QueryInterface returns the device itself for the legacy device and
// IUnknown identities, adding a reference. Other identities are mapped to
// their modern counterparts and answered by the wrapped device.
func (dev *Device) QueryInterface(iid d3dtypes.GUID, out *any) error {
	if out == nil {
		return d3dtypes.ErrPointer
	}
	if iid == legacy.IIDDirect3DDevice8 || iid == d3dtypes.IIDUnknown {
		dev.AddRef()
		*out = dev
		return nil
	}

	obj, err := dev.proxy.QueryInterface(convert.IID(iid))
	if err != nil {
		*out = nil
		return err
	}
	*out = obj
	return nil
}

// AddRef adds a reference to the wrapped device and returns its new count.
func (dev *Device) AddRef() uint32 {
	return dev.proxy.AddRef()
}

// Release releases a reference on the wrapped device and returns its new
// count. The device is destroyed, and its factory reference dropped, when
// the count reaches zero.
func (dev *Device) Release() uint32 {
	n := dev.proxy.Release()
	if n == 0 {
		dev.destroy()
	}
	return n
}

func (dev *Device) destroy() {
	if dev.destroyed.Swap(true) {
		return
	}
	for h, s := range dev.vertexShaders {
		s.release()
		delete(dev.vertexShaders, h)
	}
	for h, s := range dev.pixelShaders {
		s.Release()
		delete(dev.pixelShaders, h)
	}
	dev.log.Info("device destroyed", "adapter", dev.adapter)
	dev.parent.Release()
}

// GetDirect3D returns the factory that created the device, adding a
// reference to it.
func (dev *Device) GetDirect3D(out **Direct3D8) error {
	if out == nil {
		return d3dtypes.ErrInvalidCall
	}
	dev.parent.AddRef()
	*out = dev.parent
	return nil
}

// GetDeviceCaps returns the legacy capabilities of the device.
func (dev *Device) GetDeviceCaps(out *legacy.Caps) error {
	if out == nil {
		return d3dtypes.ErrInvalidCall
	}
	caps, err := dev.proxy.GetDeviceCaps()
	if err != nil {
		return err
	}
	convert.Caps(out, &caps)
	dev.parent.maskShaderCaps(out)
	return nil
}

// GetDisplayMode returns the display mode of the implicit swap chain.
func (dev *Device) GetDisplayMode(out *d3dtypes.DisplayMode) error {
	if out == nil {
		return d3dtypes.ErrInvalidCall
	}
	m, err := dev.proxy.GetDisplayMode(0)
	if err != nil {
		return err
	}
	*out = m
	return nil
}

// TestCooperativeLevel reports whether the device is lost.
func (dev *Device) TestCooperativeLevel() error {
	return dev.proxy.TestCooperativeLevel()
}

// Reset resets the swap chain with new presentation parameters, converted
// and negotiated the same way as in CreateDevice.
func (dev *Device) Reset(pp *legacy.PresentParameters) error {
	if pp == nil {
		return d3dtypes.ErrInvalidCall
	}
	params := dev.parent.presentParameters(dev.adapter, dev.devType, pp)
	if err := dev.proxy.Reset(&params); err != nil {
		return err
	}
	dev.discardDepthStencil = params.Flags&modern.PresentFlagDiscardDepthStencil != 0
	dev.log.Debug("device reset", "width", params.BackBufferWidth, "height", params.BackBufferHeight)
	return nil
}

// Present shows the back buffer.
func (dev *Device) Present() error {
	return dev.proxy.Present()
}

// BeginScene begins a scene.
func (dev *Device) BeginScene() error {
	return dev.proxy.BeginScene()
}

// EndScene ends a scene.
func (dev *Device) EndScene() error {
	return dev.proxy.EndScene()
}

// Clear clears the render target, depth buffer or stencil buffer.
func (dev *Device) Clear(flags, color uint32, z float32, stencil uint32) error {
	return dev.proxy.Clear(flags, color, z, stencil)
}
