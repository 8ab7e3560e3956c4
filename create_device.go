package d3d8

import (
	"github.com/gogpu/d3d8/convert"
	"github.com/gogpu/d3d8/d3dtypes"
	"github.com/gogpu/d3d8/legacy"
	"github.com/gogpu/d3d8/modern"
	"github.com/gogpu/d3d8/window"
)

// CreateDevice creates a device.
//
// Windowed devices have their window placed first. The legacy parameters
// are converted, the best multisample quality valid for both the back
// buffer and depth formats is selected, and the runtime creates the device.
// The new device has its default sampler, antialiasing and vertex format
// state set before it is returned in out.
//
// On failure out is nil and the runtime error is returned unchanged. pp is
// never modified.
func (d *Direct3D8) CreateDevice(adapter uint32, devType d3dtypes.DevType, focus d3dtypes.HWND, behaviorFlags uint32, pp *legacy.PresentParameters, out **Device) error {
	if pp == nil || out == nil {
		return d3dtypes.ErrInvalidCall
	}
	*out = nil

	d.log.Info("Redirecting", "call", "IDirect3D8::CreateDevice",
		"adapter", adapter, "device_type", devType, "focus", focus,
		"behavior", behaviorFlags, "width", pp.BackBufferWidth, "height", pp.BackBufferHeight,
		"format", pp.BackBufferFormat, "windowed", pp.Windowed.True())

	if pp.Windowed.True() {
		d.placeWindow(focus, pp)
	}

	params := d.presentParameters(adapter, devType, pp)

	dev, err := d.proxy.CreateDevice(adapter, devType, focus, behaviorFlags, &params)
	if err != nil {
		d.log.Warn("device creation failed", "adapter", adapter, "err", err)
		return err
	}

	device := newDevice(d, dev, adapter, devType, params.Flags&modern.PresentFlagDiscardDepthStencil != 0)
	device.primeDefaults()

	d.log.Info("device created", "adapter", adapter,
		"multisample", params.MultiSampleType, "quality", params.MultiSampleQuality,
		"interval", params.PresentationInterval)

	*out = device
	return nil
}

// placeWindow styles the window that owns focus and, when configured,
// centers it. Failures are logged and otherwise ignored.
func (d *Direct3D8) placeWindow(focus d3dtypes.HWND, pp *legacy.PresentParameters) {
	p := window.Placement{
		Width:      int(pp.BackBufferWidth),
		Height:     int(pp.BackBufferHeight),
		Borderless: d.config.Borderless,
	}
	if d.config.CenterWindow {
		screenW, screenH, err := d.host.ScreenSize()
		if err != nil {
			d.log.Warn("window centering skipped", "err", err)
		} else {
			p = window.Plan(screenW, screenH, p.Width, p.Height, d.config.Borderless)
		}
	}
	p.ShowInTaskbar = d.config.ShowInTaskbar

	win := d.host.Parent(focus)
	if err := d.host.Apply(win, p); err != nil {
		d.log.Warn("window placement failed", "window", win, "err", err)
		return
	}
	d.log.Debug("window placed", "window", win, "x", p.X, "y", p.Y, "moved", p.Move, "borderless", p.Borderless)
}

// presentParameters converts pp, applies the configuration overrides and
// negotiates the multisample quality.
func (d *Direct3D8) presentParameters(adapter uint32, devType d3dtypes.DevType, pp *legacy.PresentParameters) modern.PresentParameters {
	var params modern.PresentParameters
	convert.PresentParameters(&params, pp)

	interval := d.config.PresentInterval
	if params.Windowed.True() && interval >= 2 && interval <= 4 {
		interval = 1
	}
	if interval != 0 {
		params.PresentationInterval = convert.PresentInterval(interval)
	}

	if d.config.AntialiasLevel > 0 && params.MultiSampleType == d3dtypes.MultiSampleNone &&
		params.SwapEffect == d3dtypes.SwapEffectDiscard {
		params.MultiSampleType = d3dtypes.MultiSampleType(d.config.AntialiasLevel)
	}

	if params.MultiSampleType != d3dtypes.MultiSampleNone {
		params.MultiSampleQuality = d.multiSampleQuality(adapter, devType, &params)
	}
	return params
}

// multiSampleQuality returns the highest quality index supported by both
// the back buffer and the depth stencil format, or 0 when either query
// fails.
func (d *Direct3D8) multiSampleQuality(adapter uint32, devType d3dtypes.DevType, pp *modern.PresentParameters) uint32 {
	windowed := pp.Windowed.True()

	colorLevels, err := d.proxy.CheckDeviceMultiSampleType(adapter, devType, pp.BackBufferFormat, windowed, pp.MultiSampleType)
	if err != nil {
		d.log.Debug("back buffer multisample check failed", "format", pp.BackBufferFormat, "err", err)
		return 0
	}
	depthLevels, err := d.proxy.CheckDeviceMultiSampleType(adapter, devType, pp.AutoDepthStencilFormat, windowed, pp.MultiSampleType)
	if err != nil {
		d.log.Debug("depth stencil multisample check failed", "format", pp.AutoDepthStencilFormat, "err", err)
		return 0
	}
	levels := min(colorLevels, depthLevels)
	if levels == 0 {
		return 0
	}
	return levels - 1
}
