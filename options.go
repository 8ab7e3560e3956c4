package d3d8

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gogpu/d3d8/internal/notify"
	"github.com/gogpu/d3d8/internal/tracelog"
	"github.com/gogpu/d3d8/shaderutil"
	"github.com/gogpu/d3d8/window"
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("d3d8: invalid configuration")

// PresentIntervalImmediate is the Config.PresentInterval value that disables
// waiting for vertical blank.
const PresentIntervalImmediate = 255

// Config holds the user preferences consulted during device creation.
type Config struct {
	// AnisotropyLevel enables anisotropic minification on every sampler
	// stage when positive. 0 selects linear filtering.
	AnisotropyLevel uint32

	// AntialiasLevel enables multisample antialiasing when positive. When
	// the client requests no multisampling, it also selects the sample
	// count for discard swap chains.
	AntialiasLevel uint32

	// Borderless strips window decorations from windowed devices.
	Borderless bool

	// ShowInTaskbar keeps windowed devices visible in the taskbar.
	ShowInTaskbar bool

	// PresentInterval overrides the presentation interval: 0 keeps the
	// client value, 1..4 waits that many vertical blanks and
	// PresentIntervalImmediate never waits. Windowed devices wait at most
	// one blank.
	PresentInterval uint8

	// CenterWindow centers windowed devices on the screen.
	CenterWindow bool
}

// DefaultConfig returns the configuration used when none is supplied.
func DefaultConfig() Config {
	return Config{
		ShowInTaskbar: true,
		CenterWindow:  true,
	}
}

// Validate reports whether every field is within range.
func (c Config) Validate() error {
	if c.AnisotropyLevel > 16 {
		return fmt.Errorf("%w: anisotropy level %d out of range 0..16", ErrInvalidConfig, c.AnisotropyLevel)
	}
	if c.AntialiasLevel > 16 {
		return fmt.Errorf("%w: antialias level %d out of range 0..16", ErrInvalidConfig, c.AntialiasLevel)
	}
	if c.PresentInterval > 4 && c.PresentInterval != PresentIntervalImmediate {
		return fmt.Errorf("%w: present interval %d not in 0..4 or %d", ErrInvalidConfig, c.PresentInterval, PresentIntervalImmediate)
	}
	return nil
}

// Option configures a Direct3D8 during creation.
// Use functional options to customize factory behavior.
//
// Example:
//
//	// Default configuration, package logger, system window host
//	d := d3d8.Create(legacy.SDKVersion, rt)
//
//	// Anisotropic filtering and a trace file
//	cfg := d3d8.DefaultConfig()
//	cfg.AnisotropyLevel = 8
//	d := d3d8.Create(legacy.SDKVersion, rt,
//		d3d8.WithConfig(cfg),
//		d3d8.WithTraceFile("d3d8.log"))
type Option func(*options)

// options holds optional configuration for factory creation.
type options struct {
	config    Config
	logger    *slog.Logger
	traceFile string
	trace     *tracelog.Log
	host      window.Host
	shaders   *shaderutil.Capability
	notifier  notify.Notifier
}

// defaultOptions returns the default factory options.
func defaultOptions() options {
	return options{
		config: DefaultConfig(),
	}
}

func newOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	customNotifier := o.notifier != nil
	if !customNotifier {
		o.notifier = notify.System()
	}
	if o.logger == nil {
		if o.traceFile != "" {
			o.trace = tracelog.New(o.traceFile, o.notifier)
			o.logger = o.trace.Logger(slog.LevelDebug)
		} else {
			o.logger = Logger()
		}
	}
	if o.host == nil {
		o.host = window.Default()
	}
	if o.shaders == nil {
		if customNotifier {
			o.shaders = shaderutil.NewSystem(shaderutil.WithNotifier(o.notifier), shaderutil.WithLogger(o.logger))
		} else {
			o.shaders = shaderutil.Default()
		}
	}
	return o
}

// WithConfig sets the user preferences. Invalid values are not rejected
// here; call Config.Validate first.
func WithConfig(c Config) Option {
	return func(o *options) {
		o.config = c
	}
}

// WithLogger sets the logger for this factory and its devices, overriding
// both the package logger and WithTraceFile.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithTraceFile appends a debug-level trace to path. The file is opened on
// the first record and closed when the factory is destroyed; if opening
// fails a warning is shown once and tracing stops.
func WithTraceFile(path string) Option {
	return func(o *options) {
		o.traceFile = path
	}
}

// WithWindowHost sets the window system used to place windowed devices.
//
// Example:
//
//	d := d3d8.Create(legacy.SDKVersion, rt, d3d8.WithWindowHost(window.Nop{}))
func WithWindowHost(h window.Host) Option {
	return func(o *options) {
		o.host = h
	}
}

// WithShaderUtility sets the shader utility capability. By default the
// process-wide shaderutil.Default() is used.
func WithShaderUtility(c *shaderutil.Capability) Option {
	return func(o *options) {
		o.shaders = c
	}
}

// WithNotifier sets how one-time warnings reach the user. By default a
// message box is shown on Windows and a line is written to standard error
// elsewhere. Without WithShaderUtility the factory then resolves its own
// shader capability so the missing-library warning uses warn too.
func WithNotifier(warn func(title, message string)) Option {
	return func(o *options) {
		if warn != nil {
			o.notifier = notify.Func(warn)
		}
	}
}
