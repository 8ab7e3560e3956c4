package shaderutil

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/gogpu/d3d8/internal/notify"
)

// ErrUnavailable is returned by Resolve when the library could not be loaded.
var ErrUnavailable = errors.New("shaderutil: shader utility library unavailable")

// State is the resolution state of a Capability.
type State int32

const (
	// Unresolved means Resolve has not run yet.
	Unresolved State = iota
	// Available means the library was loaded.
	Available
	// Unavailable means loading failed. The state is final.
	Unavailable
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Unresolved:
		return "Unresolved"
	case Available:
		return "Available"
	case Unavailable:
		return "Unavailable"
	default:
		return fmt.Sprintf("State(%d)", int32(s))
	}
}

// Assembler converts between shader bytecode and assembly text.
type Assembler interface {
	// Disassemble renders bytecode as assembly text.
	Disassemble(code []uint32) (string, error)
	// Assemble compiles assembly text to bytecode.
	Assemble(src string) ([]uint32, error)
}

// Loader loads the library and returns its Assembler.
type Loader func() (Assembler, error)

// Capability is an optional Assembler resolved once.
type Capability struct {
	load     Loader
	notifier notify.Notifier
	logger   *slog.Logger

	once  sync.Once
	state atomic.Int32
	asm   Assembler
	err   error
}

// Option configures a Capability.
type Option func(*Capability)

// WithNotifier sets the notifier used for the missing-library warning.
func WithNotifier(n notify.Notifier) Option {
	return func(c *Capability) { c.notifier = n }
}

// WithLogger sets the logger for resolution events.
func WithLogger(l *slog.Logger) Option {
	return func(c *Capability) { c.logger = l }
}

// New returns an unresolved capability that calls load on first use.
func New(load Loader, opts ...Option) *Capability {
	c := &Capability{load: load}
	for _, opt := range opts {
		opt(c)
	}
	if c.notifier == nil {
		c.notifier = notify.System()
	}
	if c.logger == nil {
		c.logger = slog.New(slog.DiscardHandler)
	}
	return c
}

// Static returns a capability already resolved to a.
func Static(a Assembler) *Capability {
	c := New(func() (Assembler, error) { return a, nil })
	c.Resolve()
	return c
}

// Disabled returns a capability already resolved Unavailable. No warning is
// shown.
func Disabled() *Capability {
	c := New(func() (Assembler, error) { return nil, ErrUnavailable },
		WithNotifier(notify.Func(func(string, string) {})))
	c.Resolve()
	return c
}

// State returns the current resolution state.
func (c *Capability) State() State {
	return State(c.state.Load())
}

// Resolve loads the library on the first call and returns the cached result
// on every call. The error wraps ErrUnavailable.
func (c *Capability) Resolve() (Assembler, error) {
	c.once.Do(func() {
		asm, err := c.load()
		if err == nil && asm == nil {
			err = ErrUnavailable
		}
		if err != nil {
			if !errors.Is(err, ErrUnavailable) {
				err = fmt.Errorf("%w: %w", ErrUnavailable, err)
			}
			c.err = err
			c.state.Store(int32(Unavailable))
			c.logger.Warn("shader utility library unavailable, shader support disabled", "err", err)
			c.notifier.Warn("d3d8", "Shader utility library could not be loaded; shaders are unavailable.")
			return
		}
		c.asm = asm
		c.state.Store(int32(Available))
		c.logger.Debug("shader utility library loaded")
	})
	return c.asm, c.err
}

// Available resolves the capability and reports whether it is usable.
func (c *Capability) Available() bool {
	_, err := c.Resolve()
	return err == nil
}

var (
	defaultOnce sync.Once
	defaultCap  *Capability
)

// NewSystem returns an unresolved capability backed by the system library.
func NewSystem(opts ...Option) *Capability {
	return New(func() (Assembler, error) { return Load("") }, opts...)
}

// Default returns the process-wide capability backed by the system library.
// Its warning goes to the system notifier.
func Default() *Capability {
	defaultOnce.Do(func() {
		defaultCap = NewSystem()
	})
	return defaultCap
}
