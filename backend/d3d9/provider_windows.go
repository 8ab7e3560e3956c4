//go:build windows

package d3d9

import (
	"fmt"
	"unsafe"

	"github.com/gonutz/d3d9"

	"github.com/gogpu/d3d8"
	"github.com/gogpu/d3d8/backend"
	"github.com/gogpu/d3d8/d3dtypes"
	"github.com/gogpu/d3d8/modern"
)

// init registers the backend when the descriptor layouts agree with the
// system headers the binding was generated from.
func init() {
	if err := checkLayouts(); err != nil {
		d3d8.Logger().Warn("d3d9 backend disabled", "err", err)
		return
	}
	backend.Register(backend.BackendD3D9, func() backend.Provider {
		return &Provider{}
	})
}

func checkLayouts() error {
	sizes := []struct {
		name       string
		ours, them uintptr
	}{
		{"DISPLAYMODE", unsafe.Sizeof(d3dtypes.DisplayMode{}), unsafe.Sizeof(d3d9.DISPLAYMODE{})},
		{"PRESENT_PARAMETERS", unsafe.Sizeof(modern.PresentParameters{}), unsafe.Sizeof(d3d9.PRESENT_PARAMETERS{})},
		{"CAPS9", unsafe.Sizeof(modern.Caps{}), unsafe.Sizeof(d3d9.CAPS9{})},
		{"ADAPTER_IDENTIFIER9", unsafe.Sizeof(modern.AdapterIdentifier{}), unsafe.Sizeof(d3d9.ADAPTER_IDENTIFIER9{})},
	}
	for _, s := range sizes {
		if s.ours != s.them {
			return fmt.Errorf("%s is %d bytes, binding has %d", s.name, s.ours, s.them)
		}
	}
	return nil
}

// Provider opens the system Direct3D 9 runtime.
type Provider struct{}

// Name returns the backend identifier.
func (p *Provider) Name() string {
	return backend.BackendD3D9
}

// Open creates the runtime object.
func (p *Provider) Open() (modern.Runtime, error) {
	obj, err := d3d9.Create(d3d9.SDK_VERSION)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", backend.ErrNoRuntime, err)
	}
	return &Runtime{obj: obj}, nil
}
