package hal

import (
	"fmt"

	"github.com/gogpu/gputypes"
	gpuhal "github.com/gogpu/wgpu/hal"
	_ "github.com/gogpu/wgpu/hal/vulkan"

	"github.com/gogpu/d3d8/backend"
	"github.com/gogpu/d3d8/modern"
)

// init registers the HAL backend on package import.
func init() {
	backend.Register(backend.BackendHAL, func() backend.Provider {
		return &Provider{}
	})
}

// Provider opens a Vulkan HAL instance.
type Provider struct{}

// Name returns the backend identifier.
func (p *Provider) Name() string {
	return backend.BackendHAL
}

// Open creates the instance and wraps it in a Runtime with display modes
// from DefaultModeSource.
func (p *Provider) Open() (modern.Runtime, error) {
	b, ok := gpuhal.GetBackend(gputypes.BackendVulkan)
	if !ok {
		return nil, fmt.Errorf("%w: vulkan backend not available", backend.ErrBackendNotAvailable)
	}
	instance, err := b.CreateInstance(&gpuhal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return nil, fmt.Errorf("%w: create instance: %w", backend.ErrNoRuntime, err)
	}
	rt, err := NewRuntime(instance, DefaultModeSource())
	if err != nil {
		instance.Destroy()
		return nil, err
	}
	return rt, nil
}
