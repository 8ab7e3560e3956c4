package backend

import (
	"errors"

	"github.com/gogpu/d3d8/modern"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend is not available.
	ErrBackendNotAvailable = errors.New("backend: not available")

	// ErrNoRuntime is returned when a backend fails to produce a runtime.
	ErrNoRuntime = errors.New("backend: modern runtime could not be initialized")
)

// Backend names.
const (
	// BackendD3D9 drives the native Direct3D 9 runtime (Windows only).
	BackendD3D9 = "d3d9"
	// BackendHAL drives a gogpu/wgpu HAL instance (Vulkan, Metal, GLES or noop).
	BackendHAL = "hal"
)

// Provider opens a modern runtime.
//
// Providers must be registered via Register() and are selected via
// Get() or Default().
type Provider interface {
	// Name returns the backend identifier (e.g., "d3d9", "hal").
	Name() string

	// Open initializes the runtime. The returned runtime has a reference
	// count of 1 owned by the caller.
	Open() (modern.Runtime, error)
}
