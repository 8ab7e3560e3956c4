// Package backend provides a pluggable registry of modern runtime providers.
//
// The translation layer drives any implementation of modern.Runtime. This
// package lets those implementations register themselves and be selected at
// runtime.
//
// # Provider Registration
//
// Providers are registered via init() functions and selected at runtime:
//
//	import _ "github.com/gogpu/d3d8/backend/d3d9" // native runtime (Windows)
//	import _ "github.com/gogpu/d3d8/backend/hal"  // gogpu/wgpu HAL
//
// # Provider Selection
//
// Use Default() to get the best available provider, or Get() to request
// a specific provider by name:
//
//	// Open the default (best available) runtime
//	rt, err := backend.Open("")
//
//	// Or request a specific provider
//	rt, err := backend.Open(backend.BackendHAL)
//
// # Available Providers
//
// - "d3d9": the native Direct3D 9 runtime via github.com/gonutz/d3d9
// - "hal": adapters of a gogpu/wgpu HAL instance
package backend
