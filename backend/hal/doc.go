// Package hal provides a modern runtime backed by a gogpu/wgpu HAL instance.
//
// The runtime reports one adapter per HAL adapter and answers format,
// multisample and capability queries from what WebGPU-class hardware
// guarantees. Display modes come from XRandR when an X server is reachable
// and from a built-in table otherwise.
//
// Devices keep their render, sampler and texture stage state in memory and
// compile a position-only fixed-function shader at creation. Legacy shader
// bytecode cannot run on the HAL, so programmable shaders are reported
// unavailable.
//
// Import the package for its side effect to register the "hal" backend:
//
//	import _ "github.com/gogpu/d3d8/backend/hal"
//
// # Building
//
// The Vulkan HAL calls into the driver through goffi, and the shader utility
// loader of the d3d8 package uses purego. Both ship a Go implementation of
// the cgo runtime. On Linux, FreeBSD and macOS, build anything that imports
// this package with cgo disabled and goffi's copy turned off:
//
//	CGO_ENABLED=0 go build -tags nofakecgo ./...
//	CGO_ENABLED=0 go test -tags nofakecgo ./...
package hal
