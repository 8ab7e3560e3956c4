package d3d8

import (
	"github.com/gogpu/d3d8/backend"
	"github.com/gogpu/d3d8/modern"
)

// Create returns a factory over rt, the legacy entry point.
//
// The sdkVersion token is traced but not checked. Create returns nil when rt
// is nil, which is how callers report that the modern runtime could not be
// initialized. The factory takes over the caller's reference on rt.
func Create(sdkVersion uint32, rt modern.Runtime, opts ...Option) *Direct3D8 {
	o := newOptions(opts)
	o.logger.Info("Redirecting", "call", "Direct3DCreate8", "sdk_version", sdkVersion)

	if rt == nil {
		o.logger.Warn("modern runtime unavailable")
		return nil
	}
	return newDirect3D8(rt, o)
}

// CreateDefault opens the default backend and returns a factory over it.
//
// Example:
//
//	import _ "github.com/gogpu/d3d8/backend/hal"
//
//	d, err := d3d8.CreateDefault(legacy.SDKVersion)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer d.Release()
func CreateDefault(sdkVersion uint32, opts ...Option) (*Direct3D8, error) {
	return CreateWithBackend(sdkVersion, "", opts...)
}

// CreateWithBackend opens the named backend, or the default one when name
// is empty, and returns a factory over it.
func CreateWithBackend(sdkVersion uint32, name string, opts ...Option) (*Direct3D8, error) {
	rt, err := backend.Open(name)
	if err != nil {
		return nil, err
	}
	return Create(sdkVersion, rt, opts...), nil
}
