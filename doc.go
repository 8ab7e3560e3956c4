// Package d3d8 presents the legacy fixed-function Direct3D object model on
// top of a modern runtime.
//
// Clients written against the older interface obtain a Direct3D8 factory
// from Create, enumerate adapters and display modes, query capabilities and
// create Devices, exactly as they would with the original runtime. Every
// call is translated and forwarded to a modern.Runtime supplied by one of
// the backend packages.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/d3d8"
//		"github.com/gogpu/d3d8/legacy"
//		_ "github.com/gogpu/d3d8/backend/hal"
//	)
//
//	d, err := d3d8.CreateDefault(legacy.SDKVersion)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer d.Release()
//
//	for i := range d.GetAdapterModeCount(0) {
//		var m d3dtypes.DisplayMode
//		if err := d.EnumAdapterModes(0, i, &m); err == nil {
//			fmt.Println(m)
//		}
//	}
//
// # Calling Convention
//
// Methods keep the legacy out-parameter shape: results are written through
// pointer arguments and a nil pointer is rejected with
// d3dtypes.ErrInvalidCall before the runtime is consulted. Errors are
// d3dtypes.Result values. Errors from the runtime are returned unchanged.
//
// # Lifetime
//
// Direct3D8 and Device keep no reference counts of their own. AddRef and
// Release forward to the wrapped modern object, and the legacy object is
// destroyed exactly when that object's count reaches zero.
//
// # Configuration
//
// Device creation consults an explicit Config (anisotropic filtering,
// antialiasing, window styling, presentation interval) passed with
// WithConfig. See the config package for loading it from a YAML file.
package d3d8
