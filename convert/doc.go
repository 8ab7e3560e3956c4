// Package convert translates descriptors, flags and state numbers between the
// legacy and modern Direct3D generations.
//
// All functions are pure and allocation-free. Display modes need no
// conversion: both generations share d3dtypes.DisplayMode.
package convert
