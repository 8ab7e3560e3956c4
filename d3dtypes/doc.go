// Package d3dtypes holds the enumerations and small value types that the
// legacy and modern Direct3D interface generations share bit-for-bit.
//
// Both generations agree on pixel format codes, device types, multisample
// types, display mode layout and the HRESULT error domain, so these types are
// defined once here and imported by the legacy, modern and convert packages.
package d3dtypes
