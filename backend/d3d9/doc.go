// Package d3d9 provides a modern runtime backed by the system Direct3D 9
// runtime through github.com/gonutz/d3d9. It is available on Windows only.
//
// Import the package for its side effect to register the "d3d9" backend:
//
//	import _ "github.com/gogpu/d3d8/backend/d3d9"
package d3d9
