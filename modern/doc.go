// Package modern describes the newer Direct3D interface generation that the
// translation layer drives.
//
// It holds the modern descriptor layouts (Caps, PresentParameters,
// AdapterIdentifier), the state enumerations the layer needs, and the
// collaborator contract: Runtime (the top-level modern object) and Device.
// Implementations live under backend/.
package modern
