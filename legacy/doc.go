// Package legacy holds the binary shapes of the older Direct3D interface
// generation: capability, presentation and adapter-identity descriptors,
// flags and state numbers that only the legacy generation defines, and its
// interface identifiers.
//
// Field order of every descriptor matches the C declaration, so values can be
// handed across an ABI boundary unchanged.
package legacy
