// Package shaderutil resolves the optional shader utility library used to
// translate legacy shader bytecode.
//
// The library is loaded at most once per Capability. When it is missing the
// capability is permanently Unavailable: a single warning is shown and every
// caller sees the same cached failure.
package shaderutil
