// Package gopkg resolves type descriptors from Go packages, using go/types
// sizes for the gc toolchain's ABI.
//
// Indirect Go types (pointers, slices, strings, maps, channels, functions,
// and interfaces) are reported as pointer-kind leaves sized like their
// in-struct headers (a slice header is 24 bytes, a string or interface
// header 16). Arrays are opaque leaves sized like the whole array. Go has
// no tagged unions, so no descriptor from this source carries variants.
package gopkg
