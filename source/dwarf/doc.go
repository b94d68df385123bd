// Package dwarf resolves type descriptors from the DWARF debug info of a
// compiled binary (ELF or Mach-O).
//
// Resolution follows the debugger convention: the query is first looked up
// as a type name; when that fails, it is looked up as a global variable and
// the variable's type is used instead.
//
// # Approximations
//
// DWARF is richer than the descriptor model:
//
//   - Rust enums carry variant parts; the Go reader surfaces them as plain
//     structs or unions, so niche-optimized layouts render approximately.
//   - Arrays are reported as opaque leaves sized like the whole array.
//   - Bitfield members are placed at their byte offset; sub-byte packing is
//     not modeled.
package dwarf
