// Package layout computes the physical memory layout of a type from its
// descriptor.
//
// Compute walks a descriptor's members in declared order and produces an
// ordered tree of segments: occupied byte ranges (Field), synthesized gaps
// (Padding), and overlaid tagged-union alternatives (VariantGroup). Gaps are
// derived purely from the offsets and sizes the source reported; the engine
// makes no ABI assumptions of its own.
//
// # Padding
//
// A gap between the running cursor and the next field is a mid-structure
// alignment hole; a gap between the last field and the type's total size is
// trailing padding. Both are emitted as Padding segments, and both count
// toward the tree's TotalPadding. With recursion enabled, TotalPadding is
// cumulative: a struct containing a struct with internal padding reports
// both.
//
// # Tagged unions
//
// Every variant of a tagged union overlays the same storage, so its variant
// groups all start at offset 0 and the sum of their padding can exceed the
// union's real footprint. The overcount is deliberate: it answers "how many
// padded bytes could this union's storage hold" across all alternatives.
// Each group's child tree carries its own TotalPadding so a stricter
// consumer can recompute a non-overlapping estimate.
package layout
