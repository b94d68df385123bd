// Package typedesc defines the language-agnostic type-descriptor model
// consumed by the layout engine.
//
// A TypeDescriptor is an immutable snapshot of one type's physical shape:
// its kind, total size, alignment, and (for composites) its ordered member
// list or (for tagged unions) its variant list. Descriptors are produced by
// a metadata source implementing Resolver and carry no reference back to it;
// the layout engine is testable with synthetic descriptors.
//
// The Kind space is deliberately closed. Language-specific nuances such as
// niche-optimized enum encodings are a source concern: a source maps whatever
// its debug format reports onto these five kinds, approximating when the
// format is richer than the model.
package typedesc
