// Package typelayout inspects a compiled program's type metadata and renders
// the physical memory layout of any named type: byte offsets of each member,
// the holes alignment introduces between them, trailing padding, and, on
// request, the same breakdown for every member's own type, down to
// primitives. Tagged unions (Rust enums, WIT variants) are handled as
// overlaid variant groups sharing one byte range.
//
// # Architecture Overview
//
// The library is organized into packages with distinct responsibilities:
//
//	typelayout/          Root package with the Inspect facade
//	├── typedesc/        Language-agnostic type descriptor model and Resolver
//	├── layout/          Layout tree computation (segments, holes, padding)
//	├── render/          Indented, colorized text rendering
//	├── source/dwarf/    Resolver backed by a binary's DWARF debug info
//	├── source/wit/      Resolver backed by a WIT (component model) document
//	├── source/gopkg/    Resolver backed by Go packages via go/types
//	└── errors/          Structured error types
//
// # Quick Start
//
// Resolve a type from a compiled binary and print its layout:
//
//	src, err := dwarf.Open("./a.out")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer src.Close()
//
//	tree, err := typelayout.Inspect(src, "task_struct", typelayout.Recursive())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	r := render.New(os.Stdout)
//	r.RenderTree(tree, "task_struct", true)
//
// # Accuracy
//
// The layout engine reports exactly what the metadata source describes.
// Niche-optimized tagged-union representations, where a variant is encoded
// as an otherwise-impossible bit pattern instead of an explicit
// discriminant, are rendered approximately. Padding totals for tagged
// unions sum across overlaid variants and can exceed the union's real
// footprint; each variant group carries its own total for stricter
// consumers.
//
// # Concurrency
//
// Every inspection builds a fresh tree and shares no state with other
// inspections. Resolvers wrap external metadata readers and are not safe
// for concurrent use unless documented otherwise.
package typelayout
