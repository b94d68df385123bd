package layout

import (
	"github.com/wippyai/typelayout/errors"
	"github.com/wippyai/typelayout/typedesc"
)

// MaxDepth bounds recursive expansion. Well-formed type systems cannot nest
// composites by value this deep; hitting the ceiling means the metadata
// source produced a cycle.
const MaxDepth = 64

// Compute produces the layout tree for a composite descriptor. When
// recursive is true, struct/union/tagged-union members are expanded in place
// down to primitives and pointers; pointers are never followed. When false,
// only this level's segments and gaps are computed.
func Compute(desc *typedesc.TypeDescriptor, recursive bool) (*Tree, error) {
	return compute(desc, recursive, nil)
}

func compute(desc *typedesc.TypeDescriptor, recursive bool, chain []string) (*Tree, error) {
	if len(chain) >= MaxDepth {
		return nil, errors.RecursionLimit(errors.PhaseLayout, append(chain, desc.Name))
	}
	chain = append(chain, desc.Name)

	switch desc.Kind {
	case typedesc.KindStruct, typedesc.KindUnion:
		return fieldLayout(desc.Name, desc.Fields, desc.Size, recursive, chain)
	case typedesc.KindTaggedUnion:
		return variantLayout(desc, recursive, chain)
	default:
		return nil, errors.New(errors.PhaseLayout, errors.KindInvalidInput).
			TypeName(desc.Name).
			Detail("%s is not a struct, union, or tagged union", desc.Kind).
			Build()
	}
}

// fieldLayout lays out an ordered field list inside [0, bound), emitting a
// Padding segment for every gap the cursor walk uncovers.
func fieldLayout(typeName string, fields []typedesc.FieldDescriptor, bound uint32, recursive bool, chain []string) (*Tree, error) {
	tree := &Tree{TypeName: typeName, TotalSize: bound}

	cursor := uint32(0)
	for _, f := range fields {
		if f.Type == nil {
			return nil, errors.InvalidMetadata(errors.PhaseLayout, typeName, "field "+f.Name+" has no type")
		}
		if f.Offset > cursor {
			gap := Padding{Start: cursor, End: f.Offset}
			tree.Segments = append(tree.Segments, gap)
			tree.TotalPadding += gap.Width()
		}

		seg := Field{
			Name:     f.Name,
			TypeName: f.Type.Name,
			Start:    f.Offset,
			End:      f.End(),
		}
		if recursive && f.Type.Kind.IsComposite() {
			child, err := compute(f.Type, true, chain)
			if err != nil {
				return nil, err
			}
			seg.Child = child
			tree.TotalPadding += child.TotalPadding
		}
		tree.Segments = append(tree.Segments, seg)

		if end := seg.End; end > cursor {
			cursor = end
		}
	}

	if cursor < bound {
		tail := Padding{Start: cursor, End: bound}
		tree.Segments = append(tree.Segments, tail)
		// An empty one-byte type is the empty-base case: its single byte
		// overlaps real data in derived types, so it contributes no padding.
		if !(len(fields) == 0 && bound == 1) {
			tree.TotalPadding += tail.Width()
		}
	}

	return tree, nil
}

// variantLayout lays out each variant of a tagged union as a struct rooted
// at offset 0, bounded by the variant's own size. Variant field layouts are
// this level's structure, so they are computed even in non-recursive mode;
// the recursive flag only governs expansion of the field types inside them.
// Variants are emitted in source order, duplicates included.
func variantLayout(desc *typedesc.TypeDescriptor, recursive bool, chain []string) (*Tree, error) {
	tree := &Tree{TypeName: desc.Name, TotalSize: desc.Size}

	for _, v := range desc.Variants {
		child, err := fieldLayout(desc.Name+"::"+v.TagName, v.Fields, v.Size, recursive, chain)
		if err != nil {
			return nil, err
		}
		tree.Segments = append(tree.Segments, VariantGroup{
			TagName:  v.TagName,
			TypeName: desc.Name,
			Start:    0,
			End:      v.Size,
			Child:    child,
		})
		// Summed across overlaid variants; see the package comment for why
		// this can exceed the union's footprint.
		tree.TotalPadding += child.TotalPadding
	}

	return tree, nil
}
