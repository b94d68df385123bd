package dwarf

import (
	dw "debug/dwarf"

	"github.com/wippyai/typelayout/errors"
	"github.com/wippyai/typelayout/layout"
	"github.com/wippyai/typelayout/typedesc"
)

// convertType maps a DWARF type to a descriptor. Composite members are
// materialized eagerly; pointees are not followed, so self-referential
// types terminate. chain guards against malformed metadata that nests
// composites beyond any well-formed depth.
func convertType(t dw.Type, display string, chain []string) (*typedesc.TypeDescriptor, error) {
	if len(chain) >= layout.MaxDepth {
		return nil, errors.RecursionLimit(errors.PhaseResolve, append(chain, display))
	}

	t = stripAliases(t)
	name := typeName(t, display)
	chain = append(chain, name)

	switch typ := t.(type) {
	case *dw.StructType:
		if typ.Incomplete {
			return nil, errors.InvalidMetadata(errors.PhaseResolve, name, "incomplete type")
		}
		kind := typedesc.KindStruct
		if typ.Kind == "union" {
			kind = typedesc.KindUnion
		}
		desc := &typedesc.TypeDescriptor{
			Name: name,
			Kind: kind,
			Size: clampSize(typ.Size()),
		}
		for _, f := range typ.Field {
			ft, err := convertType(f.Type, "", chain)
			if err != nil {
				return nil, err
			}
			desc.Fields = append(desc.Fields, typedesc.FieldDescriptor{
				Name:   f.Name,
				Offset: uint32(f.ByteOffset),
				Type:   ft,
			})
			if ft.Alignment > desc.Alignment {
				desc.Alignment = ft.Alignment
			}
		}
		if desc.Alignment == 0 {
			desc.Alignment = 1
		}
		return desc, nil

	case *dw.PtrType, *dw.FuncType, *dw.AddrType:
		size := clampSize(t.Size())
		if size == 0 {
			size = 8
		}
		return &typedesc.TypeDescriptor{
			Name:      name,
			Kind:      typedesc.KindPointer,
			Size:      size,
			Alignment: size,
		}, nil

	case *dw.UnsupportedType:
		// C++ reference members surface as unsupported entries. They denote
		// indirection, so they get pointer storage, not a zero-width leaf.
		if typ.Tag == dw.TagReferenceType || typ.Tag == dw.TagRvalueReferenceType {
			size := clampSize(t.Size())
			if size == 0 {
				size = 8
			}
			return &typedesc.TypeDescriptor{
				Name:      name,
				Kind:      typedesc.KindPointer,
				Size:      size,
				Alignment: size,
			}, nil
		}
		size := clampSize(t.Size())
		return &typedesc.TypeDescriptor{
			Name:      name,
			Kind:      typedesc.KindPrimitive,
			Size:      size,
			Alignment: leafAlign(size),
		}, nil

	default:
		// Base types, enums, arrays, and anything DWARF reports that the
		// model has no kind for become opaque leaves.
		size := clampSize(t.Size())
		return &typedesc.TypeDescriptor{
			Name:      name,
			Kind:      typedesc.KindPrimitive,
			Size:      size,
			Alignment: leafAlign(size),
		}, nil
	}
}

// stripAliases unwraps typedefs and cv-qualifiers.
func stripAliases(t dw.Type) dw.Type {
	for {
		switch typ := t.(type) {
		case *dw.TypedefType:
			t = typ.Type
		case *dw.QualType:
			t = typ.Type
		default:
			return t
		}
	}
}

func typeName(t dw.Type, display string) string {
	if c := t.Common(); c != nil && c.Name != "" {
		return c.Name
	}
	if display != "" {
		return display
	}
	return t.String()
}

func clampSize(n int64) uint32 {
	if n < 0 {
		return 0
	}
	return uint32(n)
}

// leafAlign guesses natural alignment for a leaf: the largest power of two
// not exceeding the size, capped at 8. DWARF as read here does not expose
// DW_AT_alignment, and the field is informational.
func leafAlign(size uint32) uint32 {
	align := uint32(1)
	for align < 8 && align*2 <= size {
		align *= 2
	}
	return align
}
