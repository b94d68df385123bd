package typedesc

import (
	"github.com/wippyai/typelayout/errors"
)

// TypeDescriptor is an immutable snapshot of one type's physical shape.
// Exactly one of Fields/Variants is populated, matching Kind.
type TypeDescriptor struct {
	// Name is the fully qualified display name; it may contain template or
	// generic parameters.
	Name string

	Kind Kind

	// Size is the total size in bytes.
	Size uint32

	// Alignment is the required alignment in bytes. Informational: the
	// layout engine works purely from offsets and sizes.
	Alignment uint32

	// Fields is populated when Kind is KindStruct or KindUnion.
	Fields []FieldDescriptor

	// Variants is populated when Kind is KindTaggedUnion.
	Variants []VariantDescriptor
}

// FieldDescriptor is one named member of a struct or union. The field's size
// comes from its type descriptor.
type FieldDescriptor struct {
	Name string

	// Offset is the byte offset from the start of the containing type.
	// Struct fields are listed in ascending offset order; union members may
	// repeat offsets.
	Offset uint32

	Type *TypeDescriptor
}

// End returns the first byte past the field's storage.
func (f FieldDescriptor) End() uint32 {
	if f.Type == nil {
		return f.Offset
	}
	return f.Offset + f.Type.Size
}

// VariantDescriptor is one alternative payload shape of a tagged union.
// Every variant overlays the union's storage starting at offset 0; the
// discriminant is opaque to this model and never reported as a field.
type VariantDescriptor struct {
	// TagName is the discriminant label, e.g. a Rust enum's variant name.
	TagName string

	// Size bounds this variant's payload; at most the union's total size.
	Size uint32

	// Fields hold offsets relative to the variant's own start.
	Fields []FieldDescriptor
}

// Resolver produces a type descriptor for a named type. Implementations own
// all knowledge of the underlying language's ABI; the engine makes no
// assumptions beyond the descriptor shape.
//
// Resolve returns a *errors.Error of kind not_found when the name does not
// exist in the source's metadata. Source-internal failures (missing debug
// sections, unreadable files) are surfaced as-is.
type Resolver interface {
	Resolve(name string) (*TypeDescriptor, error)
}

// Validate checks the descriptor's structural invariants: the kind matches
// the populated member list, field storage stays inside the type, and struct
// offsets ascend. Sources call this before handing a descriptor to the
// engine; malformed metadata fails here instead of producing a bogus layout.
func (t *TypeDescriptor) Validate() error {
	switch t.Kind {
	case KindStruct, KindUnion:
		if len(t.Variants) > 0 {
			return errors.InvalidMetadata(errors.PhaseResolve, t.Name, "variants on a non-union kind")
		}
		prev := uint32(0)
		for _, f := range t.Fields {
			if f.Type == nil {
				return errors.InvalidMetadata(errors.PhaseResolve, t.Name, "field "+f.Name+" has no type")
			}
			// Zero-size trailing members (flexible arrays) may sit exactly
			// at the type's end.
			if t.Size > 0 && f.Offset > t.Size {
				return errors.New(errors.PhaseResolve, errors.KindInvalidMetadata).
					TypeName(t.Name).
					Detail("field %s offset %d outside type of size %d", f.Name, f.Offset, t.Size).
					Build()
			}
			if t.Kind == KindStruct && f.Offset < prev {
				return errors.New(errors.PhaseResolve, errors.KindInvalidMetadata).
					TypeName(t.Name).
					Detail("field %s offset %d below predecessor", f.Name, f.Offset).
					Build()
			}
			if t.Kind == KindStruct {
				prev = f.Offset
			}
		}
	case KindTaggedUnion:
		if len(t.Fields) > 0 {
			return errors.InvalidMetadata(errors.PhaseResolve, t.Name, "fields on a tagged union")
		}
		for _, v := range t.Variants {
			if v.Size > t.Size {
				return errors.New(errors.PhaseResolve, errors.KindInvalidMetadata).
					TypeName(t.Name).
					Detail("variant %s size %d exceeds union size %d", v.TagName, v.Size, t.Size).
					Build()
			}
		}
	case KindPrimitive, KindPointer:
		if len(t.Fields) > 0 || len(t.Variants) > 0 {
			return errors.InvalidMetadata(errors.PhaseResolve, t.Name, "members on a non-composite kind")
		}
	}
	return nil
}
