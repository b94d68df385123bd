package gopkg

import (
	"go/types"

	"github.com/wippyai/typelayout/errors"
	"github.com/wippyai/typelayout/layout"
	"github.com/wippyai/typelayout/typedesc"
)

// convert maps a go/types type to a descriptor. Structs are materialized
// with gc offsets; everything indirect becomes a pointer-kind leaf.
func (s *Source) convert(t types.Type, chain []string) (*typedesc.TypeDescriptor, error) {
	if len(chain) >= layout.MaxDepth {
		return nil, errors.RecursionLimit(errors.PhaseResolve, append(chain, t.String()))
	}
	chain = append(chain, t.String())

	name := t.String()
	size := clamp(s.sizes.Sizeof(t))
	align := clamp(s.sizes.Alignof(t))

	switch u := t.Underlying().(type) {
	case *types.Struct:
		desc := &typedesc.TypeDescriptor{
			Name:      name,
			Kind:      typedesc.KindStruct,
			Size:      size,
			Alignment: align,
		}
		fields := make([]*types.Var, 0, u.NumFields())
		for i := 0; i < u.NumFields(); i++ {
			fields = append(fields, u.Field(i))
		}
		offsets := s.sizes.Offsetsof(fields)
		for i, f := range fields {
			ft, err := s.convert(f.Type(), chain)
			if err != nil {
				return nil, err
			}
			desc.Fields = append(desc.Fields, typedesc.FieldDescriptor{
				Name:   f.Name(),
				Offset: clamp(offsets[i]),
				Type:   ft,
			})
		}
		return desc, nil

	case *types.Pointer, *types.Signature, *types.Map, *types.Chan, *types.Slice, *types.Interface:
		return &typedesc.TypeDescriptor{
			Name:      name,
			Kind:      typedesc.KindPointer,
			Size:      size,
			Alignment: align,
		}, nil

	case *types.Basic:
		kind := typedesc.KindPrimitive
		switch u.Kind() {
		case types.String, types.UnsafePointer, types.UntypedString, types.UntypedNil:
			kind = typedesc.KindPointer
		}
		return &typedesc.TypeDescriptor{
			Name:      name,
			Kind:      kind,
			Size:      size,
			Alignment: align,
		}, nil

	default:
		// Arrays and anything else with inline storage the model has no
		// kind for.
		return &typedesc.TypeDescriptor{
			Name:      name,
			Kind:      typedesc.KindPrimitive,
			Size:      size,
			Alignment: align,
		}, nil
	}
}

func clamp(n int64) uint32 {
	if n < 0 {
		return 0
	}
	return uint32(n)
}
