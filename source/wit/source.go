package wit

import (
	"fmt"
	"os"

	witgo "go.bytecodealliance.org/wit"
	"go.uber.org/zap"

	"github.com/wippyai/typelayout/errors"
	"github.com/wippyai/typelayout/layout"
	"github.com/wippyai/typelayout/typedesc"
)

// Source resolves type descriptors from one WIT document.
type Source struct {
	resolve *witgo.Resolve
}

// New wraps an already-decoded WIT document.
func New(res *witgo.Resolve) *Source {
	return &Source{resolve: res}
}

// Load reads a wit.json document from path.
func Load(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	res, err := witgo.DecodeJSON(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return New(res), nil
}

// Resolve looks name up among the document's named type definitions.
func (s *Source) Resolve(name string) (*typedesc.TypeDescriptor, error) {
	Logger().Debug("resolving type", zap.String("name", name))

	for _, td := range s.resolve.TypeDefs {
		if td.Name == nil || *td.Name != name {
			continue
		}
		desc, err := convert(td, nil)
		if err != nil {
			return nil, err
		}
		if err := desc.Validate(); err != nil {
			return nil, err
		}
		return desc, nil
	}
	return nil, errors.NotFound(errors.PhaseResolve, name)
}

// convert maps a WIT type to a descriptor, computing Canonical ABI offsets
// for composite members. List, string, and resource types are indirect and
// convert to pointer-kind leaves.
func convert(t witgo.Type, chain []string) (*typedesc.TypeDescriptor, error) {
	if len(chain) >= layout.MaxDepth {
		return nil, errors.RecursionLimit(errors.PhaseResolve, append(chain, witName(t)))
	}
	chain = append(chain, witName(t))

	td, ok := t.(*witgo.TypeDef)
	if !ok {
		size, align := sizeAlign(t)
		return &typedesc.TypeDescriptor{
			Name:      witName(t),
			Kind:      typedesc.KindPrimitive,
			Size:      size,
			Alignment: align,
		}, nil
	}

	name := witName(td)
	size, align := typeDefSizeAlign(td)

	switch kind := td.Kind.(type) {
	case *witgo.Record:
		desc := &typedesc.TypeDescriptor{Name: name, Kind: typedesc.KindStruct, Size: size, Alignment: align}
		offset := uint32(0)
		for _, f := range kind.Fields {
			fs, fa := sizeAlign(f.Type)
			offset = alignTo(offset, fa)
			ft, err := convert(f.Type, chain)
			if err != nil {
				return nil, err
			}
			desc.Fields = append(desc.Fields, typedesc.FieldDescriptor{Name: f.Name, Offset: offset, Type: ft})
			offset += fs
		}
		return desc, nil

	case *witgo.Tuple:
		desc := &typedesc.TypeDescriptor{Name: name, Kind: typedesc.KindStruct, Size: size, Alignment: align}
		offset := uint32(0)
		for i, tt := range kind.Types {
			fs, fa := sizeAlign(tt)
			offset = alignTo(offset, fa)
			ft, err := convert(tt, chain)
			if err != nil {
				return nil, err
			}
			desc.Fields = append(desc.Fields, typedesc.FieldDescriptor{
				Name:   fmt.Sprintf("__%d", i),
				Offset: offset,
				Type:   ft,
			})
			offset += fs
		}
		return desc, nil

	case *witgo.Variant:
		var payloads []witgo.Type
		for _, c := range kind.Cases {
			payloads = append(payloads, c.Type)
		}
		var names []string
		for _, c := range kind.Cases {
			names = append(names, c.Name)
		}
		return convertVariant(name, size, align, names, payloads, chain)

	case *witgo.Option:
		return convertVariant(name, size, align,
			[]string{"none", "some"}, []witgo.Type{nil, kind.Type}, chain)

	case *witgo.Result:
		return convertVariant(name, size, align,
			[]string{"ok", "error"}, []witgo.Type{kind.OK, kind.Err}, chain)

	case *witgo.List, witgo.String:
		return &typedesc.TypeDescriptor{Name: name, Kind: typedesc.KindPointer, Size: size, Alignment: align}, nil

	case *witgo.Own, *witgo.Borrow:
		return &typedesc.TypeDescriptor{Name: name, Kind: typedesc.KindPointer, Size: size, Alignment: align}, nil

	case witgo.Type:
		// Alias of another type.
		return convert(kind, chain)

	default:
		// Enums and flags are bare discriminant/bit storage.
		return &typedesc.TypeDescriptor{Name: name, Kind: typedesc.KindPrimitive, Size: size, Alignment: align}, nil
	}
}

// convertVariant builds a tagged-union descriptor whose variants overlay
// the payload region. The discriminant's storage is included in the union's
// size but is opaque: it never appears as a field.
func convertVariant(name string, size, align uint32, tags []string, payloads []witgo.Type, chain []string) (*typedesc.TypeDescriptor, error) {
	_, region := payloadRegion(payloads)

	desc := &typedesc.TypeDescriptor{Name: name, Kind: typedesc.KindTaggedUnion, Size: size, Alignment: align}
	for i, tag := range tags {
		v := typedesc.VariantDescriptor{TagName: tag, Size: region}
		if payloads[i] != nil {
			pt, err := convert(payloads[i], chain)
			if err != nil {
				return nil, err
			}
			v.Fields = []typedesc.FieldDescriptor{{Name: "__0", Offset: 0, Type: pt}}
		}
		desc.Variants = append(desc.Variants, v)
	}
	return desc, nil
}

func witName(t witgo.Type) string {
	switch typ := t.(type) {
	case witgo.Bool:
		return "bool"
	case witgo.U8:
		return "u8"
	case witgo.S8:
		return "s8"
	case witgo.U16:
		return "u16"
	case witgo.S16:
		return "s16"
	case witgo.U32:
		return "u32"
	case witgo.S32:
		return "s32"
	case witgo.U64:
		return "u64"
	case witgo.S64:
		return "s64"
	case witgo.F32:
		return "f32"
	case witgo.F64:
		return "f64"
	case witgo.Char:
		return "char"
	case witgo.String:
		return "string"
	case *witgo.TypeDef:
		if typ.Name != nil {
			return *typ.Name
		}
		return anonymousName(typ.Kind)
	default:
		return "unknown"
	}
}

func anonymousName(kind witgo.TypeDefKind) string {
	switch k := kind.(type) {
	case *witgo.Record:
		return "record"
	case *witgo.Variant:
		return "variant"
	case *witgo.Enum:
		return "enum"
	case *witgo.Flags:
		return "flags"
	case *witgo.Tuple:
		return "tuple"
	case *witgo.List:
		return "list<" + witName(k.Type) + ">"
	case *witgo.Option:
		return "option<" + witName(k.Type) + ">"
	case *witgo.Result:
		return "result"
	case *witgo.Own:
		return "own"
	case *witgo.Borrow:
		return "borrow"
	case witgo.Type:
		return witName(k)
	default:
		return "unknown"
	}
}
