package layout

import (
	"github.com/wippyai/typelayout/errors"
	"github.com/wippyai/typelayout/typedesc"
)

// FieldOffset is one name/offset pair of the offsets view.
type FieldOffset struct {
	Name   string
	Offset uint32
}

// Offsets returns each top-level field's name and declared offset in
// declared order. No gap computation, no recursion.
func Offsets(desc *typedesc.TypeDescriptor) ([]FieldOffset, error) {
	switch desc.Kind {
	case typedesc.KindStruct, typedesc.KindUnion:
	default:
		return nil, errors.New(errors.PhaseLayout, errors.KindInvalidInput).
			TypeName(desc.Name).
			Detail("%s has no member offsets", desc.Kind).
			Build()
	}

	offsets := make([]FieldOffset, 0, len(desc.Fields))
	for _, f := range desc.Fields {
		offsets = append(offsets, FieldOffset{Name: f.Name, Offset: f.Offset})
	}
	return offsets, nil
}
