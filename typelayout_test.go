package typelayout

import (
	stderrors "errors"
	"testing"

	"github.com/wippyai/typelayout/errors"
	"github.com/wippyai/typelayout/typedesc"
)

type mapResolver map[string]*typedesc.TypeDescriptor

func (m mapResolver) Resolve(name string) (*typedesc.TypeDescriptor, error) {
	if d, ok := m[name]; ok {
		return d, nil
	}
	return nil, errors.NotFound(errors.PhaseResolve, name)
}

func testResolver() mapResolver {
	u32 := &typedesc.TypeDescriptor{Name: "u32", Kind: typedesc.KindPrimitive, Size: 4, Alignment: 4}
	inner := &typedesc.TypeDescriptor{
		Name: "Inner", Kind: typedesc.KindStruct, Size: 8, Alignment: 4,
		Fields: []typedesc.FieldDescriptor{
			{Name: "v", Offset: 0, Type: u32},
		},
	}
	outer := &typedesc.TypeDescriptor{
		Name: "Outer", Kind: typedesc.KindStruct, Size: 16, Alignment: 4,
		Fields: []typedesc.FieldDescriptor{
			{Name: "in", Offset: 0, Type: inner},
			{Name: "x", Offset: 8, Type: u32},
		},
	}
	return mapResolver{"Inner": inner, "Outer": outer}
}

func TestInspect(t *testing.T) {
	tree, err := Inspect(testResolver(), "Outer")
	if err != nil {
		t.Fatal(err)
	}
	if tree.TotalSize != 16 {
		t.Errorf("total size: got %d, want 16", tree.TotalSize)
	}
	// Non-recursive: Inner's trailing padding not visible here.
	if tree.TotalPadding != 4 {
		t.Errorf("total padding: got %d, want 4", tree.TotalPadding)
	}
}

func TestInspectRecursive(t *testing.T) {
	tree, err := Inspect(testResolver(), "Outer", Recursive())
	if err != nil {
		t.Fatal(err)
	}
	// Inner's 4 trailing bytes plus Outer's own 4.
	if tree.TotalPadding != 8 {
		t.Errorf("total padding: got %d, want 8", tree.TotalPadding)
	}
}

func TestInspectOffsets(t *testing.T) {
	offsets, err := InspectOffsets(testResolver(), "Outer")
	if err != nil {
		t.Fatal(err)
	}
	if len(offsets) != 2 || offsets[1].Name != "x" || offsets[1].Offset != 8 {
		t.Errorf("unexpected offsets: %v", offsets)
	}
}

func TestInspectUnresolved(t *testing.T) {
	_, err := Inspect(testResolver(), "no::such::Type")
	if err == nil {
		t.Fatal("expected error")
	}
	var e *errors.Error
	if !stderrors.As(err, &e) || e.Kind != errors.KindNotFound {
		t.Fatalf("got %v, want not_found", err)
	}
	if e.TypeName != "no::such::Type" {
		t.Errorf("error should name the type: %q", e.TypeName)
	}
}
