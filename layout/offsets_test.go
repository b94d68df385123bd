package layout

import (
	stderrors "errors"
	"testing"

	"github.com/wippyai/typelayout/errors"
)

func TestOffsets(t *testing.T) {
	desc := structOf("Gapped", 24,
		field("x", 0, prim("u32", 4)),
		field("y", 16, prim("u64", 8)),
	)

	got, err := Offsets(desc)
	if err != nil {
		t.Fatal(err)
	}

	want := []FieldOffset{{"x", 0}, {"y", 16}}
	if len(got) != len(want) {
		t.Fatalf("got %d offsets, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("offset %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestOffsetsEmptyStruct(t *testing.T) {
	got, err := Offsets(structOf("Empty", 1))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("got %v, want none", got)
	}
}

func TestOffsetsRejectsLeafKinds(t *testing.T) {
	_, err := Offsets(prim("int", 4))
	if err == nil {
		t.Fatal("expected error")
	}
	var e *errors.Error
	if !stderrors.As(err, &e) || e.Kind != errors.KindInvalidInput {
		t.Errorf("got %v, want invalid_input", err)
	}
}

// Every offset the view reports equals the start of the same field's segment
// in the non-recursive layout.
func TestOffsetsMatchLayout(t *testing.T) {
	desc := structOf("Mixed", 32,
		field("a", 0, prim("u8", 1)),
		field("b", 4, prim("u32", 4)),
		field("c", 16, prim("u64", 8)),
	)

	offsets, err := Offsets(desc)
	if err != nil {
		t.Fatal(err)
	}
	tree, err := Compute(desc, false)
	if err != nil {
		t.Fatal(err)
	}

	starts := make(map[string]uint32)
	for _, seg := range tree.Segments {
		if f, ok := seg.(Field); ok {
			starts[f.Name] = f.Start
		}
	}

	for _, fo := range offsets {
		start, ok := starts[fo.Name]
		if !ok {
			t.Errorf("field %s missing from layout", fo.Name)
			continue
		}
		if start != fo.Offset {
			t.Errorf("field %s: offsets view %d, layout start %d", fo.Name, fo.Offset, start)
		}
	}
}
