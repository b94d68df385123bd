package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/wippyai/typelayout/layout"
	"github.com/wippyai/typelayout/typedesc"
)

func prim(name string, size uint32) *typedesc.TypeDescriptor {
	return &typedesc.TypeDescriptor{Name: name, Kind: typedesc.KindPrimitive, Size: size, Alignment: size}
}

func field(name string, offset uint32, typ *typedesc.TypeDescriptor) typedesc.FieldDescriptor {
	return typedesc.FieldDescriptor{Name: name, Offset: offset, Type: typ}
}

func mustCompute(t *testing.T, desc *typedesc.TypeDescriptor, recursive bool) *layout.Tree {
	t.Helper()
	tree, err := layout.Compute(desc, recursive)
	if err != nil {
		t.Fatal(err)
	}
	return tree
}

func TestRenderTreeFlat(t *testing.T) {
	desc := &typedesc.TypeDescriptor{
		Name: "Gapped", Kind: typedesc.KindStruct, Size: 24, Alignment: 8,
		Fields: []typedesc.FieldDescriptor{
			field("x", 0, prim("u32", 4)),
			field("y", 16, prim("u64", 8)),
		},
	}

	var buf bytes.Buffer
	r := New(&buf)
	if err := r.RenderTree(mustCompute(t, desc, false), "Gapped", false); err != nil {
		t.Fatal(err)
	}

	want := `Gapped {
   x => 0 - 4

   --- Hole: 12 bytes ---

   y => 16 - 24
}
Total size: 24
`
	if buf.String() != want {
		t.Errorf("output mismatch:\ngot:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestRenderTreeRecursive(t *testing.T) {
	inner := &typedesc.TypeDescriptor{
		Name: "Inner", Kind: typedesc.KindStruct, Size: 16, Alignment: 8,
		Fields: []typedesc.FieldDescriptor{
			field("a", 0, prim("u8", 1)),
			field("b", 8, prim("u64", 8)),
		},
	}
	outer := &typedesc.TypeDescriptor{
		Name: "Outer", Kind: typedesc.KindStruct, Size: 24, Alignment: 8,
		Fields: []typedesc.FieldDescriptor{
			field("in", 0, inner),
			field("tail", 16, prim("u32", 4)),
		},
	}

	var buf bytes.Buffer
	r := New(&buf)
	if err := r.RenderTree(mustCompute(t, outer, true), "Outer", true); err != nil {
		t.Fatal(err)
	}

	want := `Outer {
   in => 0 - 16 (Inner) {
      a => 0 - 1

      --- Hole: 7 bytes ---

      b => 8 - 16
   }
   tail => 16 - 20

   --- Padding: 4 bytes ---

}
Total hole size: 7
Total padding size: 4
Total size: 24
`
	if buf.String() != want {
		t.Errorf("output mismatch:\ngot:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestRenderTaggedUnion(t *testing.T) {
	desc := &typedesc.TypeDescriptor{
		Name: "Option<u64>", Kind: typedesc.KindTaggedUnion, Size: 8, Alignment: 8,
		Variants: []typedesc.VariantDescriptor{
			{TagName: "None", Size: 8},
			{TagName: "Some", Size: 8, Fields: []typedesc.FieldDescriptor{
				field("__0", 0, prim("u64", 8)),
			}},
		},
	}

	var buf bytes.Buffer
	r := New(&buf)
	if err := r.RenderTree(mustCompute(t, desc, true), "Option<u64>", true); err != nil {
		t.Fatal(err)
	}

	want := `Option<u64> {
   None => 0 - 8 (Option<u64>::None) {

      --- Padding: 8 bytes ---

   }
   Some => 0 - 8 (Option<u64>::Some) {
      __0 => 0 - 8
   }
}
Total padding size: 8
Total size: 8
`
	if buf.String() != want {
		t.Errorf("output mismatch:\ngot:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestRenderDisplayName(t *testing.T) {
	desc := &typedesc.TypeDescriptor{
		Name: "std::vector<int>", Kind: typedesc.KindStruct, Size: 24, Alignment: 8,
		Fields: []typedesc.FieldDescriptor{
			field("_M_start", 0, prim("ptr", 8)),
		},
	}

	var buf bytes.Buffer
	r := New(&buf)
	if err := r.RenderTree(mustCompute(t, desc, false), "myvec", false); err != nil {
		t.Fatal(err)
	}

	if !strings.HasPrefix(buf.String(), "myvec (std::vector<int>) {") {
		t.Errorf("header should show query and resolved name:\n%s", buf.String())
	}
}

func TestRenderEmptyBaseExcludedFromTotals(t *testing.T) {
	desc := &typedesc.TypeDescriptor{
		Name: "noncopyable", Kind: typedesc.KindStruct, Size: 1, Alignment: 1,
	}

	var buf bytes.Buffer
	r := New(&buf)
	if err := r.RenderTree(mustCompute(t, desc, true), "noncopyable", true); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if !strings.Contains(out, "--- Padding: 1 bytes ---") {
		t.Errorf("the one-byte gap should still be shown:\n%s", out)
	}
	if strings.Contains(out, "Total padding size") {
		t.Errorf("the one-byte gap should not reach the totals:\n%s", out)
	}
}

func TestRenderOffsets(t *testing.T) {
	offsets := []layout.FieldOffset{{Name: "x", Offset: 0}, {Name: "y", Offset: 16}}

	var buf bytes.Buffer
	r := New(&buf)
	if err := r.RenderOffsets("Gapped", "Gapped", offsets); err != nil {
		t.Fatal(err)
	}

	want := `Gapped {
   x => 0
   y => 16
}
`
	if buf.String() != want {
		t.Errorf("output mismatch:\ngot:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestRenderNoTotalsInNonRecursiveMode(t *testing.T) {
	desc := &typedesc.TypeDescriptor{
		Name: "Tail", Kind: typedesc.KindStruct, Size: 16, Alignment: 8,
		Fields: []typedesc.FieldDescriptor{
			field("x", 0, prim("u32", 4)),
		},
	}

	var buf bytes.Buffer
	r := New(&buf)
	if err := r.RenderTree(mustCompute(t, desc, false), "Tail", false); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if strings.Contains(out, "Total padding size") || strings.Contains(out, "Total hole size") {
		t.Errorf("totals other than size should only appear in recursive mode:\n%s", out)
	}
	if !strings.Contains(out, "Total size: 16") {
		t.Errorf("total size always printed:\n%s", out)
	}
}

func TestRenderColorSmoke(t *testing.T) {
	desc := &typedesc.TypeDescriptor{
		Name: "Tail", Kind: typedesc.KindStruct, Size: 16, Alignment: 8,
		Fields: []typedesc.FieldDescriptor{
			field("x", 0, prim("u32", 4)),
		},
	}

	var buf bytes.Buffer
	r := New(&buf)
	r.Color = true
	if err := r.RenderTree(mustCompute(t, desc, false), "Tail", false); err != nil {
		t.Fatal(err)
	}
	// Styling depends on the detected terminal profile; only the text
	// content is asserted.
	if !strings.Contains(buf.String(), "x => 0 - 4") {
		t.Errorf("field line missing:\n%s", buf.String())
	}
}

func TestDetectColorNonFile(t *testing.T) {
	var buf bytes.Buffer
	if DetectColor(&buf) {
		t.Error("a bytes.Buffer is not a terminal")
	}
}
