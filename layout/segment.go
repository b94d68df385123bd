package layout

// Segment is one node of a layout tree: an occupied byte range, a
// synthesized gap, or an overlaid tagged-union variant. The set of
// implementations is closed.
type Segment interface {
	// Bounds returns the segment's byte range as [start, end).
	Bounds() (start, end uint32)

	segment()
}

// Field is the byte range occupied by one named member. Child is non-nil
// only when the member's type was recursively expanded.
type Field struct {
	Name     string
	TypeName string
	Start    uint32
	End      uint32
	Child    *Tree
}

// Padding is a byte range occupied by no member. Always synthesized by the
// engine, never supplied by a source.
type Padding struct {
	Start uint32
	End   uint32
}

// Width returns the gap's size in bytes.
func (p Padding) Width() uint32 { return p.End - p.Start }

// VariantGroup is one alternative of a tagged union. All groups of a union
// share the parent range starting at 0; Child holds the variant's own field
// layout.
type VariantGroup struct {
	TagName  string
	TypeName string
	Start    uint32
	End      uint32
	Child    *Tree
}

func (f Field) Bounds() (uint32, uint32)        { return f.Start, f.End }
func (p Padding) Bounds() (uint32, uint32)      { return p.Start, p.End }
func (v VariantGroup) Bounds() (uint32, uint32) { return v.Start, v.End }

func (Field) segment()        {}
func (Padding) segment()      {}
func (VariantGroup) segment() {}

// Tree is the ordered layout of one type: its segments in ascending start
// order plus the derived aggregates.
type Tree struct {
	TypeName string
	Segments []Segment

	// TotalSize is copied from the descriptor.
	TotalSize uint32

	// TotalPadding sums Padding widths at this level and, for expanded
	// children and variant groups, below it.
	TotalPadding uint32
}
