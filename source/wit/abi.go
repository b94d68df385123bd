package wit

import (
	witgo "go.bytecodealliance.org/wit"
)

// sizeAlign computes a type's Canonical ABI size and alignment.
func sizeAlign(t witgo.Type) (size, align uint32) {
	switch typ := t.(type) {
	case witgo.U8, witgo.S8, witgo.Bool:
		return 1, 1
	case witgo.U16, witgo.S16:
		return 2, 2
	case witgo.U32, witgo.S32, witgo.F32, witgo.Char:
		return 4, 4
	case witgo.U64, witgo.S64, witgo.F64:
		return 8, 8
	case witgo.String:
		return 8, 4 // [ptr: u32, len: u32]
	case *witgo.TypeDef:
		return typeDefSizeAlign(typ)
	default:
		return 0, 1
	}
}

func typeDefSizeAlign(t *witgo.TypeDef) (uint32, uint32) {
	switch kind := t.Kind.(type) {
	case *witgo.Record:
		size := uint32(0)
		align := uint32(1)
		for _, f := range kind.Fields {
			fs, fa := sizeAlign(f.Type)
			size = alignTo(size, fa) + fs
			if fa > align {
				align = fa
			}
		}
		return alignTo(size, align), align
	case *witgo.Tuple:
		size := uint32(0)
		align := uint32(1)
		for _, tt := range kind.Types {
			fs, fa := sizeAlign(tt)
			size = alignTo(size, fa) + fs
			if fa > align {
				align = fa
			}
		}
		return alignTo(size, align), align
	case *witgo.Variant:
		var cases []witgo.Type
		for _, c := range kind.Cases {
			cases = append(cases, c.Type)
		}
		return variantSizeAlign(cases)
	case *witgo.Option:
		return variantSizeAlign([]witgo.Type{nil, kind.Type})
	case *witgo.Result:
		return variantSizeAlign([]witgo.Type{kind.OK, kind.Err})
	case *witgo.Enum:
		ds := discriminantSize(len(kind.Cases))
		return ds, ds
	case *witgo.Flags:
		return flagsSize(len(kind.Flags))
	case *witgo.List:
		return 8, 4
	case *witgo.Own, *witgo.Borrow:
		return 4, 4
	case witgo.Type:
		return sizeAlign(kind)
	default:
		return 0, 1
	}
}

// variantSizeAlign lays out a discriminant followed by the overlaid payload
// region. nil entries are payload-free cases.
func variantSizeAlign(cases []witgo.Type) (uint32, uint32) {
	if len(cases) == 0 {
		return 0, 1
	}

	align := discriminantSize(len(cases))
	maxSize := uint32(0)
	for _, c := range cases {
		if c == nil {
			continue
		}
		cs, ca := sizeAlign(c)
		if ca > align {
			align = ca
		}
		if cs > maxSize {
			maxSize = cs
		}
	}

	payloadOffset := alignTo(discriminantSize(len(cases)), align)
	return alignTo(payloadOffset+maxSize, align), align
}

// payloadRegion returns the offset and width of the region a variant's
// cases overlay.
func payloadRegion(cases []witgo.Type) (offset, width uint32) {
	if len(cases) == 0 {
		return 0, 0
	}
	align := discriminantSize(len(cases))
	for _, c := range cases {
		if c == nil {
			continue
		}
		cs, ca := sizeAlign(c)
		if ca > align {
			align = ca
		}
		if cs > width {
			width = cs
		}
	}
	return alignTo(discriminantSize(len(cases)), align), width
}

// discriminantSize: 1 byte for <=256 cases, 2 for <=65536, else 4.
func discriminantSize(numCases int) uint32 {
	if numCases <= 256 {
		return 1
	} else if numCases <= 65536 {
		return 2
	}
	return 4
}

func flagsSize(numFlags int) (uint32, uint32) {
	switch {
	case numFlags == 0:
		return 0, 1
	case numFlags <= 8:
		return 1, 1
	case numFlags <= 16:
		return 2, 2
	case numFlags <= 32:
		return 4, 4
	case numFlags <= 64:
		return 8, 8
	}
	// >64 flags: multiple u32s per Canonical ABI spec
	numU32s := uint32(numFlags+31) / 32
	return numU32s * 4, 4
}

func alignTo(offset, align uint32) uint32 {
	if align == 0 {
		return offset
	}
	return (offset + align - 1) &^ (align - 1)
}
