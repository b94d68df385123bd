package typedesc

type Kind uint8

const (
	KindPrimitive Kind = iota
	KindPointer
	KindStruct
	KindUnion
	KindTaggedUnion
)

var kindNames = [...]string{
	KindPrimitive:   "primitive",
	KindPointer:     "pointer",
	KindStruct:      "struct",
	KindUnion:       "union",
	KindTaggedUnion: "tagged_union",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsComposite reports whether values of this kind have inline member storage
// worth expanding. Pointers denote indirection, not inline storage, and are
// never composite.
func (k Kind) IsComposite() bool {
	switch k {
	case KindStruct, KindUnion, KindTaggedUnion:
		return true
	default:
		return false
	}
}
