package blit

// SourceKind classifies an opaque image source handle.
type SourceKind uint8

const (
	// SourceUnknown is an unclassifiable source.
	SourceUnknown SourceKind = iota

	// SourceVariable is an in-memory compiled image descriptor.
	SourceVariable

	// SourceFile is a path string interpreted elsewhere.
	SourceFile

	// SourceSymbol is an iconographic code point.
	SourceSymbol
)

// String returns a short name for the source kind.
func (k SourceKind) String() string {
	switch k {
	case SourceVariable:
		return "Variable"
	case SourceFile:
		return "File"
	case SourceSymbol:
		return "Symbol"
	default:
		return "Unknown"
	}
}

// SourceKindOf determines what an image source handle denotes from its
// leading byte. A byte in the printable-ASCII range (0x20-0x7F) marks a
// file path; 0x80 and above marks a symbol code point; anything below
// 0x20 marks an in-memory descriptor, whose serialized layout reserves
// the first byte below 0x20 by convention. This one-byte discriminant is
// part of the resource interchange format.
//
// A *ImageBuf is always a Variable source. nil and empty handles are
// Unknown.
func SourceKindOf(src any) SourceKind {
	var lead uint8
	switch s := src.(type) {
	case nil:
		return SourceUnknown
	case *ImageBuf:
		if s == nil {
			return SourceUnknown
		}
		return SourceVariable
	case string:
		if len(s) == 0 {
			return SourceUnknown
		}
		lead = s[0]
	case []byte:
		if len(s) == 0 {
			return SourceUnknown
		}
		lead = s[0]
	default:
		Logger().Warn("unknown image source type")
		return SourceUnknown
	}

	switch {
	case lead >= 0x20 && lead <= 0x7F:
		return SourceFile
	case lead >= 0x80:
		return SourceSymbol
	default:
		return SourceVariable
	}
}
