package textbuf

import "unicode/utf16"

// Encoding identifies the glyph storage strategy of a CharRow.
type Encoding uint8

const (
	// EncodingUCS2 stores one UTF-16 code unit per cell.
	EncodingUCS2 Encoding = iota + 1
)

func (e Encoding) String() string {
	switch e {
	case EncodingUCS2:
		return "ucs2"
	default:
		return "unknown"
	}
}

// WidthMarker tells whether a cell is single width or one half of a double
// width glyph.
type WidthMarker uint8

const (
	WidthSingle WidthMarker = iota
	WidthLeading
	WidthTrailing
)

func (m WidthMarker) String() string {
	switch m {
	case WidthSingle:
		return "single"
	case WidthLeading:
		return "leading"
	case WidthTrailing:
		return "trailing"
	default:
		return "invalid"
	}
}

// Valid reports whether m is one of the defined markers.
func (m WidthMarker) Valid() bool {
	return m <= WidthTrailing
}

// Glyph is the code unit sequence rendered in one cell.
type Glyph []uint16

// GlyphFromRune encodes r as UTF-16.
func GlyphFromRune(r rune) Glyph {
	return Glyph(utf16.AppendRune(nil, r))
}

// String decodes the glyph.
func (g Glyph) String() string {
	return string(utf16.Decode(g))
}

// Equal reports whether both glyphs hold the same code units.
func (g Glyph) Equal(other Glyph) bool {
	if len(g) != len(other) {
		return false
	}
	for i := range g {
		if g[i] != other[i] {
			return false
		}
	}
	return true
}

// blankUnit fills cleared cells.
const blankUnit uint16 = ' '

// CharReader is the read-only view of a CharRow.
type CharReader interface {
	Size() int
	GlyphAt(column int) (Glyph, error)
	WidthAt(column int) (WidthMarker, error)
	Encoding() Encoding
	// Text concatenates the glyphs in column order. Trailing halves of double
	// width glyphs are not emitted.
	Text() []uint16

	ContainsText() bool
	MeasureLeft() int
	MeasureRight() int
	WasWrapForced() bool
	WasDoubleBytePadded() bool
}

// CharRow is the glyph half of a row. Implementations differ in how they
// encode glyphs; Row depends only on this interface.
type CharRow interface {
	CharReader
	// Resize truncates or blank-fills to width. On error the row is unchanged.
	Resize(width int) error
	Reset()
	ClearCell(column int) error
	SetGlyphAt(column int, glyph Glyph, marker WidthMarker) error
	SetWrapForced(bool)
	SetDoubleBytePadded(bool)
}

// charView hides the mutators of a CharRow.
type charView struct {
	CharReader
}
