package textbuf

// OutputCell is a read-only snapshot of one column: its glyph, the encoding
// level width marker and the resolved text attribute.
type OutputCell struct {
	glyph  Glyph
	marker WidthMarker
	attr   TextAttribute
}

func newOutputCell(glyph Glyph, marker WidthMarker, attr TextAttribute) OutputCell {
	return OutputCell{glyph: glyph, marker: marker, attr: attr}
}

// Glyph returns a copy of the cell's code units.
func (c OutputCell) Glyph() Glyph {
	out := make(Glyph, len(c.glyph))
	copy(out, c.glyph)
	return out
}

func (c OutputCell) WidthMarker() WidthMarker {
	return c.marker
}

func (c OutputCell) TextAttr() TextAttribute {
	return c.attr
}

// IsTrailing reports whether the cell is the right half of a double width glyph.
func (c OutputCell) IsTrailing() bool {
	return c.marker == WidthTrailing
}

// String returns the decoded glyph.
func (c OutputCell) String() string {
	return c.glyph.String()
}
