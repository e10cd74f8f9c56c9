package textbuf

import (
	"fmt"
	"unicode/utf16"
)

// Row is one line of a screen buffer: a CharRow and an AttrRow kept at the
// same width. The id is the row's current position in its owning buffer.
//
// Row is not safe for concurrent use.
type Row struct {
	id    int
	width int
	chars CharRow
	attrs AttrRow
}

// NewRow returns a blank row of width columns filled with attr.
func NewRow(id, width int, fill TextAttribute) (*Row, error) {
	chars, err := NewUCS2CharRow(width)
	if err != nil {
		return nil, err
	}
	attrs, err := NewAttrRow(width, fill)
	if err != nil {
		return nil, err
	}
	return &Row{id: id, width: width, chars: chars, attrs: attrs}, nil
}

func (r *Row) ID() int {
	return r.id
}

func (r *Row) SetID(id int) {
	r.id = id
}

// Width returns the number of columns.
func (r *Row) Width() int {
	return r.width
}

// CharRow returns a read-only view of the glyph store. Glyphs are changed
// through Row so that its width stays in step with the store.
func (r *Row) CharRow() CharReader {
	return charView{r.chars}
}

// AttrRow returns a copy of the attribute store.
func (r *Row) AttrRow() *AttrRow {
	attrs := r.attrs.Clone()
	return &attrs
}

// Runs returns the attribute runs in column order.
func (r *Row) Runs() []AttrRun {
	return r.attrs.Runs()
}

func (r *Row) SetWrapForced(v bool) { r.chars.SetWrapForced(v) }
func (r *Row) WasWrapForced() bool { return r.chars.WasWrapForced() }

func (r *Row) SetDoubleBytePadded(v bool) { r.chars.SetDoubleBytePadded(v) }
func (r *Row) WasDoubleBytePadded() bool { return r.chars.WasDoubleBytePadded() }

// Clone returns a deep copy. Only UCS2 char rows can be copied; any other
// encoding is a programming error and panics with ErrEncodingMismatch.
func (r *Row) Clone() *Row {
	src, ok := r.chars.(*UCS2CharRow)
	if !ok || r.chars.Encoding() != EncodingUCS2 {
		panic(fmt.Errorf("clone row: char row encoding %s (%T): %w", r.chars.Encoding(), r.chars, ErrEncodingMismatch))
	}
	return &Row{
		id:    r.id,
		width: r.width,
		chars: src.Clone(),
		attrs: r.attrs.Clone(),
	}
}

// CopyFrom makes r a deep copy of src. The copy is built in full before it
// replaces r's contents.
func (r *Row) CopyFrom(src *Row) {
	tmp := src.Clone()
	r.Swap(tmp)
}

// Swap exchanges the contents and identity of r and other without copying
// cell data.
func (r *Row) Swap(other *Row) {
	*r, *other = *other, *r
}

// Reset blanks every glyph and fills the row with attr.
func (r *Row) Reset(attr TextAttribute) error {
	r.chars.Reset()
	return r.attrs.Reset(attr)
}

// Resize changes the row to width columns. Growth fills blank glyphs carrying
// the previous rightmost attribute. On error the row is unchanged.
func (r *Row) Resize(width int) error {
	if err := checkWidth("resize row", width); err != nil {
		return err
	}
	attrs := r.attrs.Clone()
	if err := attrs.Resize(r.width, width); err != nil {
		return err
	}
	if err := r.chars.Resize(width); err != nil {
		return err
	}
	r.attrs = attrs
	r.width = width
	return nil
}

// ClearColumn blanks the glyph at column, leaving its attribute.
func (r *Row) ClearColumn(column int) error {
	if column < 0 || column >= r.width {
		return outOfRange("clear column", column, r.width)
	}
	return r.chars.ClearCell(column)
}

// SetGlyph writes glyph at column.
func (r *Row) SetGlyph(column int, glyph Glyph, marker WidthMarker) error {
	if column < 0 || column >= r.width {
		return outOfRange("set glyph", column, r.width)
	}
	return r.chars.SetGlyphAt(column, glyph, marker)
}

// SetAttrRange applies attr to [start, end).
func (r *Row) SetAttrRange(start, end int, attr TextAttribute) error {
	return r.attrs.SetAttrRange(start, end, attr)
}

// SetAttrs replaces the whole attribute store. attrs must cover exactly
// Width() columns.
func (r *Row) SetAttrs(attrs AttrRow) error {
	if attrs.Len() != r.width {
		return fmt.Errorf("set attrs: %d columns, width %d: %w", attrs.Len(), r.width, ErrInvalidArgument)
	}
	r.attrs = attrs.Clone()
	return nil
}

// At returns the merged view of column.
func (r *Row) At(column int) (OutputCell, error) {
	if column < 0 || column >= r.width {
		return OutputCell{}, outOfRange("cell at", column, r.width)
	}
	glyph, err := r.chars.GlyphAt(column)
	if err != nil {
		return OutputCell{}, err
	}
	marker, err := r.chars.WidthAt(column)
	if err != nil {
		return OutputCell{}, err
	}
	attr, err := r.attrs.AttrAt(column)
	if err != nil {
		return OutputCell{}, err
	}
	return newOutputCell(glyph, marker, attr), nil
}

// AsCells returns count merged cells starting at start. Attributes are
// unpacked once for the whole batch.
func (r *Row) AsCells(start, count int) ([]OutputCell, error) {
	if start < 0 || count < 0 || start+count > r.width {
		return nil, fmt.Errorf("cells [%d,+%d), width %d: %w", start, count, r.width, ErrOutOfRange)
	}
	attrs := make([]TextAttribute, r.width)
	if err := r.attrs.UnpackInto(attrs); err != nil {
		return nil, err
	}
	cells := make([]OutputCell, 0, count)
	for col := start; col < start+count; col++ {
		glyph, err := r.chars.GlyphAt(col)
		if err != nil {
			return nil, err
		}
		marker, err := r.chars.WidthAt(col)
		if err != nil {
			return nil, err
		}
		cells = append(cells, newOutputCell(glyph, marker, attrs[col]))
	}
	return cells, nil
}

// CellsFrom returns the merged cells from start to the end of the row.
func (r *Row) CellsFrom(start int) ([]OutputCell, error) {
	return r.AsCells(start, r.width-start)
}

// AllCells returns every merged cell of the row.
func (r *Row) AllCells() ([]OutputCell, error) {
	return r.AsCells(0, r.width)
}

// Text returns the row's code units for copy-out.
func (r *Row) Text() []uint16 {
	return r.chars.Text()
}

// String decodes Text.
func (r *Row) String() string {
	return string(utf16.Decode(r.Text()))
}
