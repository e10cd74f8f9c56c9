package textbuf

import (
	"fmt"
	"unicode/utf16"
)

type ucs2Cell struct {
	unit   uint16
	marker WidthMarker
}

var blankUCS2Cell = ucs2Cell{unit: blankUnit, marker: WidthSingle}

// UCS2CharRow stores exactly one UTF-16 code unit per cell. Both halves of a
// double width glyph carry the same code unit.
type UCS2CharRow struct {
	cells            []ucs2Cell
	wrapForced       bool
	doubleBytePadded bool
}

var _ CharRow = (*UCS2CharRow)(nil)

// NewUCS2CharRow returns a row of width blank cells.
func NewUCS2CharRow(width int) (*UCS2CharRow, error) {
	if err := checkWidth("new ucs2 row", width); err != nil {
		return nil, err
	}
	cells := make([]ucs2Cell, width)
	for i := range cells {
		cells[i] = blankUCS2Cell
	}
	return &UCS2CharRow{cells: cells}, nil
}

func (r *UCS2CharRow) Size() int {
	return len(r.cells)
}

func (r *UCS2CharRow) Encoding() Encoding {
	return EncodingUCS2
}

// Clone returns a deep copy.
func (r *UCS2CharRow) Clone() *UCS2CharRow {
	cells := make([]ucs2Cell, len(r.cells))
	copy(cells, r.cells)
	return &UCS2CharRow{cells: cells, wrapForced: r.wrapForced, doubleBytePadded: r.doubleBytePadded}
}

// Resize truncates or blank-fills to width. Columns below width keep their
// glyph and marker, so a shrink may leave a leading half in the last column.
func (r *UCS2CharRow) Resize(width int) error {
	if err := checkWidth("resize ucs2 row", width); err != nil {
		return err
	}
	cells := make([]ucs2Cell, width)
	n := copy(cells, r.cells)
	for i := n; i < width; i++ {
		cells[i] = blankUCS2Cell
	}
	r.cells = cells
	return nil
}

func (r *UCS2CharRow) Reset() {
	for i := range r.cells {
		r.cells[i] = blankUCS2Cell
	}
	r.wrapForced = false
	r.doubleBytePadded = false
}

// ClearCell blanks column. When column is one half of a double width glyph
// the other half is blanked too.
func (r *UCS2CharRow) ClearCell(column int) error {
	if column < 0 || column >= len(r.cells) {
		return outOfRange("clear cell", column, len(r.cells))
	}
	r.breakPair(column)
	r.cells[column] = blankUCS2Cell
	return nil
}

func (r *UCS2CharRow) GlyphAt(column int) (Glyph, error) {
	if column < 0 || column >= len(r.cells) {
		return nil, outOfRange("glyph at", column, len(r.cells))
	}
	return Glyph{r.cells[column].unit}, nil
}

func (r *UCS2CharRow) WidthAt(column int) (WidthMarker, error) {
	if column < 0 || column >= len(r.cells) {
		return WidthSingle, outOfRange("width at", column, len(r.cells))
	}
	return r.cells[column].marker, nil
}

// SetGlyphAt stores glyph at column. The glyph must be a single code unit
// outside the surrogate range. Changing the marker of one half of a double
// width glyph blanks the orphaned other half.
func (r *UCS2CharRow) SetGlyphAt(column int, glyph Glyph, marker WidthMarker) error {
	if column < 0 || column >= len(r.cells) {
		return outOfRange("set glyph", column, len(r.cells))
	}
	if len(glyph) != 1 || utf16.IsSurrogate(rune(glyph[0])) {
		return fmt.Errorf("set glyph: %d code units %v not representable in %s: %w", len(glyph), []uint16(glyph), EncodingUCS2, ErrInvalidArgument)
	}
	if !marker.Valid() {
		return fmt.Errorf("set glyph: marker %d: %w", marker, ErrInvalidArgument)
	}
	if r.cells[column].marker != marker {
		r.breakPair(column)
	}
	r.cells[column] = ucs2Cell{unit: glyph[0], marker: marker}
	return nil
}

// breakPair blanks the partner of column if column is half of a pair.
func (r *UCS2CharRow) breakPair(column int) {
	switch r.cells[column].marker {
	case WidthLeading:
		if next := column + 1; next < len(r.cells) && r.cells[next].marker == WidthTrailing {
			r.cells[next] = blankUCS2Cell
		}
	case WidthTrailing:
		if prev := column - 1; prev >= 0 && r.cells[prev].marker == WidthLeading {
			r.cells[prev] = blankUCS2Cell
		}
	}
}

func (r *UCS2CharRow) Text() []uint16 {
	out := make([]uint16, 0, len(r.cells))
	for _, c := range r.cells {
		if c.marker == WidthTrailing {
			continue
		}
		out = append(out, c.unit)
	}
	return out
}

func (r *UCS2CharRow) ContainsText() bool {
	return r.MeasureRight() > 0
}

// MeasureLeft returns the first non-blank column, or Size() if the row is blank.
func (r *UCS2CharRow) MeasureLeft() int {
	for i, c := range r.cells {
		if c.unit != blankUnit {
			return i
		}
	}
	return len(r.cells)
}

// MeasureRight returns one past the last non-blank column, or 0 if the row is blank.
func (r *UCS2CharRow) MeasureRight() int {
	for i := len(r.cells) - 1; i >= 0; i-- {
		if r.cells[i].unit != blankUnit {
			return i + 1
		}
	}
	return 0
}

func (r *UCS2CharRow) SetWrapForced(v bool) { r.wrapForced = v }
func (r *UCS2CharRow) WasWrapForced() bool { return r.wrapForced }
func (r *UCS2CharRow) SetDoubleBytePadded(v bool) { r.doubleBytePadded = v }
func (r *UCS2CharRow) WasDoubleBytePadded() bool { return r.doubleBytePadded }
