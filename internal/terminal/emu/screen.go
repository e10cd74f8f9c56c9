package emu

import (
	"pkt.systems/vtrow/internal/terminal"
	"pkt.systems/vtrow/internal/textbuf"
)

var blankGlyph = textbuf.Glyph{' '}

// screen owns one row per visible line. Rows are recycled on scroll, never
// reallocated; a row's id always equals its index in lines.
type screen struct {
	cols int
	rows int

	lines        []*textbuf.Row
	scratch      *textbuf.Row
	cursor       terminal.Cursor
	savedCursor  terminal.Cursor
	scrollTop    int
	scrollBottom int
}

// cellData is a mutable copy of one column used when cells move within a row.
type cellData struct {
	glyph  textbuf.Glyph
	marker textbuf.WidthMarker
	attr   textbuf.TextAttribute
}

func newScreen(cols, rows int, fill textbuf.TextAttribute) (screen, error) {
	s := screen{
		cols:         cols,
		rows:         rows,
		lines:        make([]*textbuf.Row, rows),
		scrollTop:    0,
		scrollBottom: rows - 1,
	}
	for y := range s.lines {
		row, err := textbuf.NewRow(y, cols, fill)
		if err != nil {
			return screen{}, err
		}
		s.lines[y] = row
	}
	return s, nil
}

// resize keeps the top rows and resizes each of them in place.
func (s *screen) resize(cols, rows int, fill textbuf.TextAttribute) error {
	if rows < len(s.lines) {
		s.lines = s.lines[:rows]
	}
	for _, line := range s.lines {
		if err := line.Resize(cols); err != nil {
			return err
		}
		// A shrink can cut a wide glyph in half; the leading half alone
		// cannot be drawn.
		if m, err := line.CharRow().WidthAt(cols - 1); err == nil && m == textbuf.WidthLeading {
			if err := line.ClearColumn(cols - 1); err != nil {
				return err
			}
		}
	}
	for y := len(s.lines); y < rows; y++ {
		row, err := textbuf.NewRow(y, cols, fill)
		if err != nil {
			return err
		}
		s.lines = append(s.lines, row)
	}
	s.cols = cols
	s.rows = rows
	s.scratch = nil
	s.scrollTop = 0
	s.scrollBottom = rows - 1
	s.cursor = clampCursor(s.cursor, cols, rows)
	s.savedCursor = clampCursor(s.savedCursor, cols, rows)
	return nil
}

func clampCursor(c terminal.Cursor, cols, rows int) terminal.Cursor {
	return terminal.Cursor{X: clamp(c.X, 0, cols-1), Y: clamp(c.Y, 0, rows-1)}
}

func (s *screen) saveCursor() {
	s.savedCursor = s.cursor
}

func (s *screen) restoreCursor() {
	s.cursor = s.savedCursor
}

func (s *screen) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < s.cols && y < s.rows
}

func (s *screen) clearAll(fill textbuf.TextAttribute) error {
	for _, line := range s.lines {
		if err := line.Reset(fill); err != nil {
			return err
		}
	}
	return nil
}

// clearLine blanks columns x0..x1 inclusive of row y. Clearing one half of a
// wide glyph blanks the other half as well.
func (s *screen) clearLine(y, x0, x1 int, fill textbuf.TextAttribute) error {
	if y < 0 || y >= s.rows {
		return nil
	}
	x0 = max(x0, 0)
	x1 = min(x1, s.cols-1)
	if x0 > x1 {
		return nil
	}
	line := s.lines[y]
	if x0 == 0 && x1 == s.cols-1 {
		return line.Reset(fill)
	}
	for x := x0; x <= x1; x++ {
		if err := line.ClearColumn(x); err != nil {
			return err
		}
	}
	return line.SetAttrRange(x0, x1+1, fill)
}

// scrollRegionUp moves rows top+n..bottom up by n and recycles the rows that
// fall off the top as blank rows at the bottom.
func (s *screen) scrollRegionUp(top, bottom, n int, fill textbuf.TextAttribute) error {
	top = max(top, 0)
	bottom = min(bottom, s.rows-1)
	if n < 1 || top > bottom {
		return nil
	}
	n = min(n, bottom-top+1)
	for y := top; y+n <= bottom; y++ {
		s.lines[y].Swap(s.lines[y+n])
	}
	for y := bottom - n + 1; y <= bottom; y++ {
		if err := s.lines[y].Reset(fill); err != nil {
			return err
		}
	}
	s.renumber(top, bottom)
	return nil
}

// scrollRegionDown moves rows top..bottom-n down by n and recycles the rows
// that fall off the bottom as blank rows at the top.
func (s *screen) scrollRegionDown(top, bottom, n int, fill textbuf.TextAttribute) error {
	top = max(top, 0)
	bottom = min(bottom, s.rows-1)
	if n < 1 || top > bottom {
		return nil
	}
	n = min(n, bottom-top+1)
	for y := bottom; y-n >= top; y-- {
		s.lines[y].Swap(s.lines[y-n])
	}
	for y := top; y < top+n; y++ {
		if err := s.lines[y].Reset(fill); err != nil {
			return err
		}
	}
	s.renumber(top, bottom)
	return nil
}

func (s *screen) renumber(top, bottom int) {
	for y := top; y <= bottom; y++ {
		s.lines[y].SetID(y)
	}
}

func (s *screen) scrollUp(n int, fill textbuf.TextAttribute) error {
	return s.scrollRegionUp(s.scrollTop, s.scrollBottom, n, fill)
}

func (s *screen) scrollDown(n int, fill textbuf.TextAttribute) error {
	return s.scrollRegionDown(s.scrollTop, s.scrollBottom, n, fill)
}

func (s *screen) insertLines(row, n int, fill textbuf.TextAttribute) error {
	if row < s.scrollTop || row > s.scrollBottom {
		return nil
	}
	return s.scrollRegionDown(row, s.scrollBottom, n, fill)
}

func (s *screen) deleteLines(row, n int, fill textbuf.TextAttribute) error {
	if row < s.scrollTop || row > s.scrollBottom {
		return nil
	}
	return s.scrollRegionUp(row, s.scrollBottom, n, fill)
}

func (s *screen) insertChars(row, col, n int, fill textbuf.TextAttribute) error {
	if row < 0 || row >= s.rows || n < 1 {
		return nil
	}
	col = max(col, 0)
	if col >= s.cols {
		return nil
	}
	n = min(n, s.cols-col)
	cells, err := s.cells(row)
	if err != nil {
		return err
	}
	shifted := make([]cellData, s.cols)
	copy(shifted, cells[:col])
	for x := col; x < col+n; x++ {
		shifted[x] = cellData{glyph: blankGlyph, attr: fill}
	}
	copy(shifted[col+n:], cells[col:s.cols-n])
	return s.rewrite(row, shifted)
}

func (s *screen) deleteChars(row, col, n int, fill textbuf.TextAttribute) error {
	if row < 0 || row >= s.rows || n < 1 {
		return nil
	}
	col = max(col, 0)
	if col >= s.cols {
		return nil
	}
	n = min(n, s.cols-col)
	cells, err := s.cells(row)
	if err != nil {
		return err
	}
	shifted := make([]cellData, s.cols)
	copy(shifted, cells[:col])
	copy(shifted[col:], cells[col+n:])
	for x := s.cols - n; x < s.cols; x++ {
		shifted[x] = cellData{glyph: blankGlyph, attr: fill}
	}
	return s.rewrite(row, shifted)
}

func (s *screen) cells(row int) ([]cellData, error) {
	out, err := s.lines[row].AllCells()
	if err != nil {
		return nil, err
	}
	cells := make([]cellData, len(out))
	for i, c := range out {
		cells[i] = cellData{glyph: c.Glyph(), marker: c.WidthMarker(), attr: c.TextAttr()}
	}
	return cells, nil
}

// rewrite lays cells out in the scratch row and swaps it in for row. Halves
// of wide glyphs separated by the move are written as blanks.
func (s *screen) rewrite(row int, cells []cellData) error {
	line := s.lines[row]
	if s.scratch == nil || s.scratch.Width() != s.cols {
		scratch, err := textbuf.NewRow(row, s.cols, textbuf.DefaultAttribute)
		if err != nil {
			return err
		}
		s.scratch = scratch
	} else if err := s.scratch.Reset(textbuf.DefaultAttribute); err != nil {
		return err
	}
	s.scratch.SetID(line.ID())

	attrs := make([]textbuf.TextAttribute, len(cells))
	for x, c := range cells {
		attrs[x] = c.attr
		if !pairIntact(cells, x) {
			continue
		}
		if err := s.scratch.SetGlyph(x, c.glyph, c.marker); err != nil {
			return err
		}
	}
	packed, err := textbuf.PackAttrs(attrs)
	if err != nil {
		return err
	}
	if err := s.scratch.SetAttrs(packed); err != nil {
		return err
	}
	s.scratch.SetWrapForced(line.WasWrapForced())
	line.Swap(s.scratch)
	return nil
}

// pairIntact reports whether the cell at x is a single cell or one half of a
// wide glyph whose other half is still next to it.
func pairIntact(cells []cellData, x int) bool {
	switch cells[x].marker {
	case textbuf.WidthLeading:
		return x+1 < len(cells) && isPair(cells[x], cells[x+1])
	case textbuf.WidthTrailing:
		return x > 0 && isPair(cells[x-1], cells[x])
	default:
		return true
	}
}

func isPair(lead, trail cellData) bool {
	return lead.marker == textbuf.WidthLeading && trail.marker == textbuf.WidthTrailing && lead.glyph.Equal(trail.glyph)
}

// snapshot returns deep copies of every line.
func (s *screen) snapshot() []*textbuf.Row {
	out := make([]*textbuf.Row, len(s.lines))
	for i, line := range s.lines {
		out[i] = line.Clone()
	}
	return out
}
