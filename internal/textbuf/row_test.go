package textbuf

import (
	"errors"
	"testing"
)

func TestRowBoldRangeScenario(t *testing.T) {
	row := mustRow(t, 10, DefaultAttribute)
	if err := row.SetAttrRange(3, 6, bold); err != nil {
		t.Fatalf("SetAttrRange: %v", err)
	}
	assertAttrAt(t, row, 2, DefaultAttribute)
	assertAttrAt(t, row, 4, bold)
	assertAttrAt(t, row, 7, DefaultAttribute)
	if n := row.AttrRow().NumberOfRuns(); n != 3 {
		t.Fatalf("NumberOfRuns = %d, want 3", n)
	}
	assertWidths(t, row)
}

func TestRowResizeScenario(t *testing.T) {
	row := mustRow(t, 5, DefaultAttribute)
	if err := row.Resize(8); err != nil {
		t.Fatalf("Resize(8): %v", err)
	}
	assertWidths(t, row)
	assertAttrAt(t, row, 7, DefaultAttribute)
	cell := mustCell(t, row, 7)
	if !cell.Glyph().Equal(Glyph{' '}) {
		t.Fatalf("glyph at 7 = %q, want blank", cell.String())
	}
	if err := row.Resize(3); err != nil {
		t.Fatalf("Resize(3): %v", err)
	}
	assertWidths(t, row)
	assertAttrAt(t, row, 2, DefaultAttribute)
	if row.CharRow().Size() != 3 {
		t.Fatalf("Size = %d, want 3", row.CharRow().Size())
	}
}

func TestRowResizeGrowthInheritsLastAttr(t *testing.T) {
	row := mustRow(t, 4, DefaultAttribute)
	writeASCII(t, row.chars, 0, "abcd")
	if err := row.SetAttrRange(3, 4, red); err != nil {
		t.Fatalf("SetAttrRange: %v", err)
	}
	if err := row.Resize(7); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	for col := 4; col < 7; col++ {
		assertAttrAt(t, row, col, red)
	}
	if got := row.String(); got != "abcd   " {
		t.Fatalf("String = %q, want %q", got, "abcd   ")
	}
	if err := row.Resize(2); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	if got := row.String(); got != "ab" {
		t.Fatalf("String = %q, want %q", got, "ab")
	}
	assertAttrAt(t, row, 1, DefaultAttribute)
	assertWidths(t, row)
}

func TestRowShrinkKeepsColumnsBelowWidth(t *testing.T) {
	row := mustRow(t, 6, DefaultAttribute)
	writeASCII(t, row.chars, 0, "ab")
	writeWide(t, row.chars, 2, '中')
	writeASCII(t, row.chars, 4, "ef")
	if err := row.SetAttrRange(1, 4, bold); err != nil {
		t.Fatalf("SetAttrRange: %v", err)
	}
	before, err := row.AsCells(0, 3)
	if err != nil {
		t.Fatalf("AsCells: %v", err)
	}
	if err := row.Resize(3); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	assertWidths(t, row)
	for col, want := range before {
		got := mustCell(t, row, col)
		if got.String() != want.String() || got.WidthMarker() != want.WidthMarker() || got.TextAttr() != want.TextAttr() {
			t.Fatalf("column %d = %q/%v/%v, want %q/%v/%v", col,
				got.String(), got.WidthMarker(), got.TextAttr(),
				want.String(), want.WidthMarker(), want.TextAttr())
		}
	}
}

func TestRowAccessorsAreReadOnly(t *testing.T) {
	row := mustRow(t, 4, DefaultAttribute)
	if _, ok := row.CharRow().(CharRow); ok {
		t.Fatalf("CharRow exposes the mutable glyph store")
	}
	attrs := row.AttrRow()
	if err := attrs.Resize(4, 9); err != nil {
		t.Fatalf("Resize copy: %v", err)
	}
	if err := attrs.SetAttrRange(0, 2, bold); err != nil {
		t.Fatalf("SetAttrRange copy: %v", err)
	}
	assertWidths(t, row)
	assertAttrAt(t, row, 0, DefaultAttribute)

	row.SetWrapForced(true)
	row.SetDoubleBytePadded(true)
	if !row.WasWrapForced() || !row.CharRow().WasDoubleBytePadded() {
		t.Fatalf("flags not stored")
	}
	if err := row.Reset(DefaultAttribute); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if row.WasWrapForced() || row.WasDoubleBytePadded() {
		t.Fatalf("Reset kept flags")
	}
}

func TestRowResizeFailureLeavesRowUnchanged(t *testing.T) {
	row := mustRow(t, 6, DefaultAttribute)
	writeASCII(t, row.chars, 0, "abcdef")
	if err := row.SetAttrRange(0, 2, bold); err != nil {
		t.Fatalf("SetAttrRange: %v", err)
	}
	before := row.AttrRow().Clone()

	row.chars = &failingCharRow{UCS2CharRow: row.chars.(*UCS2CharRow)}
	if err := row.Resize(10); !errors.Is(err, ErrAllocation) {
		t.Fatalf("Resize err = %v, want ErrAllocation", err)
	}
	if row.Width() != 6 {
		t.Fatalf("Width = %d, want 6", row.Width())
	}
	if !row.AttrRow().Equal(&before) {
		t.Fatalf("attrs changed: %v, want %v", row.Runs(), before.Runs())
	}
	assertWidths(t, row)

	if err := row.Resize(0); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("Resize(0) err = %v, want ErrInvalidArgument", err)
	}
	assertWidths(t, row)
}

func TestRowResetIdempotent(t *testing.T) {
	row := mustRow(t, 6, DefaultAttribute)
	writeASCII(t, row.chars, 0, "hello")
	if err := row.SetAttrRange(1, 3, bold); err != nil {
		t.Fatalf("SetAttrRange: %v", err)
	}
	if err := row.Reset(blue); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	once := row.Clone()
	if err := row.Reset(blue); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if row.String() != once.String() || !row.AttrRow().Equal(once.AttrRow()) {
		t.Fatalf("second reset changed state")
	}
	if row.String() != "      " {
		t.Fatalf("String = %q, want blanks", row.String())
	}
	if n := row.AttrRow().NumberOfRuns(); n != 1 {
		t.Fatalf("NumberOfRuns = %d, want 1", n)
	}
}

func TestRowSwapExchangesEverything(t *testing.T) {
	a, err := NewRow(0, 80, DefaultAttribute)
	if err != nil {
		t.Fatalf("NewRow: %v", err)
	}
	b, err := NewRow(1, 80, red)
	if err != nil {
		t.Fatalf("NewRow: %v", err)
	}
	writeASCII(t, a.chars, 0, "first")
	writeASCII(t, b.chars, 0, "second")
	if err := a.SetAttrRange(0, 5, bold); err != nil {
		t.Fatalf("SetAttrRange: %v", err)
	}
	aChars, bChars := a.CharRow(), b.CharRow()

	a.Swap(b)

	if a.CharRow() != bChars || b.CharRow() != aChars {
		t.Fatalf("swap copied char rows instead of exchanging them")
	}
	if a.ID() != 1 || b.ID() != 0 {
		t.Fatalf("ids = %d,%d, want 1,0", a.ID(), b.ID())
	}
	if a.String()[:6] != "second" || b.String()[:5] != "first" {
		t.Fatalf("text not swapped: %q / %q", a.String()[:6], b.String()[:5])
	}
	assertAttrAt(t, a, 0, red)
	assertAttrAt(t, b, 0, bold)
	assertWidths(t, a)
	assertWidths(t, b)
}

func TestRowSwapDifferentWidths(t *testing.T) {
	a := mustRow(t, 3, DefaultAttribute)
	b := mustRow(t, 7, DefaultAttribute)
	a.Swap(b)
	if a.Width() != 7 || b.Width() != 3 {
		t.Fatalf("widths = %d,%d, want 7,3", a.Width(), b.Width())
	}
	assertWidths(t, a)
	assertWidths(t, b)
}

func TestRowCloneIsDeep(t *testing.T) {
	row := mustRow(t, 4, DefaultAttribute)
	writeASCII(t, row.chars, 0, "abcd")
	row.SetID(9)
	c := row.Clone()
	writeASCII(t, row.chars, 0, "zz")
	if err := row.SetAttrRange(0, 4, bold); err != nil {
		t.Fatalf("SetAttrRange: %v", err)
	}
	if c.String() != "abcd" {
		t.Fatalf("clone String = %q, want abcd", c.String())
	}
	if c.ID() != 9 {
		t.Fatalf("clone ID = %d, want 9", c.ID())
	}
	assertAttrAt(t, c, 0, DefaultAttribute)
}

func TestRowCopyFrom(t *testing.T) {
	src := mustRow(t, 5, red)
	writeASCII(t, src.chars, 0, "copy!")
	dst := mustRow(t, 2, DefaultAttribute)
	dst.CopyFrom(src)
	if dst.String() != "copy!" || dst.Width() != 5 {
		t.Fatalf("dst = %q/%d", dst.String(), dst.Width())
	}
	writeASCII(t, src.chars, 0, "x")
	if dst.String() != "copy!" {
		t.Fatalf("dst aliases src: %q", dst.String())
	}
	assertWidths(t, dst)
}

func TestRowCloneForeignEncodingPanics(t *testing.T) {
	row := mustRow(t, 4, DefaultAttribute)
	row.chars = &foreignCharRow{UCS2CharRow: row.chars.(*UCS2CharRow)}
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrEncodingMismatch) {
			t.Fatalf("recover = %v, want ErrEncodingMismatch", r)
		}
	}()
	_ = row.Clone()
}

func TestRowClearColumnWideGlyph(t *testing.T) {
	row := mustRow(t, 10, DefaultAttribute)
	writeWide(t, row.chars, 5, '中')
	if err := row.ClearColumn(5); err != nil {
		t.Fatalf("ClearColumn: %v", err)
	}
	for _, col := range []int{5, 6} {
		cell := mustCell(t, row, col)
		if cell.WidthMarker() != WidthSingle || cell.String() != " " {
			t.Fatalf("column %d = %q/%v, want blank single", col, cell.String(), cell.WidthMarker())
		}
	}
	if err := row.ClearColumn(10); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("ClearColumn(10) err = %v, want ErrOutOfRange", err)
	}
}

func TestRowAsCellsMergesViews(t *testing.T) {
	row := mustRow(t, 6, DefaultAttribute)
	writeASCII(t, row.chars, 0, "ab")
	writeWide(t, row.chars, 2, '中')
	if err := row.SetAttrRange(1, 4, bold); err != nil {
		t.Fatalf("SetAttrRange: %v", err)
	}
	cells, err := row.AsCells(1, 3)
	if err != nil {
		t.Fatalf("AsCells: %v", err)
	}
	if len(cells) != 3 {
		t.Fatalf("len = %d, want 3", len(cells))
	}
	if cells[0].String() != "b" || cells[0].TextAttr() != bold {
		t.Fatalf("cell 0 = %q/%v", cells[0].String(), cells[0].TextAttr())
	}
	if cells[1].WidthMarker() != WidthLeading || cells[2].WidthMarker() != WidthTrailing {
		t.Fatalf("markers = %v,%v", cells[1].WidthMarker(), cells[2].WidthMarker())
	}
	if !cells[2].IsTrailing() {
		t.Fatalf("cell 2 not trailing")
	}
	for i, cell := range cells {
		point := mustCell(t, row, i+1)
		if point.String() != cell.String() || point.TextAttr() != cell.TextAttr() || point.WidthMarker() != cell.WidthMarker() {
			t.Fatalf("batch cell %d differs from point read", i)
		}
	}

	all, err := row.AllCells()
	if err != nil || len(all) != 6 {
		t.Fatalf("AllCells = %d, %v", len(all), err)
	}
	tail, err := row.CellsFrom(4)
	if err != nil || len(tail) != 2 {
		t.Fatalf("CellsFrom = %d, %v", len(tail), err)
	}
	if _, err := row.AsCells(4, 3); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("AsCells(4,3) err = %v, want ErrOutOfRange", err)
	}
	if _, err := row.At(6); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("At(6) err = %v, want ErrOutOfRange", err)
	}
}

func TestOutputCellGlyphIsCopy(t *testing.T) {
	row := mustRow(t, 2, DefaultAttribute)
	writeASCII(t, row.chars, 0, "q")
	cell := mustCell(t, row, 0)
	g := cell.Glyph()
	g[0] = 'z'
	if cell.String() != "q" {
		t.Fatalf("cell mutated through Glyph(): %q", cell.String())
	}
}

func TestNewRowInvalidWidth(t *testing.T) {
	for _, w := range []int{0, -3, MaxWidth + 1} {
		if _, err := NewRow(0, w, DefaultAttribute); !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("NewRow(%d) err = %v, want ErrInvalidArgument", w, err)
		}
	}
}

type failingCharRow struct {
	*UCS2CharRow
}

func (f *failingCharRow) Resize(int) error {
	return ErrAllocation
}

type foreignCharRow struct {
	*UCS2CharRow
}

func (f *foreignCharRow) Encoding() Encoding {
	return Encoding(99)
}

func mustRow(t *testing.T, width int, fill TextAttribute) *Row {
	t.Helper()
	row, err := NewRow(0, width, fill)
	if err != nil {
		t.Fatalf("NewRow: %v", err)
	}
	return row
}

func mustCell(t *testing.T, row *Row, col int) OutputCell {
	t.Helper()
	cell, err := row.At(col)
	if err != nil {
		t.Fatalf("At(%d): %v", col, err)
	}
	return cell
}

func assertAttrAt(t *testing.T, row *Row, col int, want TextAttribute) {
	t.Helper()
	got, err := row.AttrRow().AttrAt(col)
	if err != nil {
		t.Fatalf("AttrAt(%d): %v", col, err)
	}
	if got != want {
		t.Fatalf("AttrAt(%d) = %v, want %v", col, got, want)
	}
}

func assertWidths(t *testing.T, row *Row) {
	t.Helper()
	if row.CharRow().Size() != row.Width() || row.AttrRow().Len() != row.Width() {
		t.Fatalf("widths diverge: row %d, chars %d, attrs %d", row.Width(), row.CharRow().Size(), row.AttrRow().Len())
	}
	assertCanonical(t, row.AttrRow())
}
