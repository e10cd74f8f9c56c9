package textbuf

import (
	"errors"
	"testing"
	"unicode/utf16"
)

func TestUCS2ResizeBlankFillsAndTruncates(t *testing.T) {
	r := mustUCS2(t, 3)
	writeASCII(t, r, 0, "abc")
	if err := r.Resize(5); err != nil {
		t.Fatalf("Resize(5): %v", err)
	}
	if got := decode(r.Text()); got != "abc  " {
		t.Fatalf("Text = %q, want %q", got, "abc  ")
	}
	if m, _ := r.WidthAt(4); m != WidthSingle {
		t.Fatalf("WidthAt(4) = %v, want single", m)
	}
	if err := r.Resize(2); err != nil {
		t.Fatalf("Resize(2): %v", err)
	}
	if got := decode(r.Text()); got != "ab" {
		t.Fatalf("Text = %q, want %q", got, "ab")
	}
}

func TestUCS2ResizeInvalidLeavesRow(t *testing.T) {
	r := mustUCS2(t, 3)
	writeASCII(t, r, 0, "xyz")
	for _, w := range []int{0, -1, MaxWidth + 1} {
		if err := r.Resize(w); !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("Resize(%d) err = %v, want ErrInvalidArgument", w, err)
		}
	}
	if r.Size() != 3 || decode(r.Text()) != "xyz" {
		t.Fatalf("row changed after failed resize: %d %q", r.Size(), decode(r.Text()))
	}
}

func TestUCS2ShrinkKeepsGlyphsBelowWidth(t *testing.T) {
	r := mustUCS2(t, 6)
	writeASCII(t, r, 0, "ab")
	writeWide(t, r, 2, '中')
	writeASCII(t, r, 4, "ef")
	if err := r.Resize(3); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	if r.Size() != 3 {
		t.Fatalf("Size = %d, want 3", r.Size())
	}
	want := []WidthMarker{WidthSingle, WidthSingle, WidthLeading}
	for col, m := range want {
		if got, _ := r.WidthAt(col); got != m {
			t.Fatalf("WidthAt(%d) = %v, want %v", col, got, m)
		}
	}
	if got := decode(r.Text()); got != "ab中" {
		t.Fatalf("Text = %q, want %q", got, "ab中")
	}
}

func TestUCS2TextSkipsTrailingHalf(t *testing.T) {
	r := mustUCS2(t, 5)
	writeASCII(t, r, 0, "a")
	writeWide(t, r, 1, '中')
	writeASCII(t, r, 3, "bc")
	if got := decode(r.Text()); got != "a中bc" {
		t.Fatalf("Text = %q, want %q", got, "a中bc")
	}
}

func TestUCS2ClearLeadingClearsTrailing(t *testing.T) {
	r := mustUCS2(t, 10)
	writeWide(t, r, 5, '中')
	if err := r.ClearCell(5); err != nil {
		t.Fatalf("ClearCell: %v", err)
	}
	for _, col := range []int{5, 6} {
		assertBlank(t, r, col)
	}
}

func TestUCS2ClearTrailingClearsLeading(t *testing.T) {
	r := mustUCS2(t, 10)
	writeWide(t, r, 5, '中')
	if err := r.ClearCell(6); err != nil {
		t.Fatalf("ClearCell: %v", err)
	}
	for _, col := range []int{5, 6} {
		assertBlank(t, r, col)
	}
}

func TestUCS2OverwriteHalfBreaksPair(t *testing.T) {
	r := mustUCS2(t, 6)
	writeWide(t, r, 1, '中')
	writeASCII(t, r, 2, "x")
	assertBlank(t, r, 1)
	if got := decode(r.Text()); got != "  x   " {
		t.Fatalf("Text = %q", got)
	}

	writeWide(t, r, 3, '文')
	// New wide glyph starting on an old trailing half.
	writeWide(t, r, 4, '字')
	assertBlank(t, r, 3)
	if m, _ := r.WidthAt(4); m != WidthLeading {
		t.Fatalf("WidthAt(4) = %v, want leading", m)
	}
	if m, _ := r.WidthAt(5); m != WidthTrailing {
		t.Fatalf("WidthAt(5) = %v, want trailing", m)
	}
}

func TestUCS2RewriteWideKeepsPair(t *testing.T) {
	r := mustUCS2(t, 4)
	writeWide(t, r, 0, '中')
	writeWide(t, r, 0, '文')
	if got := decode(r.Text()); got != "文  " {
		t.Fatalf("Text = %q, want %q", got, "文  ")
	}
}

func TestUCS2SetGlyphRejectsUnrepresentable(t *testing.T) {
	r := mustUCS2(t, 2)
	if err := r.SetGlyphAt(0, GlyphFromRune('😀'), WidthLeading); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("surrogate pair err = %v, want ErrInvalidArgument", err)
	}
	if err := r.SetGlyphAt(0, Glyph{}, WidthSingle); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("empty glyph err = %v, want ErrInvalidArgument", err)
	}
	if err := r.SetGlyphAt(0, Glyph{'a'}, WidthMarker(9)); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("bad marker err = %v, want ErrInvalidArgument", err)
	}
	if err := r.SetGlyphAt(2, Glyph{'a'}, WidthSingle); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("column 2 err = %v, want ErrOutOfRange", err)
	}
}

func TestUCS2PointAccessOutOfRange(t *testing.T) {
	r := mustUCS2(t, 2)
	if _, err := r.GlyphAt(2); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("GlyphAt err = %v", err)
	}
	if _, err := r.WidthAt(-1); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("WidthAt err = %v", err)
	}
	if err := r.ClearCell(2); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("ClearCell err = %v", err)
	}
}

func TestUCS2Measure(t *testing.T) {
	r := mustUCS2(t, 8)
	if r.ContainsText() {
		t.Fatalf("blank row reports text")
	}
	if l, rr := r.MeasureLeft(), r.MeasureRight(); l != 8 || rr != 0 {
		t.Fatalf("blank measure = %d,%d, want 8,0", l, rr)
	}
	writeASCII(t, r, 2, "hi")
	writeASCII(t, r, 5, "!")
	if !r.ContainsText() {
		t.Fatalf("row with text reports blank")
	}
	if l, rr := r.MeasureLeft(), r.MeasureRight(); l != 2 || rr != 6 {
		t.Fatalf("measure = %d,%d, want 2,6", l, rr)
	}
}

func TestUCS2ResetClearsFlags(t *testing.T) {
	r := mustUCS2(t, 3)
	writeASCII(t, r, 0, "abc")
	r.SetWrapForced(true)
	r.SetDoubleBytePadded(true)
	r.Reset()
	if r.WasWrapForced() || r.WasDoubleBytePadded() {
		t.Fatalf("flags survived reset")
	}
	if r.ContainsText() {
		t.Fatalf("text survived reset")
	}
}

func TestUCS2CloneIsDeep(t *testing.T) {
	r := mustUCS2(t, 3)
	writeASCII(t, r, 0, "abc")
	r.SetWrapForced(true)
	c := r.Clone()
	writeASCII(t, r, 0, "z")
	if got := decode(c.Text()); got != "abc" {
		t.Fatalf("clone Text = %q, want %q", got, "abc")
	}
	if !c.WasWrapForced() {
		t.Fatalf("clone lost wrap flag")
	}
}

func mustUCS2(t *testing.T, width int) *UCS2CharRow {
	t.Helper()
	r, err := NewUCS2CharRow(width)
	if err != nil {
		t.Fatalf("NewUCS2CharRow: %v", err)
	}
	return r
}

func writeASCII(t *testing.T, r CharRow, col int, s string) {
	t.Helper()
	for i, ch := range []byte(s) {
		if err := r.SetGlyphAt(col+i, Glyph{uint16(ch)}, WidthSingle); err != nil {
			t.Fatalf("SetGlyphAt(%d): %v", col+i, err)
		}
	}
}

func writeWide(t *testing.T, r CharRow, col int, ch rune) {
	t.Helper()
	g := GlyphFromRune(ch)
	if err := r.SetGlyphAt(col, g, WidthLeading); err != nil {
		t.Fatalf("SetGlyphAt(%d): %v", col, err)
	}
	if err := r.SetGlyphAt(col+1, g, WidthTrailing); err != nil {
		t.Fatalf("SetGlyphAt(%d): %v", col+1, err)
	}
}

func assertBlank(t *testing.T, r CharRow, col int) {
	t.Helper()
	g, err := r.GlyphAt(col)
	if err != nil {
		t.Fatalf("GlyphAt(%d): %v", col, err)
	}
	m, _ := r.WidthAt(col)
	if !g.Equal(Glyph{' '}) || m != WidthSingle {
		t.Fatalf("column %d = %q/%v, want blank single", col, g.String(), m)
	}
}

func decode(units []uint16) string {
	return string(utf16.Decode(units))
}
