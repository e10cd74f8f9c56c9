package render

import (
	"bytes"
	"strings"
	"testing"

	"pkt.systems/vtrow/internal/terminal"
	"pkt.systems/vtrow/internal/terminal/emu"
	"pkt.systems/vtrow/internal/textbuf"
)

func TestSgrKeepsNonBoldIndexed(t *testing.T) {
	attr := renderAttr{
		mode: 0,
		fg:   textbuf.IndexedColor(7),
		bg:   textbuf.ColorDefault,
	}
	got := sgr(attr)
	if !strings.Contains(got, "37") {
		t.Fatalf("expected indexed color 7, got %q", got)
	}
}

func TestSgrInverseUsesInverseCodeWithoutSwapping(t *testing.T) {
	attr := renderAttr{
		mode: textbuf.ModeInverse,
		fg:   textbuf.IndexedColor(2),
		bg:   textbuf.IndexedColor(4),
	}
	got := sgr(attr)
	if !hasCode(got, "7") {
		t.Fatalf("expected inverse SGR code in %q", got)
	}
	if !hasCode(got, "32") || !hasCode(got, "44") {
		t.Fatalf("expected original colors preserved, got %q", got)
	}
}

func TestSgrInverseWithDefaultUsesInverseCode(t *testing.T) {
	attr := renderAttr{
		mode: textbuf.ModeInverse,
		fg:   textbuf.ColorDefault,
		bg:   textbuf.IndexedColor(2),
	}
	got := sgr(attr)
	if !hasCode(got, "7") {
		t.Fatalf("expected inverse SGR code in %q", got)
	}
	if !hasCode(got, "42") {
		t.Fatalf("expected background color preserved, got %q", got)
	}
	if !hasCode(got, "39") {
		t.Fatalf("expected default fg code, got %q", got)
	}
}

func TestColorCodeIndexedUsesAnsiPalette(t *testing.T) {
	cases := []struct {
		fg   bool
		val  uint32
		want string
	}{
		{true, textbuf.IndexedColor(2), "32"},
		{false, textbuf.IndexedColor(2), "42"},
		{true, textbuf.IndexedColor(12), "94"},
		{false, textbuf.IndexedColor(12), "104"},
	}
	for _, c := range cases {
		if got := strings.Join(colorCode(c.fg, c.val), ";"); got != c.want {
			t.Fatalf("colorCode(%v, %#x) = %q, want %q", c.fg, c.val, got, c.want)
		}
	}
}

func TestColorCodeExtendedForms(t *testing.T) {
	if got := strings.Join(colorCode(true, textbuf.PaletteColor(16)), ";"); got != "38;5;16" {
		t.Fatalf("expected 256 fg for index 16, got %q", got)
	}
	if got := strings.Join(colorCode(false, textbuf.PaletteColor(200)), ";"); got != "48;5;200" {
		t.Fatalf("expected 256 bg for index 200, got %q", got)
	}
	if got := strings.Join(colorCode(true, textbuf.RGBColor(1, 2, 3)), ";"); got != "38;2;1;2;3" {
		t.Fatalf("expected truecolor fg, got %q", got)
	}
}

func TestSgrBoldDoesNotPromoteIndexed(t *testing.T) {
	attr := renderAttr{
		mode: textbuf.ModeBold,
		fg:   textbuf.IndexedColor(7),
		bg:   textbuf.ColorDefault,
	}
	got := sgr(attr)
	if hasCode(got, "97") {
		t.Fatalf("expected bold to keep base indexed color, got %q", got)
	}
	if !hasCode(got, "37") || !hasCode(got, "1") {
		t.Fatalf("expected bold base white, got %q", got)
	}
}

func TestSnapshotViewportResetsRowAttributes(t *testing.T) {
	snap := emulate(t, 3, 2, "\x1b[42mABC\x1b[0m\r\nDEF")

	var buf bytes.Buffer
	if err := Snapshot(&buf, snap); err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	round := emulate(t, 3, 2, buf.String())
	cell, err := round.CellAt(0, 1)
	if err != nil {
		t.Fatalf("cell: %v", err)
	}
	if cell.TextAttr().BG != textbuf.ColorDefault {
		t.Fatalf("expected row1 bg default, got %v", cell.TextAttr())
	}
	cell, err = round.CellAt(2, 0)
	if err != nil {
		t.Fatalf("cell: %v", err)
	}
	if cell.TextAttr().BG != textbuf.IndexedColor(2) || cell.String() != "C" {
		t.Fatalf("row0 col2 = %q %v", cell.String(), cell.TextAttr())
	}
}

func TestSnapshotWritesWideGlyphOnce(t *testing.T) {
	snap := emulate(t, 4, 1, "中a")
	var buf bytes.Buffer
	if err := Snapshot(&buf, snap); err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	out := buf.String()
	if strings.Count(out, "中") != 1 || !strings.Contains(out, "中a ") {
		t.Fatalf("unexpected wide glyph rendering: %q", out)
	}
	round := emulate(t, 4, 1, out)
	if got := round.LineText(0); got != "中a" {
		t.Fatalf("round trip = %q, want %q", got, "中a")
	}
}

func TestSnapshotViewportFollowsCursor(t *testing.T) {
	snap := emulate(t, 6, 3, "abcdef")
	var buf bytes.Buffer
	if err := SnapshotViewport(&buf, snap, 3, 3); err != nil {
		t.Fatalf("SnapshotViewport: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "def") || strings.Contains(out, "abc") {
		t.Fatalf("viewport did not follow cursor: %q", out)
	}
}

func TestSnapshotHiddenAndTitle(t *testing.T) {
	snap := emulate(t, 4, 1, "\x1b]0;ti\ntle\x07\x1b[8mpw\x1b[0m")
	var buf bytes.Buffer
	if err := Snapshot(&buf, snap); err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	out := buf.String()
	if strings.Contains(out, "pw") {
		t.Fatalf("hidden text rendered: %q", out)
	}
	if !strings.Contains(out, "\x1b]0;title\x07") {
		t.Fatalf("title missing or unsanitized: %q", out)
	}
}

func TestViewportOrigin(t *testing.T) {
	cases := []struct {
		cw, ch, vw, vh, cx, cy int
		x0, y0                 int
	}{
		{80, 24, 80, 24, 79, 23, 0, 0},
		{80, 24, 40, 10, 10, 5, 0, 0},
		{80, 24, 40, 10, 79, 23, 40, 14},
		{80, 24, 40, 10, 45, 12, 6, 3},
	}
	for _, c := range cases {
		x0, y0 := viewportOrigin(c.cw, c.ch, c.vw, c.vh, c.cx, c.cy)
		if x0 != c.x0 || y0 != c.y0 {
			t.Fatalf("viewportOrigin(%+v) = %d,%d, want %d,%d", c, x0, y0, c.x0, c.y0)
		}
	}
}

func emulate(t *testing.T, cols, rows int, input string) terminal.Snapshot {
	t.Helper()
	e, err := emu.New(cols, rows)
	if err != nil {
		t.Fatalf("emu.New: %v", err)
	}
	if err := e.Write([]byte(input)); err != nil {
		t.Fatalf("emu write: %v", err)
	}
	snap, err := e.Snapshot()
	if err != nil {
		t.Fatalf("emu snapshot: %v", err)
	}
	return snap
}

func hasCode(seq, code string) bool {
	seq = strings.TrimSuffix(strings.TrimPrefix(seq, "\x1b["), "m")
	for _, part := range strings.Split(seq, ";") {
		if part == code {
			return true
		}
	}
	return false
}
