package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"pkt.systems/vtrow/internal/terminal"
	"pkt.systems/vtrow/internal/textbuf"
)

const (
	ansiClearScreen = "\x1b[2J"
	ansiHome        = "\x1b[H"
	ansiHideCursor  = "\x1b[?25l"
	ansiShowCursor  = "\x1b[?25h"
	ansiReset       = "\x1b[0m"
)

// Snapshot renders a snapshot to the writer using ANSI escapes.
func Snapshot(w io.Writer, snap terminal.Snapshot) error {
	return SnapshotViewport(w, snap, snap.Cols, snap.Rows)
}

// SnapshotViewport renders a snapshot cropped or padded to a viewport. The
// viewport follows the cursor when it is smaller than the snapshot.
func SnapshotViewport(w io.Writer, snap terminal.Snapshot, viewCols, viewRows int) error {
	cursorVisible := ansiHideCursor
	if snap.CursorVisible {
		cursorVisible = ansiShowCursor
	}
	if _, err := io.WriteString(w, ansiClearScreen+ansiHome+cursorVisible+ansiReset); err != nil {
		return err
	}

	cols, rows := snap.Cols, len(snap.Lines)
	if viewCols <= 0 {
		viewCols = cols
	}
	if viewRows <= 0 {
		viewRows = rows
	}
	cursorX := clamp(snap.Cursor.X, 0, cols-1)
	cursorY := clamp(snap.Cursor.Y, 0, rows-1)
	x0, y0 := viewportOrigin(cols, rows, viewCols, viewRows, cursorX, cursorY)

	current := renderAttr{mode: -1, fg: ^uint32(0), bg: ^uint32(0)}
	for y := 0; y < viewRows; y++ {
		var row strings.Builder
		fmt.Fprintf(&row, "\x1b[%d;%dH", y+1, 1)
		var cells []textbuf.OutputCell
		if cy := y0 + y; cy >= 0 && cy < rows {
			var err error
			if cells, err = snap.Lines[cy].AllCells(); err != nil {
				return fmt.Errorf("render row %d: %w", cy, err)
			}
		}
		for x := 0; x < viewCols; x++ {
			cx := x0 + x
			if cx < 0 || cx >= len(cells) {
				writeCell(&row, &current, defaultRenderAttr, " ")
				continue
			}
			cell := cells[cx]
			attr := attrOf(cell.TextAttr())
			text := cell.String()
			switch {
			case attr.mode&textbuf.ModeHidden != 0:
				text = " "
			case cell.IsTrailing():
				if x > 0 {
					continue
				}
				// Right half of a glyph cut by the viewport edge.
				text = " "
			case cell.WidthMarker() == textbuf.WidthLeading && x == viewCols-1:
				text = " "
			}
			writeCell(&row, &current, attr, text)
		}
		if _, err := io.WriteString(w, row.String()); err != nil {
			return err
		}
	}

	if cursorX >= x0 && cursorX < x0+viewCols && cursorY >= y0 && cursorY < y0+viewRows {
		if _, err := fmt.Fprintf(w, "\x1b[%d;%dH", cursorY-y0+1, cursorX-x0+1); err != nil {
			return err
		}
	} else if snap.CursorVisible {
		if _, err := io.WriteString(w, ansiHideCursor); err != nil {
			return err
		}
	}

	if snap.Title != "" {
		if _, err := fmt.Fprintf(w, "\x1b]0;%s\x07", sanitizeTitle(snap.Title)); err != nil {
			return err
		}
	}
	return nil
}

func writeCell(b *strings.Builder, current *renderAttr, attr renderAttr, text string) {
	if *current != attr {
		b.WriteString(sgr(attr))
		*current = attr
	}
	b.WriteString(text)
}

type renderAttr struct {
	mode int16
	fg   uint32
	bg   uint32
}

var defaultRenderAttr = renderAttr{fg: textbuf.ColorDefault, bg: textbuf.ColorDefault}

func attrOf(a textbuf.TextAttribute) renderAttr {
	return renderAttr{mode: a.Mode, fg: a.FG, bg: a.BG}
}

var sgrModes = []struct {
	bit  int16
	code string
}{
	{textbuf.ModeBold, "1"},
	{textbuf.ModeFaint, "2"},
	{textbuf.ModeItalic, "3"},
	{textbuf.ModeUnderline, "4"},
	{textbuf.ModeBlink, "5"},
	{textbuf.ModeInverse, "7"},
	{textbuf.ModeHidden, "8"},
	{textbuf.ModeStrike, "9"},
}

// sgr always starts from a reset so the sequence is independent of the
// previous cell. Inverse is emitted as SGR 7 with the colors unswapped.
func sgr(attr renderAttr) string {
	codes := []string{"0"}
	for _, m := range sgrModes {
		if attr.mode&m.bit != 0 {
			codes = append(codes, m.code)
		}
	}
	codes = append(codes, colorCode(true, attr.fg)...)
	codes = append(codes, colorCode(false, attr.bg)...)
	return "\x1b[" + strings.Join(codes, ";") + "m"
}

func colorCode(fg bool, val uint32) []string {
	raw := val & textbuf.ColorValueMask
	switch val & textbuf.ColorFlagMask {
	case textbuf.ColorIndexed:
		base := 30
		if raw >= 8 {
			base = 90
			raw -= 8
		}
		if !fg {
			base += 10
		}
		return []string{strconv.Itoa(base + int(raw))}
	case textbuf.ColorIndexed256:
		return []string{pick(fg, "38", "48"), "5", strconv.FormatUint(uint64(raw), 10)}
	case textbuf.ColorTrue:
		return []string{
			pick(fg, "38", "48"), "2",
			strconv.FormatUint(uint64(raw>>16&0xff), 10),
			strconv.FormatUint(uint64(raw>>8&0xff), 10),
			strconv.FormatUint(uint64(raw&0xff), 10),
		}
	}
	return []string{pick(fg, "39", "49")}
}

func pick(fg bool, a, b string) string {
	if fg {
		return a
	}
	return b
}

func sanitizeTitle(title string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '\n', '\r', 0x07, 0x1b:
			return -1
		default:
			return r
		}
	}, title)
}

func viewportOrigin(cw, ch, vw, vh, cursorX, cursorY int) (int, int) {
	origin := func(content, view, cursor int) int {
		if view >= content || cursor < view {
			return 0
		}
		return max(min(cursor-view+1, content-view), 0)
	}
	return origin(cw, vw, cursorX), origin(ch, vh, cursorY)
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
