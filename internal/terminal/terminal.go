package terminal

import (
	"fmt"
	"strings"

	"pkt.systems/vtrow/internal/textbuf"
)

// Emulator provides access to an authoritative terminal emulator.
type Emulator interface {
	Write(p []byte) error
	Resize(cols, rows int)
	Snapshot() (Snapshot, error)
}

// Cursor represents a cursor position.
type Cursor struct {
	X int
	Y int
}

// Snapshot captures terminal state. Lines are deep copies owned by the
// snapshot; mutating the emulator afterwards does not change them.
type Snapshot struct {
	Cols          int
	Rows          int
	Cursor        Cursor
	CursorVisible bool
	Mode          uint32
	Title         string
	Lines         []*textbuf.Row
}

// Emulator mode flags reported in Snapshot.Mode.
const (
	FlagWrap      uint32 = 1 << 0
	FlagOrigin    uint32 = 1 << 1
	FlagInsert    uint32 = 1 << 2
	FlagAltScreen uint32 = 1 << 3
)

// CellAt returns the cell at (x, y).
func (s Snapshot) CellAt(x, y int) (textbuf.OutputCell, error) {
	if y < 0 || y >= len(s.Lines) {
		return textbuf.OutputCell{}, fmt.Errorf("cell (%d,%d): row %d of %d: %w", x, y, y, len(s.Lines), textbuf.ErrOutOfRange)
	}
	return s.Lines[y].At(x)
}

// LineText returns row y with trailing blanks removed.
func (s Snapshot) LineText(y int) string {
	if y < 0 || y >= len(s.Lines) {
		return ""
	}
	return strings.TrimRight(s.Lines[y].String(), " ")
}

// Text returns the visible screen as text. Rows that continue on the next
// row because of auto-wrap are joined without a line break.
func (s Snapshot) Text() string {
	var b strings.Builder
	for y, line := range s.Lines {
		if line.WasWrapForced() {
			b.WriteString(line.String())
			continue
		}
		b.WriteString(s.LineText(y))
		if y < len(s.Lines)-1 {
			b.WriteByte('\n')
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
