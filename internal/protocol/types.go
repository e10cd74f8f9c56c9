// Package protocol encodes screen snapshots for storage and transport: a
// protobuf wire form that keeps attributes run-length compressed, and a
// JSON dump for inspection.
package protocol

import (
	"encoding/json"
	"fmt"

	"pkt.systems/vtrow/internal/terminal"
	"pkt.systems/vtrow/internal/textbuf"
)

// SnapshotDump is the JSON form of a snapshot.
type SnapshotDump struct {
	Cols          int       `json:"cols"`
	Rows          int       `json:"rows"`
	Cursor        CursorPos `json:"cursor"`
	CursorVisible bool      `json:"cursor_visible"`
	Mode          uint32    `json:"mode,omitempty"`
	Title         string    `json:"title,omitempty"`
	Lines         []RowDump `json:"lines"`
}

// CursorPos is a zero-based cursor position.
type CursorPos struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// RowDump describes one row. Wide lists the columns holding the leading
// half of a double width glyph.
type RowDump struct {
	ID               int       `json:"id"`
	Width            int       `json:"width"`
	Text             string    `json:"text"`
	Wide             []int     `json:"wide,omitempty"`
	Runs             []RunDump `json:"runs"`
	WrapForced       bool      `json:"wrap_forced,omitempty"`
	DoubleBytePadded bool      `json:"double_byte_padded,omitempty"`
}

// RunDump is one attribute run. Attr is the readable form of Mode, FG and BG.
type RunDump struct {
	Attr   string `json:"attr"`
	Mode   int16  `json:"mode,omitempty"`
	FG     uint32 `json:"fg,omitempty"`
	BG     uint32 `json:"bg,omitempty"`
	Length int    `json:"length"`
}

// DumpSnapshot converts a snapshot to its JSON form.
func DumpSnapshot(s terminal.Snapshot) (SnapshotDump, error) {
	d := SnapshotDump{
		Cols:          s.Cols,
		Rows:          s.Rows,
		Cursor:        CursorPos{X: s.Cursor.X, Y: s.Cursor.Y},
		CursorVisible: s.CursorVisible,
		Mode:          s.Mode,
		Title:         s.Title,
		Lines:         make([]RowDump, 0, len(s.Lines)),
	}
	for y, line := range s.Lines {
		chars := line.CharRow()
		rd := RowDump{
			ID:               line.ID(),
			Width:            line.Width(),
			Text:             line.String(),
			WrapForced:       chars.WasWrapForced(),
			DoubleBytePadded: chars.WasDoubleBytePadded(),
		}
		cells, err := line.AllCells()
		if err != nil {
			return SnapshotDump{}, fmt.Errorf("dump row %d: %w", y, err)
		}
		for x, cell := range cells {
			if cell.WidthMarker() == textbuf.WidthLeading {
				rd.Wide = append(rd.Wide, x)
			}
		}
		for _, run := range line.Runs() {
			rd.Runs = append(rd.Runs, RunDump{
				Attr:   run.Attr.String(),
				Mode:   run.Attr.Mode,
				FG:     run.Attr.FG,
				BG:     run.Attr.BG,
				Length: run.Length,
			})
		}
		d.Lines = append(d.Lines, rd)
	}
	return d, nil
}

// MarshalSnapshotJSON returns the compact JSON dump of s.
func MarshalSnapshotJSON(s terminal.Snapshot) ([]byte, error) {
	d, err := DumpSnapshot(s)
	if err != nil {
		return nil, err
	}
	return json.Marshal(d)
}
