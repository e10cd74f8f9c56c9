package protocol

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"google.golang.org/protobuf/proto"

	"pkt.systems/vtrow/internal/protocolpb"
	"pkt.systems/vtrow/internal/terminal"
	"pkt.systems/vtrow/internal/textbuf"
)

// ErrMalformed reports a wire message that cannot be parsed at all. Messages
// that parse but violate a row invariant wrap textbuf.ErrInvalidArgument.
var ErrMalformed = errors.New("protocol: malformed message")

// SnapshotToProto converts a snapshot to its wire message. Attributes stay
// run-length encoded.
func SnapshotToProto(s terminal.Snapshot) (*protocolpb.Snapshot, error) {
	msg := &protocolpb.Snapshot{
		Cols:          uint32(s.Cols),
		Rows:          uint32(s.Rows),
		CursorX:       uint32(s.Cursor.X),
		CursorY:       uint32(s.Cursor.Y),
		CursorVisible: s.CursorVisible,
		Mode:          s.Mode,
		Title:         strings.ToValidUTF8(s.Title, "\uFFFD"),
		Lines:         make([]*protocolpb.Row, 0, len(s.Lines)),
	}
	for y, line := range s.Lines {
		row, err := rowToProto(line)
		if err != nil {
			return nil, fmt.Errorf("encode row %d: %w", y, err)
		}
		msg.Lines = append(msg.Lines, row)
	}
	return msg, nil
}

// EncodeSnapshot serializes a snapshot.
func EncodeSnapshot(s terminal.Snapshot) ([]byte, error) {
	msg, err := SnapshotToProto(s)
	if err != nil {
		return nil, err
	}
	return proto.Marshal(msg)
}

func rowToProto(r *textbuf.Row) (*protocolpb.Row, error) {
	chars := r.CharRow()
	width := r.Width()
	row := &protocolpb.Row{
		Id:               uint32(r.ID()),
		Width:            uint32(width),
		Units:            make([]uint32, width),
		Markers:          make([]byte, width),
		WrapForced:       r.WasWrapForced(),
		DoubleBytePadded: r.WasDoubleBytePadded(),
	}
	for x := range width {
		glyph, err := chars.GlyphAt(x)
		if err != nil {
			return nil, err
		}
		if len(glyph) != 1 {
			return nil, fmt.Errorf("column %d holds %d code units: %w", x, len(glyph), textbuf.ErrInvalidArgument)
		}
		marker, err := chars.WidthAt(x)
		if err != nil {
			return nil, err
		}
		row.Units[x] = uint32(glyph[0])
		row.Markers[x] = byte(marker)
	}
	for _, run := range r.Runs() {
		row.Runs = append(row.Runs, &protocolpb.Run{
			Mode:   uint32(uint16(run.Attr.Mode)),
			Fg:     run.Attr.FG,
			Bg:     run.Attr.BG,
			Length: uint32(run.Length),
		})
	}
	return row, nil
}

// DecodeSnapshot parses a snapshot produced by EncodeSnapshot and rebuilds
// its rows.
func DecodeSnapshot(data []byte) (terminal.Snapshot, error) {
	var msg protocolpb.Snapshot
	if err := proto.Unmarshal(data, &msg); err != nil {
		return terminal.Snapshot{}, fmt.Errorf("decode snapshot: %v: %w", err, ErrMalformed)
	}
	s, err := SnapshotFromProto(&msg)
	if err != nil {
		return terminal.Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return s, nil
}

// SnapshotFromProto validates msg and rebuilds its rows. Every row must match
// the snapshot width, carry one code unit and one valid marker per column,
// keep wide glyph halves paired and have runs summing to the width.
func SnapshotFromProto(msg *protocolpb.Snapshot) (terminal.Snapshot, error) {
	var s terminal.Snapshot
	var err error
	if s.Cols, err = toInt(msg.GetCols(), textbuf.MaxWidth); err != nil {
		return terminal.Snapshot{}, err
	}
	if s.Rows, err = toInt(msg.GetRows(), textbuf.MaxWidth); err != nil {
		return terminal.Snapshot{}, err
	}
	if s.Cursor.X, err = toInt(msg.GetCursorX(), textbuf.MaxWidth); err != nil {
		return terminal.Snapshot{}, err
	}
	if s.Cursor.Y, err = toInt(msg.GetCursorY(), textbuf.MaxWidth); err != nil {
		return terminal.Snapshot{}, err
	}
	s.CursorVisible = msg.GetCursorVisible()
	s.Mode = msg.GetMode()
	s.Title = msg.GetTitle()

	if s.Cols <= 0 {
		return terminal.Snapshot{}, fmt.Errorf("cols %d: %w", s.Cols, textbuf.ErrInvalidArgument)
	}
	lines := msg.GetLines()
	if len(lines) != s.Rows {
		return terminal.Snapshot{}, fmt.Errorf("%d rows, header says %d: %w", len(lines), s.Rows, textbuf.ErrInvalidArgument)
	}
	if s.Cursor.X >= s.Cols || (s.Rows > 0 && s.Cursor.Y >= s.Rows) {
		return terminal.Snapshot{}, fmt.Errorf("cursor %d,%d outside %dx%d: %w", s.Cursor.X, s.Cursor.Y, s.Cols, s.Rows, textbuf.ErrInvalidArgument)
	}
	s.Lines = make([]*textbuf.Row, 0, len(lines))
	for y, line := range lines {
		row, err := rowFromProto(line)
		if err != nil {
			return terminal.Snapshot{}, fmt.Errorf("row %d: %w", y, err)
		}
		if row.Width() != s.Cols {
			return terminal.Snapshot{}, fmt.Errorf("row %d: width %d, snapshot cols %d: %w", y, row.Width(), s.Cols, textbuf.ErrInvalidArgument)
		}
		s.Lines = append(s.Lines, row)
	}
	return s, nil
}

func rowFromProto(msg *protocolpb.Row) (*textbuf.Row, error) {
	id, err := toInt(msg.GetId(), math.MaxInt32)
	if err != nil {
		return nil, err
	}
	width, err := toInt(msg.GetWidth(), textbuf.MaxWidth)
	if err != nil {
		return nil, err
	}
	units, markers := msg.GetUnits(), msg.GetMarkers()
	if len(units) != width || len(markers) != width {
		return nil, fmt.Errorf("width %d with %d code units and %d markers: %w", width, len(units), len(markers), textbuf.ErrInvalidArgument)
	}
	for x, u := range units {
		if u > math.MaxUint16 {
			return nil, fmt.Errorf("column %d: code unit %#x: %w", x, u, textbuf.ErrInvalidArgument)
		}
	}
	if err := checkPairs(units, markers); err != nil {
		return nil, err
	}

	runs := make([]textbuf.AttrRun, 0, len(msg.GetRuns()))
	for _, run := range msg.GetRuns() {
		if run.GetMode() > math.MaxUint16 {
			return nil, fmt.Errorf("run mode %d: %w", run.GetMode(), textbuf.ErrInvalidArgument)
		}
		length, err := toInt(run.GetLength(), textbuf.MaxWidth)
		if err != nil {
			return nil, err
		}
		runs = append(runs, textbuf.AttrRun{
			Attr: textbuf.TextAttribute{
				Mode: int16(uint16(run.GetMode())),
				FG:   run.GetFg(),
				BG:   run.GetBg(),
			},
			Length: length,
		})
	}
	attrs, err := textbuf.AttrRowFromRuns(runs)
	if err != nil {
		return nil, err
	}
	row, err := textbuf.NewRow(id, width, textbuf.TextAttribute{})
	if err != nil {
		return nil, err
	}
	if err := row.SetAttrs(attrs); err != nil {
		return nil, err
	}
	for x, u := range units {
		if err := row.SetGlyph(x, textbuf.Glyph{uint16(u)}, textbuf.WidthMarker(markers[x])); err != nil {
			return nil, err
		}
	}
	row.SetWrapForced(msg.GetWrapForced())
	row.SetDoubleBytePadded(msg.GetDoubleBytePadded())
	return row, nil
}

// checkPairs requires every leading half to be followed by a trailing half
// holding the same unit, and every trailing half to follow a leading one.
func checkPairs(units []uint32, markers []byte) error {
	for x, m := range markers {
		marker := textbuf.WidthMarker(m)
		if !marker.Valid() {
			return fmt.Errorf("column %d: marker %d: %w", x, m, textbuf.ErrInvalidArgument)
		}
		switch marker {
		case textbuf.WidthLeading:
			if x+1 >= len(markers) || textbuf.WidthMarker(markers[x+1]) != textbuf.WidthTrailing || units[x+1] != units[x] {
				return fmt.Errorf("column %d: leading half without trailing half: %w", x, textbuf.ErrInvalidArgument)
			}
		case textbuf.WidthTrailing:
			if x == 0 || textbuf.WidthMarker(markers[x-1]) != textbuf.WidthLeading {
				return fmt.Errorf("column %d: trailing half without leading half: %w", x, textbuf.ErrInvalidArgument)
			}
		}
	}
	return nil
}

func toInt(v uint32, limit int) (int, error) {
	if uint64(v) > uint64(limit) {
		return 0, fmt.Errorf("value %d exceeds %d: %w", v, limit, textbuf.ErrInvalidArgument)
	}
	return int(v), nil
}
