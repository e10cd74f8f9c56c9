package textbuf

import "fmt"

// AttrRun is a span of consecutive columns sharing one attribute.
type AttrRun struct {
	Attr   TextAttribute
	Length int
}

// AttrRow stores the attributes of one row run-length encoded. Runs always
// cover exactly Len() columns and no two adjacent runs share an attribute.
//
// The zero value is not usable; construct with NewAttrRow.
type AttrRow struct {
	runs  []AttrRun
	width int
}

// NewAttrRow returns a row of width columns filled with attr.
func NewAttrRow(width int, attr TextAttribute) (AttrRow, error) {
	if err := checkWidth("new attr row", width); err != nil {
		return AttrRow{}, err
	}
	return AttrRow{runs: []AttrRun{{Attr: attr, Length: width}}, width: width}, nil
}

// AttrRowFromRuns builds a row from an arbitrary run list, merging adjacent
// equal runs. Runs must have positive lengths.
func AttrRowFromRuns(runs []AttrRun) (AttrRow, error) {
	var r AttrRow
	r.runs = make([]AttrRun, 0, len(runs))
	for i, run := range runs {
		if run.Length <= 0 {
			return AttrRow{}, fmt.Errorf("attr runs: run %d length %d: %w", i, run.Length, ErrInvalidArgument)
		}
		r.runs = appendRun(r.runs, run)
		r.width += run.Length
	}
	if err := checkWidth("attr runs", r.width); err != nil {
		return AttrRow{}, err
	}
	return r, nil
}

// PackAttrs compresses a flat per-column attribute slice. It is the inverse
// of UnpackInto.
func PackAttrs(attrs []TextAttribute) (AttrRow, error) {
	if err := checkWidth("pack attrs", len(attrs)); err != nil {
		return AttrRow{}, err
	}
	r := AttrRow{width: len(attrs)}
	for _, a := range attrs {
		r.runs = appendRun(r.runs, AttrRun{Attr: a, Length: 1})
	}
	return r, nil
}

// Len returns the number of columns covered.
func (r *AttrRow) Len() int {
	return r.width
}

// NumberOfRuns returns the number of runs.
func (r *AttrRow) NumberOfRuns() int {
	return len(r.runs)
}

// Runs returns a copy of the run list.
func (r *AttrRow) Runs() []AttrRun {
	out := make([]AttrRun, len(r.runs))
	copy(out, r.runs)
	return out
}

// Clone returns a deep copy.
func (r *AttrRow) Clone() AttrRow {
	return AttrRow{runs: r.Runs(), width: r.width}
}

// Equal reports whether both rows hold the same runs.
func (r *AttrRow) Equal(other *AttrRow) bool {
	if r.width != other.width || len(r.runs) != len(other.runs) {
		return false
	}
	for i := range r.runs {
		if r.runs[i] != other.runs[i] {
			return false
		}
	}
	return true
}

// AttrAt returns the attribute of column.
func (r *AttrRow) AttrAt(column int) (TextAttribute, error) {
	if column < 0 || column >= r.width {
		return TextAttribute{}, outOfRange("attr at", column, r.width)
	}
	end := 0
	for _, run := range r.runs {
		end += run.Length
		if column < end {
			return run.Attr, nil
		}
	}
	// Unreachable while the run lengths sum to width.
	return TextAttribute{}, outOfRange("attr at", column, r.width)
}

// SetAttrRange applies attr to the columns [start, end).
func (r *AttrRow) SetAttrRange(start, end int, attr TextAttribute) error {
	if start < 0 || start > end || end > r.width {
		return fmt.Errorf("set attr range [%d,%d), width %d: %w", start, end, r.width, ErrOutOfRange)
	}
	if start == end {
		return nil
	}
	out := make([]AttrRun, 0, len(r.runs)+2)
	inserted := false
	pos := 0
	for _, run := range r.runs {
		runStart, runEnd := pos, pos+run.Length
		pos = runEnd
		if runStart < start {
			out = appendRun(out, AttrRun{Attr: run.Attr, Length: min(runEnd, start) - runStart})
		}
		if !inserted && runEnd > start {
			out = appendRun(out, AttrRun{Attr: attr, Length: end - start})
			inserted = true
		}
		if runEnd > end {
			out = appendRun(out, AttrRun{Attr: run.Attr, Length: runEnd - max(runStart, end)})
		}
	}
	r.runs = out
	return nil
}

// SetAttrToEnd applies attr from start through the last column.
func (r *AttrRow) SetAttrToEnd(start int, attr TextAttribute) error {
	return r.SetAttrRange(start, r.width, attr)
}

// ReplaceAttr changes every run carrying from to to.
func (r *AttrRow) ReplaceAttr(from, to TextAttribute) {
	if from == to {
		return
	}
	out := make([]AttrRun, 0, len(r.runs))
	for _, run := range r.runs {
		if run.Attr == from {
			run.Attr = to
		}
		out = appendRun(out, run)
	}
	r.runs = out
}

// UnpackInto expands the runs into buf, one attribute per column. len(buf)
// must equal Len().
func (r *AttrRow) UnpackInto(buf []TextAttribute) error {
	if len(buf) != r.width {
		return fmt.Errorf("unpack attrs: buffer %d, width %d: %w", len(buf), r.width, ErrInvalidArgument)
	}
	i := 0
	for _, run := range r.runs {
		for n := 0; n < run.Length; n++ {
			buf[i] = run.Attr
			i++
		}
	}
	return nil
}

// Resize changes the covered width from oldWidth to newWidth. Growth extends
// the last run so new columns inherit the rightmost attribute; shrinking
// truncates.
func (r *AttrRow) Resize(oldWidth, newWidth int) error {
	if err := checkWidth("resize attr row", newWidth); err != nil {
		return err
	}
	if oldWidth != r.width {
		return fmt.Errorf("resize attr row: old width %d, have %d: %w", oldWidth, r.width, ErrInvalidArgument)
	}
	switch {
	case newWidth > oldWidth:
		r.runs[len(r.runs)-1].Length += newWidth - oldWidth
	case newWidth < oldWidth:
		pos := 0
		for i := range r.runs {
			if pos+r.runs[i].Length >= newWidth {
				r.runs[i].Length = newWidth - pos
				r.runs = r.runs[:i+1]
				break
			}
			pos += r.runs[i].Length
		}
	}
	r.width = newWidth
	return nil
}

// Reset replaces all runs with a single run of attr.
func (r *AttrRow) Reset(attr TextAttribute) error {
	if r.width <= 0 {
		return fmt.Errorf("reset attr row: width %d: %w", r.width, ErrInvalidArgument)
	}
	r.runs = append(r.runs[:0], AttrRun{Attr: attr, Length: r.width})
	return nil
}

func appendRun(runs []AttrRun, run AttrRun) []AttrRun {
	if run.Length <= 0 {
		return runs
	}
	if n := len(runs); n > 0 && runs[n-1].Attr == run.Attr {
		runs[n-1].Length += run.Length
		return runs
	}
	return append(runs, run)
}
