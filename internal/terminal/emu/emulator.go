package emu

import (
	"fmt"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"pkt.systems/pslog"
	"pkt.systems/vtrow/internal/terminal"
	"pkt.systems/vtrow/internal/textbuf"
)

// Emulator is a VT-style terminal emulator whose screens are built from
// textbuf rows. It is not safe for concurrent use.
type Emulator struct {
	cols int
	rows int

	main screen
	alt  screen
	scr  *screen

	cursorVisible bool
	title         string

	wrapPending bool
	wrapMode    bool
	originMode  bool
	insertMode  bool
	newLineMode bool

	attr textbuf.TextAttribute

	parser parserState

	tabStops []bool
	charsets charsetState

	logger pslog.Logger
}

var _ terminal.Emulator = (*Emulator)(nil)

// Option configures an Emulator.
type Option func(*Emulator)

// WithLogger sets the logger used to report row operations that failed.
func WithLogger(logger pslog.Logger) Option {
	return func(e *Emulator) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New constructs an emulator of the given size. Non-positive dimensions
// select 80x24.
func New(cols, rows int, opts ...Option) (*Emulator, error) {
	cols, rows = normalizeSize(cols, rows)
	e := &Emulator{
		cols:          cols,
		rows:          rows,
		cursorVisible: true,
		wrapMode:      true,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = pslog.LoggerFromEnv()
	}
	var err error
	if e.main, err = newScreen(cols, rows, textbuf.DefaultAttribute); err != nil {
		return nil, fmt.Errorf("main screen: %w", err)
	}
	if e.alt, err = newScreen(cols, rows, textbuf.DefaultAttribute); err != nil {
		return nil, fmt.Errorf("alternate screen: %w", err)
	}
	e.scr = &e.main
	e.tabStops = defaultTabs(cols)
	e.resetAttributes()
	return e, nil
}

func normalizeSize(cols, rows int) (int, int) {
	if cols <= 0 {
		cols = 80
	}
	if rows <= 0 {
		rows = 24
	}
	return min(cols, textbuf.MaxWidth), min(rows, textbuf.MaxWidth)
}

// Write feeds terminal output into the emulator.
func (e *Emulator) Write(p []byte) error {
	for _, b := range p {
		e.consumeByte(b)
	}
	return nil
}

// Resize changes the emulator size. Existing rows are resized in place.
func (e *Emulator) Resize(cols, rows int) {
	if cols <= 0 || rows <= 0 {
		return
	}
	cols, rows = normalizeSize(cols, rows)
	e.check("resize main screen", e.main.resize(cols, rows, textbuf.DefaultAttribute))
	e.check("resize alternate screen", e.alt.resize(cols, rows, textbuf.DefaultAttribute))
	e.cols = cols
	e.rows = rows
	e.tabStops = defaultTabs(cols)
	e.wrapPending = false
}

// Snapshot captures the emulator state with deep copies of the visible rows.
func (e *Emulator) Snapshot() (terminal.Snapshot, error) {
	return terminal.Snapshot{
		Cols:          e.cols,
		Rows:          e.rows,
		Cursor:        e.scr.cursor,
		CursorVisible: e.cursorVisible,
		Mode:          e.modeFlags(),
		Title:         e.title,
		Lines:         e.scr.snapshot(),
	}, nil
}

func (e *Emulator) modeFlags() uint32 {
	var flags uint32
	if e.wrapMode {
		flags |= terminal.FlagWrap
	}
	if e.originMode {
		flags |= terminal.FlagOrigin
	}
	if e.insertMode {
		flags |= terminal.FlagInsert
	}
	if e.scr == &e.alt {
		flags |= terminal.FlagAltScreen
	}
	return flags
}

// check reports a row operation that failed. Coordinates are clamped before
// they reach the rows, so this only fires on allocation failure.
func (e *Emulator) check(op string, err error) {
	if err != nil {
		e.logger.Debug("row operation failed", "op", op, "err", err)
	}
}

func (e *Emulator) consumeByte(b byte) {
	switch e.parser.state {
	case stateGround:
		e.handleGround(b)
	case stateEscape:
		e.handleEscape(b)
	case stateCSI:
		e.handleCSIByte(b)
	case stateOSC:
		e.handleOSCByte(b)
	case stateString:
		e.handleStringByte(b)
	case stateCharset:
		e.charsets.designate(e.parser.charsetTarget, b)
		e.parser.state = stateGround
	default:
		e.parser.state = stateGround
	}
}

func (e *Emulator) handleGround(b byte) {
	switch {
	case b == 0x1b:
		e.parser.utf8Buf = e.parser.utf8Buf[:0]
		e.parser.state = stateEscape
	case b == 0x9b && len(e.parser.utf8Buf) == 0:
		e.parser.csi.reset()
		e.parser.state = stateCSI
	case b == 0x9d && len(e.parser.utf8Buf) == 0:
		e.parser.str.start(true)
		e.parser.state = stateOSC
	case b < 0x20 || b == 0x7f:
		e.handleControl(b)
	default:
		e.handlePrintableByte(b)
	}
}

func (e *Emulator) handleEscape(b byte) {
	e.parser.state = stateGround
	switch b {
	case '[':
		e.parser.csi.reset()
		e.parser.state = stateCSI
	case ']':
		e.parser.str.start(true)
		e.parser.state = stateOSC
	case 'P', 'X', '^', '_':
		e.parser.str.start(false)
		e.parser.state = stateString
	case '7':
		e.scr.saveCursor()
	case '8':
		e.scr.restoreCursor()
		e.wrapPending = false
	case 'D':
		e.index()
	case 'M':
		e.reverseIndex()
	case 'E':
		e.newLine(true)
	case 'c':
		e.reset()
	case 'H':
		e.setTabStop()
	case '(', ')':
		e.parser.charsetTarget = int(b - '(')
		e.parser.state = stateCharset
	}
}

func (e *Emulator) handleCSIByte(b byte) {
	switch {
	case b >= 0x40 && b <= 0x7e:
		params, private := e.parser.csi.finish()
		e.parser.state = stateGround
		e.handleCSI(b, params, private)
	case b == 0x1b:
		e.parser.state = stateEscape
	default:
		e.parser.csi.feed(b)
	}
}

func (e *Emulator) handleOSCByte(b byte) {
	if e.parser.str.feed(b) {
		e.parser.state = stateGround
		e.handleOSC()
	}
}

func (e *Emulator) handleStringByte(b byte) {
	if e.parser.str.feed(b) {
		e.parser.state = stateGround
	}
}

func (e *Emulator) handleOSC() {
	code, payload := parseOSC(e.parser.str.buf)
	if code == 0 || code == 2 {
		e.title = payload
	}
}

func (e *Emulator) handleControl(b byte) {
	switch b {
	case 0x08: // BS
		e.moveCursor(-1, 0)
	case 0x09: // HT
		e.tab()
	case 0x0a, 0x0b, 0x0c: // LF, VT, FF
		e.newLine(false)
	case 0x0d: // CR
		e.scr.cursor.X = 0
		e.wrapPending = false
	case 0x0e: // SO
		e.charsets.shiftOut = true
	case 0x0f: // SI
		e.charsets.shiftOut = false
	}
}

func (e *Emulator) handlePrintableByte(b byte) {
	if b < utf8.RuneSelf {
		e.printRune(rune(b))
		return
	}
	e.parser.utf8Buf = append(e.parser.utf8Buf, b)
	if !utf8.FullRune(e.parser.utf8Buf) {
		return
	}
	r, size := utf8.DecodeRune(e.parser.utf8Buf)
	e.parser.utf8Buf = e.parser.utf8Buf[:0]
	if r == utf8.RuneError && size == 1 {
		r = rune(b)
	}
	e.printRune(r)
}

func (e *Emulator) handleCSI(final byte, params []int, private bool) {
	switch final {
	case 'A':
		e.cursorUp(param(params, 0, 1))
	case 'B', 'e':
		e.cursorDown(param(params, 0, 1))
	case 'C', 'a':
		e.cursorForward(param(params, 0, 1))
	case 'D':
		e.cursorBackward(param(params, 0, 1))
	case 'E':
		e.cursorDown(param(params, 0, 1))
		e.scr.cursor.X = 0
	case 'F':
		e.cursorUp(param(params, 0, 1))
		e.scr.cursor.X = 0
	case 'G', '`':
		e.cursorHorizontal(param(params, 0, 1))
	case 'H', 'f':
		e.cursorPosition(param(params, 0, 1), param(params, 1, 1))
	case 'd':
		e.cursorPosition(param(params, 0, 1), e.scr.cursor.X+1)
	case 'J':
		e.eraseDisplay(param(params, 0, 0))
	case 'K':
		e.eraseLine(param(params, 0, 0))
	case 'L':
		e.insertLines(param(params, 0, 1))
	case 'M':
		e.deleteLines(param(params, 0, 1))
	case '@':
		e.insertChars(param(params, 0, 1))
	case 'P':
		e.deleteChars(param(params, 0, 1))
	case 'X':
		e.eraseChars(param(params, 0, 1))
	case 'S':
		e.scrollUp(param(params, 0, 1))
	case 'T':
		e.scrollDown(param(params, 0, 1))
	case 'm':
		if !private {
			e.selectGraphicRendition(params)
		}
	case 'r':
		e.setScrollRegion(params)
	case 's':
		e.scr.saveCursor()
	case 'u':
		e.scr.restoreCursor()
	case 'g':
		e.clearTabStops(param(params, 0, 0))
	case 'h':
		e.setMode(params, private, true)
	case 'l':
		e.setMode(params, private, false)
	}
}

// printRune writes r at the cursor. Runes outside the basic multilingual
// plane cannot be held in one UCS-2 cell and are stored as U+FFFD.
func (e *Emulator) printRune(r rune) {
	r = e.charsets.translate(r)
	if r > 0xffff {
		r = utf8.RuneError
	}
	width := runewidth.RuneWidth(r)
	if width <= 0 || width > e.cols {
		width = 1
	}

	if e.wrapPending {
		e.wrapPending = false
		e.autoWrap()
	}
	if width == 2 && e.scr.cursor.X == e.cols-1 {
		if e.wrapMode {
			e.padDoubleByte()
		} else {
			width = 1
		}
	}
	if e.insertMode {
		e.insertChars(width)
	}

	e.setCell(e.scr.cursor.X, e.scr.cursor.Y, r, width)

	e.scr.cursor.X += width
	if e.scr.cursor.X >= e.cols {
		e.scr.cursor.X = e.cols - 1
		e.wrapPending = e.wrapMode
	}
}

// autoWrap continues output on the next line and marks the current line as
// wrapped.
func (e *Emulator) autoWrap() {
	e.scr.lines[e.scr.cursor.Y].SetWrapForced(true)
	e.newLine(true)
}

// padDoubleByte leaves the last column blank because a wide glyph does not
// fit, then wraps.
func (e *Emulator) padDoubleByte() {
	line := e.scr.lines[e.scr.cursor.Y]
	e.check("pad double byte", line.ClearColumn(e.cols-1))
	e.check("pad double byte", line.SetAttrRange(e.cols-1, e.cols, e.attr))
	line.SetDoubleBytePadded(true)
	e.autoWrap()
}

func (e *Emulator) setCell(x, y int, r rune, width int) {
	if !e.scr.inBounds(x, y) {
		return
	}
	line := e.scr.lines[y]
	glyph := textbuf.GlyphFromRune(r)
	if width == 2 && x+1 < e.cols {
		e.check("write leading half", line.SetGlyph(x, glyph, textbuf.WidthLeading))
		e.check("write trailing half", line.SetGlyph(x+1, glyph, textbuf.WidthTrailing))
		e.check("write attributes", line.SetAttrRange(x, x+2, e.attr))
		return
	}
	e.check("write glyph", line.SetGlyph(x, glyph, textbuf.WidthSingle))
	e.check("write attributes", line.SetAttrRange(x, x+1, e.attr))
}

// blank is the attribute erased cells take: the current colors and
// rendition, as xterm does with back color erase.
func (e *Emulator) blank() textbuf.TextAttribute {
	return e.attr
}

func (e *Emulator) resetAttributes() {
	e.attr = textbuf.DefaultAttribute
}

func (e *Emulator) reset() {
	e.resetAttributes()
	e.wrapMode = true
	e.originMode = false
	e.insertMode = false
	e.newLineMode = false
	e.cursorVisible = true
	e.wrapPending = false
	e.title = ""
	e.charsets = charsetState{}
	e.check("reset main screen", e.main.clearAll(e.blank()))
	e.check("reset alternate screen", e.alt.clearAll(e.blank()))
	e.scr = &e.main
	e.scr.cursor = terminal.Cursor{}
	e.scr.scrollTop = 0
	e.scr.scrollBottom = e.rows - 1
	e.tabStops = defaultTabs(e.cols)
}

func param(params []int, idx, def int) int {
	if idx >= len(params) || params[idx] <= 0 {
		return def
	}
	return params[idx]
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
