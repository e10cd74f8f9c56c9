package emu

import "pkt.systems/vtrow/internal/terminal"

func (e *Emulator) scrollUp(n int) {
	e.check("scroll up", e.scr.scrollUp(max(n, 1), e.blank()))
}

func (e *Emulator) scrollDown(n int) {
	e.check("scroll down", e.scr.scrollDown(max(n, 1), e.blank()))
}

func (e *Emulator) eraseDisplay(mode int) {
	y := e.scr.cursor.Y
	switch mode {
	case 0:
		e.eraseLine(0)
		for row := y + 1; row < e.rows; row++ {
			e.check("erase below", e.scr.clearLine(row, 0, e.cols-1, e.blank()))
		}
	case 1:
		for row := 0; row < y; row++ {
			e.check("erase above", e.scr.clearLine(row, 0, e.cols-1, e.blank()))
		}
		e.eraseLine(1)
	case 2, 3:
		e.check("erase display", e.scr.clearAll(e.blank()))
	}
}

func (e *Emulator) eraseLine(mode int) {
	x, y := e.scr.cursor.X, e.scr.cursor.Y
	switch mode {
	case 0:
		e.check("erase right", e.scr.clearLine(y, x, e.cols-1, e.blank()))
	case 1:
		e.check("erase left", e.scr.clearLine(y, 0, x, e.blank()))
	case 2:
		e.check("erase line", e.scr.clearLine(y, 0, e.cols-1, e.blank()))
	}
}

func (e *Emulator) eraseChars(n int) {
	x := e.scr.cursor.X
	e.check("erase chars", e.scr.clearLine(e.scr.cursor.Y, x, x+max(n, 1)-1, e.blank()))
}

func (e *Emulator) insertLines(n int) {
	e.check("insert lines", e.scr.insertLines(e.scr.cursor.Y, max(n, 1), e.blank()))
	e.scr.cursor.X = 0
	e.wrapPending = false
}

func (e *Emulator) deleteLines(n int) {
	e.check("delete lines", e.scr.deleteLines(e.scr.cursor.Y, max(n, 1), e.blank()))
	e.scr.cursor.X = 0
	e.wrapPending = false
}

func (e *Emulator) insertChars(n int) {
	e.check("insert chars", e.scr.insertChars(e.scr.cursor.Y, e.scr.cursor.X, max(n, 1), e.blank()))
}

func (e *Emulator) deleteChars(n int) {
	e.check("delete chars", e.scr.deleteChars(e.scr.cursor.Y, e.scr.cursor.X, max(n, 1), e.blank()))
}

func (e *Emulator) setScrollRegion(params []int) {
	top := max(param(params, 0, 1)-1, 0)
	bottom := min(param(params, 1, e.rows)-1, e.rows-1)
	if top >= bottom {
		top, bottom = 0, e.rows-1
	}
	e.scr.scrollTop = top
	e.scr.scrollBottom = bottom
	e.cursorPosition(1, 1)
}

func (e *Emulator) setMode(params []int, private, enable bool) {
	for _, p := range params {
		if private {
			switch p {
			case 6:
				e.originMode = enable
				e.cursorPosition(1, 1)
			case 7:
				e.wrapMode = enable
				if !enable {
					e.wrapPending = false
				}
			case 25:
				e.cursorVisible = enable
			case 47, 1047, 1049:
				e.setAltScreen(enable, p == 1049)
			}
			continue
		}
		switch p {
		case 4:
			e.insertMode = enable
		case 20:
			e.newLineMode = enable
		}
	}
}

func (e *Emulator) setAltScreen(enable, saveCursor bool) {
	onAlt := e.scr == &e.alt
	if enable == onAlt {
		return
	}
	if enable {
		if saveCursor {
			e.main.saveCursor()
		}
		e.check("clear alternate screen", e.alt.clearAll(e.blank()))
		e.scr = &e.alt
		e.scr.cursor = terminal.Cursor{}
	} else {
		e.scr = &e.main
		if saveCursor {
			e.main.restoreCursor()
		}
	}
	e.wrapPending = false
}
