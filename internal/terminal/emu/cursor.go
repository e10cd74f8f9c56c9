package emu

func (e *Emulator) cursorPosition(row, col int) {
	y := max(row, 1) - 1
	if e.originMode {
		y += e.scr.scrollTop
		y = min(y, e.scr.scrollBottom)
	}
	e.scr.cursor.X = clamp(col-1, 0, e.cols-1)
	e.scr.cursor.Y = clamp(y, 0, e.rows-1)
	e.wrapPending = false
}

func (e *Emulator) cursorHorizontal(col int) {
	e.scr.cursor.X = clamp(col-1, 0, e.cols-1)
	e.wrapPending = false
}

func (e *Emulator) cursorUp(n int) {
	top := 0
	if e.originMode || e.scr.cursor.Y >= e.scr.scrollTop {
		top = e.scr.scrollTop
	}
	e.scr.cursor.Y = max(e.scr.cursor.Y-max(n, 1), top)
	e.wrapPending = false
}

func (e *Emulator) cursorDown(n int) {
	bottom := e.rows - 1
	if e.originMode || e.scr.cursor.Y <= e.scr.scrollBottom {
		bottom = e.scr.scrollBottom
	}
	e.scr.cursor.Y = min(e.scr.cursor.Y+max(n, 1), bottom)
	e.wrapPending = false
}

func (e *Emulator) cursorForward(n int) {
	e.scr.cursor.X = min(e.scr.cursor.X+max(n, 1), e.cols-1)
	e.wrapPending = false
}

func (e *Emulator) cursorBackward(n int) {
	e.scr.cursor.X = max(e.scr.cursor.X-max(n, 1), 0)
	e.wrapPending = false
}

func (e *Emulator) moveCursor(dx, dy int) {
	e.scr.cursor.X = clamp(e.scr.cursor.X+dx, 0, e.cols-1)
	e.scr.cursor.Y = clamp(e.scr.cursor.Y+dy, 0, e.rows-1)
	e.wrapPending = false
}

// newLine moves to the next line, scrolling the region when the cursor sits
// on its bottom margin.
func (e *Emulator) newLine(withCR bool) {
	if withCR || e.newLineMode {
		e.scr.cursor.X = 0
	}
	switch {
	case e.scr.cursor.Y == e.scr.scrollBottom:
		e.scrollUp(1)
	case e.scr.cursor.Y < e.rows-1:
		e.scr.cursor.Y++
	}
	e.wrapPending = false
}

func (e *Emulator) index() {
	e.newLine(false)
}

func (e *Emulator) reverseIndex() {
	if e.scr.cursor.Y == e.scr.scrollTop {
		e.scrollDown(1)
	} else if e.scr.cursor.Y > 0 {
		e.scr.cursor.Y--
	}
	e.wrapPending = false
}

func (e *Emulator) setTabStop() {
	if x := e.scr.cursor.X; x >= 0 && x < len(e.tabStops) {
		e.tabStops[x] = true
	}
}

func (e *Emulator) clearTabStops(mode int) {
	switch mode {
	case 0:
		if x := e.scr.cursor.X; x >= 0 && x < len(e.tabStops) {
			e.tabStops[x] = false
		}
	case 3:
		e.tabStops = make([]bool, e.cols)
	}
}

func (e *Emulator) tab() {
	next := e.cols - 1
	for x := e.scr.cursor.X + 1; x < len(e.tabStops); x++ {
		if e.tabStops[x] {
			next = x
			break
		}
	}
	e.scr.cursor.X = next
	e.wrapPending = false
}

func defaultTabs(cols int) []bool {
	stops := make([]bool, cols)
	for x := 0; x < cols; x += 8 {
		stops[x] = true
	}
	return stops
}
