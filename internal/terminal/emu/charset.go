package emu

// charsetState tracks the G0/G1 designations and which of them is shifted in.
type charsetState struct {
	lineDrawing [2]bool
	shiftOut    bool
}

// designate handles ESC ( and ESC ). Only DEC special graphics ('0') and
// ASCII ('B') are distinguished.
func (c *charsetState) designate(target int, final byte) {
	if target < 0 || target > 1 {
		return
	}
	c.lineDrawing[target] = final == '0'
}

func (c *charsetState) translate(r rune) rune {
	g := 0
	if c.shiftOut {
		g = 1
	}
	if !c.lineDrawing[g] {
		return r
	}
	if mapped, ok := decSpecialGraphics[r]; ok {
		return mapped
	}
	return r
}

var decSpecialGraphics = map[rune]rune{
	'`': '◆',
	'a': '▒',
	'f': '°',
	'g': '±',
	'j': '┘',
	'k': '┐',
	'l': '┌',
	'm': '└',
	'n': '┼',
	'q': '─',
	't': '├',
	'u': '┤',
	'v': '┴',
	'w': '┬',
	'x': '│',
	'~': '·',
}
