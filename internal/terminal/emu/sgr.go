package emu

import "pkt.systems/vtrow/internal/textbuf"

// sgrSet and sgrClear map SGR parameters to the mode bits they set or clear.
var (
	sgrSet = map[int]int16{
		1: textbuf.ModeBold,
		2: textbuf.ModeFaint,
		3: textbuf.ModeItalic,
		4: textbuf.ModeUnderline,
		5: textbuf.ModeBlink,
		7: textbuf.ModeInverse,
		8: textbuf.ModeHidden,
		9: textbuf.ModeStrike,
	}
	sgrClear = map[int]int16{
		22: textbuf.ModeBold | textbuf.ModeFaint,
		23: textbuf.ModeItalic,
		24: textbuf.ModeUnderline,
		25: textbuf.ModeBlink,
		27: textbuf.ModeInverse,
		28: textbuf.ModeHidden,
		29: textbuf.ModeStrike,
	}
)

func (e *Emulator) selectGraphicRendition(params []int) {
	if len(params) == 0 {
		params = []int{0}
	}
	for i := range params {
		if params[i] < 0 {
			params[i] = 0
		}
	}
	for i := 0; i < len(params); i++ {
		p := params[i]
		if bits, ok := sgrSet[p]; ok {
			e.attr.Mode |= bits
			continue
		}
		if bits, ok := sgrClear[p]; ok {
			e.attr.Mode &^= bits
			continue
		}
		switch {
		case p == 0:
			e.resetAttributes()
		case p == 39:
			e.attr.FG = textbuf.ColorDefault
		case p == 49:
			e.attr.BG = textbuf.ColorDefault
		case p >= 30 && p <= 37:
			e.attr.FG = textbuf.IndexedColor(uint8(p - 30))
		case p >= 40 && p <= 47:
			e.attr.BG = textbuf.IndexedColor(uint8(p - 40))
		case p >= 90 && p <= 97:
			e.attr.FG = textbuf.IndexedColor(uint8(p - 90 + 8))
		case p >= 100 && p <= 107:
			e.attr.BG = textbuf.IndexedColor(uint8(p - 100 + 8))
		case p == 38 || p == 48:
			color, used, ok := extendedColor(params[i+1:])
			i += used
			if !ok {
				continue
			}
			if p == 38 {
				e.attr.FG = color
			} else {
				e.attr.BG = color
			}
		}
	}
}

// extendedColor decodes the arguments following SGR 38 or 48 and reports how
// many parameters it consumed.
func extendedColor(args []int) (uint32, int, bool) {
	if len(args) == 0 {
		return 0, 0, false
	}
	switch args[0] {
	case 5:
		if len(args) < 2 {
			return 0, len(args), false
		}
		return textbuf.PaletteColor(uint8(args[1])), 2, true
	case 2:
		if len(args) < 4 {
			return 0, len(args), false
		}
		return textbuf.RGBColor(uint8(args[1]), uint8(args[2]), uint8(args[3])), 4, true
	}
	return 0, 1, false
}
