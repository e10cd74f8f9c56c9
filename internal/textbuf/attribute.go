package textbuf

import (
	"strconv"
	"strings"
)

// TextAttribute is the rendition applied to a column independent of its glyph.
// It is comparable; run coalescing relies on ==.
type TextAttribute struct {
	Mode int16
	FG   uint32
	BG   uint32
}

// Rendition mode flags.
const (
	ModeBold      int16 = 1 << 0
	ModeFaint     int16 = 1 << 1
	ModeItalic    int16 = 1 << 2
	ModeUnderline int16 = 1 << 3
	ModeBlink     int16 = 1 << 4
	ModeInverse   int16 = 1 << 5
	ModeHidden    int16 = 1 << 6
	ModeStrike    int16 = 1 << 7
)

// Color encoding flags. The high byte selects the color model, the low three
// bytes carry the palette index or packed RGB. ColorIndexed holds the 16 ANSI
// colors set with SGR 30-37/90-97, ColorIndexed256 an explicit 38;5;n
// selection.
const (
	ColorDefault    uint32 = 0
	ColorIndexed    uint32 = 1 << 24
	ColorTrue       uint32 = 2 << 24
	ColorIndexed256 uint32 = 3 << 24
	ColorFlagMask   uint32 = 0xff000000
	ColorValueMask  uint32 = 0x00ffffff
)

// DefaultAttribute is the rendition of a freshly erased cell.
var DefaultAttribute = TextAttribute{}

// IndexedColor encodes one of the 16 ANSI palette entries.
func IndexedColor(idx uint8) uint32 {
	return ColorIndexed | uint32(idx&0x0f)
}

// PaletteColor encodes an explicit 256-color palette entry.
func PaletteColor(idx uint8) uint32 {
	return ColorIndexed256 | uint32(idx)
}

// RGBColor encodes a 24-bit color.
func RGBColor(r, g, b uint8) uint32 {
	return ColorTrue | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// Has reports whether all bits of mode are set.
func (a TextAttribute) Has(mode int16) bool {
	return a.Mode&mode == mode
}

// With returns a copy with the mode bits set.
func (a TextAttribute) With(mode int16) TextAttribute {
	a.Mode |= mode
	return a
}

// IsDefault reports whether the attribute equals DefaultAttribute.
func (a TextAttribute) IsDefault() bool {
	return a == DefaultAttribute
}

// String returns a compact human-readable form, e.g. "bold|underline fg=idx:1 bg=default".
func (a TextAttribute) String() string {
	var parts []string
	names := []struct {
		bit  int16
		name string
	}{
		{ModeBold, "bold"},
		{ModeFaint, "faint"},
		{ModeItalic, "italic"},
		{ModeUnderline, "underline"},
		{ModeBlink, "blink"},
		{ModeInverse, "inverse"},
		{ModeHidden, "hidden"},
		{ModeStrike, "strike"},
	}
	for _, n := range names {
		if a.Mode&n.bit != 0 {
			parts = append(parts, n.name)
		}
	}
	mode := "none"
	if len(parts) > 0 {
		mode = strings.Join(parts, "|")
	}
	return mode + " fg=" + colorString(a.FG) + " bg=" + colorString(a.BG)
}

func colorString(c uint32) string {
	switch c & ColorFlagMask {
	case ColorIndexed:
		return "idx:" + strconv.FormatUint(uint64(c&ColorValueMask), 10)
	case ColorIndexed256:
		return "256:" + strconv.FormatUint(uint64(c&ColorValueMask), 10)
	case ColorTrue:
		return "#" + strconv.FormatUint(uint64(c&ColorValueMask)|1<<24, 16)[1:]
	}
	if c == ColorDefault {
		return "default"
	}
	return "0x" + strconv.FormatUint(uint64(c), 16)
}
