package render

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"pkt.systems/vtrow/internal/terminal"
	"pkt.systems/vtrow/internal/textbuf"
)

var tcellModes = []struct {
	bit  int16
	attr tcell.AttrMask
}{
	{textbuf.ModeBold, tcell.AttrBold},
	{textbuf.ModeFaint, tcell.AttrDim},
	{textbuf.ModeItalic, tcell.AttrItalic},
	{textbuf.ModeUnderline, tcell.AttrUnderline},
	{textbuf.ModeBlink, tcell.AttrBlink},
	{textbuf.ModeInverse, tcell.AttrReverse},
	{textbuf.ModeStrike, tcell.AttrStrikeThrough},
}

// Paint draws the snapshot onto screen starting at the top-left corner,
// clipped to the screen size. It does not call Show.
func Paint(screen tcell.Screen, snap terminal.Snapshot) error {
	width, height := screen.Size()
	screen.Clear()
	for y, line := range snap.Lines {
		if y >= height {
			break
		}
		cells, err := line.AllCells()
		if err != nil {
			return fmt.Errorf("paint row %d: %w", y, err)
		}
		for x, cell := range cells {
			if x >= width {
				break
			}
			if cell.IsTrailing() {
				continue
			}
			r := []rune(cell.String())[0]
			if cell.TextAttr().Has(textbuf.ModeHidden) {
				r = ' '
			}
			screen.SetContent(x, y, r, nil, Style(cell.TextAttr()))
		}
	}
	if snap.CursorVisible && snap.Cursor.X < width && snap.Cursor.Y < height {
		screen.ShowCursor(snap.Cursor.X, snap.Cursor.Y)
	} else {
		screen.HideCursor()
	}
	return nil
}

// Style converts a text attribute to a tcell style.
func Style(attr textbuf.TextAttribute) tcell.Style {
	var mask tcell.AttrMask
	for _, m := range tcellModes {
		if attr.Mode&m.bit != 0 {
			mask |= m.attr
		}
	}
	return tcell.StyleDefault.Foreground(Color(attr.FG)).Background(Color(attr.BG)).Attributes(mask)
}

// Color converts a packed color to a tcell color.
func Color(c uint32) tcell.Color {
	raw := c & textbuf.ColorValueMask
	switch c & textbuf.ColorFlagMask {
	case textbuf.ColorIndexed, textbuf.ColorIndexed256:
		return tcell.PaletteColor(int(raw & 0xff))
	case textbuf.ColorTrue:
		return tcell.NewRGBColor(int32(raw>>16&0xff), int32(raw>>8&0xff), int32(raw&0xff))
	}
	return tcell.ColorDefault
}

// View paints snap on screen and blocks until the user presses q, Esc or
// Enter, or ctx is done. Resizes repaint. The caller owns Init and Fini.
func View(ctx context.Context, screen tcell.Screen, snap terminal.Snapshot) error {
	if err := Paint(screen, snap); err != nil {
		return err
	}
	screen.Show()

	stop := context.AfterFunc(ctx, func() {
		_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	defer stop()

	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventInterrupt:
			return ctx.Err()
		case *tcell.EventResize:
			if err := Paint(screen, snap); err != nil {
				return err
			}
			screen.Sync()
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyEnter, ev.Key() == tcell.KeyCtrlC:
				return nil
			case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
				return nil
			}
		}
	}
}
