package textbuf

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange reports a column or range beyond the current width.
	ErrOutOfRange = errors.New("textbuf: out of range")
	// ErrInvalidArgument reports a malformed width, buffer size or glyph.
	ErrInvalidArgument = errors.New("textbuf: invalid argument")
	// ErrAllocation is returned by CharRow implementations that cannot obtain
	// storage for a resize. The UCS2 row never returns it: widths are capped
	// at MaxWidth and a failed make is fatal rather than recoverable.
	ErrAllocation = errors.New("textbuf: allocation failure")
	// ErrEncodingMismatch is the panic value raised when a row is copied from a
	// char row whose encoding this package does not understand.
	ErrEncodingMismatch = errors.New("textbuf: encoding mismatch")
)

// MaxWidth bounds row widths. Terminal coordinates are 16-bit on the wire.
const MaxWidth = 1<<15 - 1

func outOfRange(op string, column, width int) error {
	return fmt.Errorf("%s: column %d, width %d: %w", op, column, width, ErrOutOfRange)
}

func checkWidth(op string, width int) error {
	if width <= 0 || width > MaxWidth {
		return fmt.Errorf("%s: width %d: %w", op, width, ErrInvalidArgument)
	}
	return nil
}
