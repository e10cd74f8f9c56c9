package emu

import (
	"bytes"
	"strconv"
)

const (
	stateGround = iota
	stateEscape
	stateCSI
	stateOSC
	stateString
	stateCharset
)

// parserState is the escape sequence in progress. It survives across Write
// calls so a sequence may be split anywhere.
type parserState struct {
	state         int
	csi           csiParams
	str           controlString
	utf8Buf       []byte
	charsetTarget int
}

// maxParam caps a numeric parameter; larger values are clamped by the
// handlers anyway.
const maxParam = 1 << 20

// csiParams collects the parameter bytes of a CSI sequence.
type csiParams struct {
	private bool
	values  []int
	cur     int
	digits  bool // cur holds at least one digit
	started bool // a digit or separator was seen
}

func (c *csiParams) reset() {
	c.private = false
	c.values = c.values[:0]
	c.cur = 0
	c.digits = false
	c.started = false
}

// feed consumes one parameter or intermediate byte. A private marker only
// counts before the first parameter; intermediates are ignored.
func (c *csiParams) feed(b byte) {
	switch {
	case b >= '0' && b <= '9':
		c.started = true
		c.digits = true
		if c.cur < maxParam {
			c.cur = c.cur*10 + int(b-'0')
		}
	case b == ';' || b == ':':
		c.started = true
		c.close()
	case b >= '<' && b <= '?' && !c.started:
		c.private = true
	}
}

// close records the current parameter; an empty one is -1.
func (c *csiParams) close() {
	v := -1
	if c.digits {
		v = c.cur
	}
	c.values = append(c.values, v)
	c.cur = 0
	c.digits = false
}

// finish returns a copy of the parameters and whether the sequence was
// private, then resets. A sequence without parameters yields [-1].
func (c *csiParams) finish() ([]int, bool) {
	if c.digits || c.started || len(c.values) == 0 {
		c.close()
	}
	params := append([]int(nil), c.values...)
	private := c.private
	c.reset()
	return params, private
}

// controlString consumes an OSC payload or a DCS, SOS, PM or APC body up to
// its terminator. Only OSC payloads are kept.
type controlString struct {
	buf  []byte
	esc  bool
	keep bool
}

func (s *controlString) start(keep bool) {
	s.buf = s.buf[:0]
	s.esc = false
	s.keep = keep
}

// feed consumes b and reports whether the string ended. ST ends any string;
// BEL also ends an OSC.
func (s *controlString) feed(b byte) bool {
	if s.esc {
		s.esc = false
		if b == '\\' {
			return true
		}
		if s.keep {
			s.buf = append(s.buf, 0x1b, b)
		}
		return false
	}
	switch {
	case b == 0x1b:
		s.esc = true
	case b == 0x07 && s.keep:
		return true
	case s.keep:
		s.buf = append(s.buf, b)
	}
	return false
}

// parseOSC splits "code;payload". It returns -1 when the code is not numeric.
func parseOSC(buf []byte) (int, string) {
	codeBytes, payload, _ := bytes.Cut(buf, []byte{';'})
	code, err := strconv.Atoi(string(codeBytes))
	if err != nil {
		return -1, ""
	}
	return code, string(payload)
}
