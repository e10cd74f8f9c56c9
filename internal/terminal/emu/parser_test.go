package emu

import (
	"slices"
	"testing"
)

func TestCSIParamsFinish(t *testing.T) {
	cases := []struct {
		in      string
		params  []int
		private bool
	}{
		{"", []int{-1}, false},
		{"5", []int{5}, false},
		{"1;", []int{1, -1}, false},
		{";7", []int{-1, 7}, false},
		{"?25", []int{25}, true},
		{"3?", []int{3}, false},
		{"38:5:200", []int{38, 5, 200}, false},
		{"99999999999", []int{9999999}, false},
	}
	var c csiParams
	for _, tc := range cases {
		for i := 0; i < len(tc.in); i++ {
			c.feed(tc.in[i])
		}
		params, private := c.finish()
		if !slices.Equal(params, tc.params) || private != tc.private {
			t.Fatalf("%q: params %v private %v, want %v %v", tc.in, params, private, tc.params, tc.private)
		}
	}
}

func TestControlStringTerminators(t *testing.T) {
	var s controlString
	s.start(true)
	if done := feedAll(&s, "0;a\x1bxb"); done {
		t.Fatalf("OSC ended early")
	}
	if !s.feed(0x07) {
		t.Fatalf("BEL did not end OSC")
	}
	if got := string(s.buf); got != "0;a\x1bxb" {
		t.Fatalf("payload = %q", got)
	}

	s.start(false)
	if feedAll(&s, "q\x07data") {
		t.Fatalf("BEL ended a DCS body")
	}
	if !feedAll(&s, "\x1b\\") {
		t.Fatalf("ST did not end DCS body")
	}
	if len(s.buf) != 0 {
		t.Fatalf("DCS body kept: %q", s.buf)
	}
}

func TestSplitSequenceAcrossWrites(t *testing.T) {
	e := newEmu(t, 6, 1)
	for _, chunk := range []string{"\x1b", "[3", "1", "mr\x1b]0;ti", "t\x1b", "\\ok"} {
		write(t, e, chunk)
	}
	snap := snapshot(t, e)
	if snap.Title != "tit" {
		t.Fatalf("title = %q", snap.Title)
	}
	if got := rowString(snap, 0); got != "rok   " {
		t.Fatalf("row0 = %q", got)
	}
}

func feedAll(s *controlString, in string) bool {
	done := false
	for i := 0; i < len(in); i++ {
		done = s.feed(in[i])
	}
	return done
}
