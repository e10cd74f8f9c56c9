// Package pty starts recorded programs on a pseudo terminal.
package pty

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/creack/pty"
)

// Start launches the command attached to a new PTY.
func Start(cmd *exec.Cmd) (*os.File, error) {
	return pty.Start(cmd)
}

// StartWithSize launches the command on a PTY that already has the given
// window size, so the program never observes a default 0x0 terminal.
func StartWithSize(cmd *exec.Cmd, cols, rows int) (*os.File, error) {
	if cols <= 0 || rows <= 0 {
		return Start(cmd)
	}
	f, err := pty.StartWithSize(cmd, winsize(cols, rows))
	if err != nil {
		return nil, fmt.Errorf("start %s: %w", cmd.Path, err)
	}
	return f, nil
}

// Resize updates the PTY window size. Non-positive sizes are ignored.
func Resize(ptyFile *os.File, cols, rows int) error {
	if ptyFile == nil || cols <= 0 || rows <= 0 {
		return nil
	}
	return pty.Setsize(ptyFile, winsize(cols, rows))
}

// Size reports the current PTY window size.
func Size(ptyFile *os.File) (cols, rows int, err error) {
	rows, cols, err = pty.Getsize(ptyFile)
	return cols, rows, err
}

func winsize(cols, rows int) *pty.Winsize {
	return &pty.Winsize{Cols: uint16(min(cols, 0xffff)), Rows: uint16(min(rows, 0xffff))}
}
