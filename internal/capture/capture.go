// Package capture runs a program on a PTY, records its raw output and keeps
// an emulated screen of it up to date.
package capture

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"sync"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"pkt.systems/pslog"
	"pkt.systems/vtrow/internal/config"
	"pkt.systems/vtrow/internal/pty"
	"pkt.systems/vtrow/internal/terminal"
	"pkt.systems/vtrow/internal/terminal/emu"
)

// Options configures a recording.
type Options struct {
	// Command is the program and its arguments.
	Command []string
	// Cols and Rows size the PTY. Zero means the host terminal size, or the
	// configured defaults when there is no host terminal.
	Cols int
	Rows int
	// Term is exported as TERM to the program.
	Term string
	// Duration bounds the recording. The program is killed when it expires.
	Duration time.Duration
	// Output receives the raw PTY output. Nil discards it.
	Output io.Writer
	Logger pslog.Logger
	// OnRead observes every chunk read from the PTY. The slice is a copy.
	OnRead func([]byte)
}

// Recorder records one program run.
type Recorder struct {
	opts   Options
	logger pslog.Logger

	emulator terminal.Emulator
	emuMu    sync.Mutex

	written int64
	exitErr error
}

// New constructs a Recorder.
func New(opts Options) *Recorder {
	return &Recorder{opts: opts}
}

// Run starts the program and records until it exits, the duration expires or
// ctx is canceled. An expired duration is not an error.
func (r *Recorder) Run(ctx context.Context) error {
	if len(r.opts.Command) == 0 {
		return errors.New("capture: command is required")
	}
	if r.opts.Logger == nil {
		r.opts.Logger = pslog.LoggerFromEnv()
	}
	r.logger = r.opts.Logger.With("component", "capture")
	if r.opts.Cols <= 0 || r.opts.Rows <= 0 {
		cols, rows := HostSize(os.Stdout, os.Stdin)
		if cols > 0 && rows > 0 {
			r.opts.Cols, r.opts.Rows = cols, rows
		}
	}
	if r.opts.Cols <= 0 {
		r.opts.Cols = config.DefaultTerminalCols
	}
	if r.opts.Rows <= 0 {
		r.opts.Rows = config.DefaultTerminalRows
	}
	if r.opts.Term == "" {
		r.opts.Term = config.DefaultTerminalTerm
	}
	if r.opts.Duration <= 0 {
		r.opts.Duration = config.DefaultRecordDuration
	}
	if r.opts.Output == nil {
		r.opts.Output = io.Discard
	}

	emulator, err := emu.New(r.opts.Cols, r.opts.Rows, emu.WithLogger(r.logger.With("component", "emu")))
	if err != nil {
		return fmt.Errorf("capture: %w", err)
	}
	r.emuMu.Lock()
	r.emulator = emulator
	r.emuMu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, r.opts.Duration)
	defer cancel()

	cmd := exec.Command(r.opts.Command[0], r.opts.Command[1:]...)
	cmd.Env = append(os.Environ(),
		"TERM="+r.opts.Term,
		"COLUMNS="+strconv.Itoa(r.opts.Cols),
		"LINES="+strconv.Itoa(r.opts.Rows),
	)
	ptyFile, err := pty.StartWithSize(cmd, r.opts.Cols, r.opts.Rows)
	if err != nil {
		return fmt.Errorf("capture: %w", err)
	}
	defer func() {
		_ = ptyFile.Close()
	}()
	r.logger.Debug("recording", "cmd", r.opts.Command, "cols", r.opts.Cols, "rows", r.opts.Rows, "duration", r.opts.Duration)

	if err := setNonblock(ptyFile, true); err != nil {
		r.logger.Debug("set nonblock failed", "err", err)
	}

	exited := make(chan struct{})
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		r.exitErr = cmd.Wait()
		close(exited)
		if r.exitErr != nil {
			r.logger.Debug("program exited", "err", r.exitErr)
		}
		return nil
	})
	g.Go(func() error {
		select {
		case <-exited:
		case <-gctx.Done():
			if cmd.Process != nil {
				_ = cmd.Process.Kill()
			}
		}
		return nil
	})
	g.Go(func() error {
		return r.pump(gctx, ptyFile)
	})
	if err := g.Wait(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return nil
}

// pump copies PTY output to the emulator and to Output until EOF.
func (r *Recorder) pump(ctx context.Context, ptyFile *os.File) error {
	buf := make([]byte, 4096)
	for {
		n, err := readPTY(ctx, ptyFile, buf)
		if n > 0 {
			if err := r.consume(ctx, buf[:n]); err != nil {
				return err
			}
		}
		if err != nil {
			switch {
			case errors.Is(err, syscall.EAGAIN) || errors.Is(err, syscall.EWOULDBLOCK):
				time.Sleep(10 * time.Millisecond)
				continue
			case errors.Is(err, io.EOF) || errors.Is(err, syscall.EIO):
				// The slave side closed after the program exited.
				return nil
			case ctx.Err() != nil:
				return nil
			}
			r.logger.Debug("pty read error", "err", err)
			return fmt.Errorf("capture: read pty: %w", err)
		}
	}
}

func (r *Recorder) consume(ctx context.Context, data []byte) error {
	if r.opts.OnRead != nil {
		cp := make([]byte, len(data))
		copy(cp, data)
		r.opts.OnRead(cp)
	}
	r.emuMu.Lock()
	if err := r.emulator.Write(data); err != nil {
		r.logger.Debug("emulator write error", "err", err)
	}
	r.emuMu.Unlock()
	if err := writeAll(ctx, r.opts.Output, data); err != nil {
		return fmt.Errorf("capture: write output: %w", err)
	}
	r.written += int64(len(data))
	return nil
}

// Snapshot returns the emulated screen. It is safe to call while Run is in
// progress.
func (r *Recorder) Snapshot() (terminal.Snapshot, error) {
	r.emuMu.Lock()
	defer r.emuMu.Unlock()
	if r.emulator == nil {
		return terminal.Snapshot{}, errors.New("capture: not started")
	}
	return r.emulator.Snapshot()
}

// Written returns how many bytes were recorded. Call after Run returns.
func (r *Recorder) Written() int64 {
	return r.written
}

// ExitErr returns the program's exit error, nil on a clean exit. A program
// killed at the end of the duration reports the kill. Call after Run returns.
func (r *Recorder) ExitErr() error {
	return r.exitErr
}

// HostSize returns the size of the first terminal among files, falling back
// to the controlling terminal. It returns zeros when none is found.
func HostSize(files ...*os.File) (int, int) {
	for _, file := range files {
		if cols, rows := termSize(file); cols > 0 && rows > 0 {
			return cols, rows
		}
	}
	if tty, err := os.Open("/dev/tty"); err == nil {
		defer func() {
			_ = tty.Close()
		}()
		if cols, rows := termSize(tty); cols > 0 && rows > 0 {
			return cols, rows
		}
	}
	return 0, 0
}

func termSize(file *os.File) (int, int) {
	if file == nil || !term.IsTerminal(int(file.Fd())) {
		return 0, 0
	}
	cols, rows, err := term.GetSize(int(file.Fd()))
	if err != nil {
		return 0, 0
	}
	return cols, rows
}

func setNonblock(file *os.File, on bool) error {
	if file == nil {
		return nil
	}
	return unix.SetNonblock(int(file.Fd()), on)
}

func writeAll(ctx context.Context, w io.Writer, data []byte) error {
	for len(data) > 0 {
		if err := ctx.Err(); err != nil && !errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		n, err := w.Write(data)
		data = data[n:]
		if err != nil {
			if errors.Is(err, syscall.EAGAIN) || errors.Is(err, syscall.EWOULDBLOCK) {
				time.Sleep(5 * time.Millisecond)
				continue
			}
			return err
		}
		if n == 0 {
			time.Sleep(5 * time.Millisecond)
		}
	}
	return nil
}
