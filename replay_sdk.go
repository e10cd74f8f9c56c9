package vtrow

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/gdamore/tcell/v2"

	"pkt.systems/pslog"
	"pkt.systems/vtrow/internal/config"
	"pkt.systems/vtrow/internal/protocol"
	"pkt.systems/vtrow/internal/render"
	"pkt.systems/vtrow/internal/terminal"
	"pkt.systems/vtrow/internal/terminal/emu"
)

// Snapshot is a detached copy of an emulated screen.
type Snapshot = terminal.Snapshot

// ReplayOptions configures a replay.
type ReplayOptions struct {
	// Input is the recorded byte stream.
	Input io.Reader
	Cols  int
	Rows  int
	// ChunkSize bounds how many bytes are fed to the emulator per write.
	// Zero means 4096.
	ChunkSize int
	Logger    pslog.Logger
}

// Replay feeds Input to a fresh emulator and returns the final screen.
func Replay(ctx context.Context, opts ReplayOptions) (Snapshot, error) {
	if opts.Input == nil {
		return Snapshot{}, errors.New("replay: input is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = pslog.LoggerFromEnv()
	}
	if opts.ChunkSize <= 0 {
		opts.ChunkSize = 4096
	}
	e, err := emu.New(opts.Cols, opts.Rows, emu.WithLogger(logger.With("component", "emu")))
	if err != nil {
		return Snapshot{}, fmt.Errorf("replay: %w", err)
	}

	buf := make([]byte, opts.ChunkSize)
	var total int
	for {
		if err := ctx.Err(); err != nil {
			return Snapshot{}, err
		}
		n, err := opts.Input.Read(buf)
		if n > 0 {
			total += n
			if werr := e.Write(buf[:n]); werr != nil {
				logger.Debug("emulator write error", "err", werr)
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Snapshot{}, fmt.Errorf("replay: read input: %w", err)
		}
	}
	logger.Debug("replayed stream", "bytes", total)
	return e.Snapshot()
}

// WriteSnapshot writes snap to w in one of the replay formats.
func WriteSnapshot(w io.Writer, snap Snapshot, format string) error {
	switch format {
	case config.FormatText, "":
		_, err := io.WriteString(w, snap.Text()+"\n")
		return err
	case config.FormatANSI:
		if err := render.Snapshot(w, snap); err != nil {
			return err
		}
		_, err := io.WriteString(w, "\x1b[0m\r\n")
		return err
	case config.FormatJSON:
		data, err := protocol.MarshalSnapshotJSON(snap)
		if err != nil {
			return err
		}
		_, err = w.Write(append(data, '\n'))
		return err
	case config.FormatWire:
		data, err := protocol.EncodeSnapshot(snap)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	}
	return fmt.Errorf("unknown format %q", format)
}

// DecodeSnapshot parses the wire format written by WriteSnapshot.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	return protocol.DecodeSnapshot(data)
}

// View shows snap full screen on the host terminal until the user presses
// q, Esc or Enter.
func View(ctx context.Context, snap Snapshot) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	return render.View(ctx, screen, snap)
}
