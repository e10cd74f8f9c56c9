package vtrow

import (
	"context"
	"io"
	"time"

	"pkt.systems/pslog"
	"pkt.systems/vtrow/internal/capture"
)

// RecordOptions configures a recording.
type RecordOptions struct {
	Command  []string
	Cols     int
	Rows     int
	Term     string
	Duration time.Duration
	// Output receives the raw PTY output.
	Output io.Writer
	Logger pslog.Logger
}

// RecordResult describes a finished recording.
type RecordResult struct {
	// Snapshot is the screen as the program left it.
	Snapshot Snapshot
	Bytes    int64
	// ExitErr is the program's exit error, including a kill at the end of
	// the duration.
	ExitErr error
}

// Record runs a program on a PTY and records its output.
func Record(ctx context.Context, opts RecordOptions) (RecordResult, error) {
	r := capture.New(capture.Options{
		Command:  opts.Command,
		Cols:     opts.Cols,
		Rows:     opts.Rows,
		Term:     opts.Term,
		Duration: opts.Duration,
		Output:   opts.Output,
		Logger:   opts.Logger,
	})
	if err := r.Run(ctx); err != nil {
		return RecordResult{}, err
	}
	snap, err := r.Snapshot()
	if err != nil {
		return RecordResult{}, err
	}
	return RecordResult{Snapshot: snap, Bytes: r.Written(), ExitErr: r.ExitErr()}, nil
}
