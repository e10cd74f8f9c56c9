package main

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"pkt.systems/vtrow"
)

// NewRecordCommand builds the record command.
func NewRecordCommand(loader *vtrow.Loader, root *rootFlags) *cobra.Command {
	var duration time.Duration
	var out string
	var replayFormat string
	var termName string

	cmd := &cobra.Command{
		Use:   "record [flags] -- CMD [ARGS...]",
		Short: "Run a command on a PTY and record its output",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.load(cmd, loader)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("duration") {
				cfg.Record.Duration = duration
			}
			if cmd.Flags().Changed("out") {
				cfg.Record.Out = out
			}
			if cmd.Flags().Changed("term") {
				cfg.Terminal.Term = termName
			}
			logger, closer, err := commandLogger(cmd.Context(), cfg.Log.File, "record")
			if err != nil {
				return err
			}
			defer func() {
				_ = closer.Close()
			}()

			var output io.Writer = cmd.OutOrStdout()
			if cfg.Record.Out != "" && cfg.Record.Out != "-" {
				if err := os.MkdirAll(filepath.Dir(cfg.Record.Out), 0o700); err != nil {
					return err
				}
				file, err := os.OpenFile(cfg.Record.Out, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
				if err != nil {
					return err
				}
				defer func() {
					_ = file.Close()
				}()
				output = file
			}

			result, err := vtrow.Record(cmd.Context(), vtrow.RecordOptions{
				Command:  args,
				Cols:     cfg.Terminal.Cols,
				Rows:     cfg.Terminal.Rows,
				Term:     cfg.Terminal.Term,
				Duration: cfg.Record.Duration,
				Output:   output,
				Logger:   logger,
			})
			if err != nil {
				return err
			}
			logger.Info("recorded", "bytes", result.Bytes, "exit", result.ExitErr)
			if replayFormat == "" {
				return nil
			}
			return printSnapshot(cmd.OutOrStdout(), result.Snapshot, replayFormat)
		},
	}

	flags := cmd.Flags()
	flags.SetInterspersed(false)
	flags.DurationVarP(&duration, "duration", "d", vtrow.DefaultRecordDuration, "stop recording after this long")
	flags.StringVarP(&out, "out", "o", "", "write the raw stream to this file (default stdout)")
	flags.StringVar(&replayFormat, "replay", "", "print the final screen in this format after recording")
	flags.StringVar(&termName, "term", vtrow.DefaultTerminalTerm, "TERM for the recorded command")

	return cmd
}
