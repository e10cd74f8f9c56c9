package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"pkt.systems/prettyx"
	"pkt.systems/vtrow"
)

// NewReplayCommand builds the replay command.
func NewReplayCommand(loader *vtrow.Loader, root *rootFlags) *cobra.Command {
	var format string
	var view bool

	cmd := &cobra.Command{
		Use:   "replay FILE",
		Short: "Feed a recorded stream to the emulator and print the final screen",
		Long:  "Feed a recorded stream to the emulator and print the final screen. Use - to read stdin.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.load(cmd, loader)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("format") {
				cfg.Replay.Format = format
			}
			logger, closer, err := commandLogger(cmd.Context(), cfg.Log.File, "replay")
			if err != nil {
				return err
			}
			defer func() {
				_ = closer.Close()
			}()

			var input io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				file, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer func() {
					_ = file.Close()
				}()
				input = file
			}

			snap, err := vtrow.Replay(cmd.Context(), vtrow.ReplayOptions{
				Input:  input,
				Cols:   cfg.Terminal.Cols,
				Rows:   cfg.Terminal.Rows,
				Logger: logger,
			})
			if err != nil {
				return err
			}
			if view {
				return vtrow.View(cmd.Context(), snap)
			}
			return printSnapshot(cmd.OutOrStdout(), snap, cfg.Replay.Format)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&format, "format", "f", vtrow.FormatText, "output format: text, ansi, json or wire")
	flags.BoolVar(&view, "view", false, "show the screen full screen instead of printing it")

	return cmd
}

// printSnapshot writes snap in format, pretty printing JSON.
func printSnapshot(w io.Writer, snap vtrow.Snapshot, format string) error {
	if format != vtrow.FormatJSON {
		return vtrow.WriteSnapshot(w, snap, format)
	}
	var buf bytes.Buffer
	if err := vtrow.WriteSnapshot(&buf, snap, format); err != nil {
		return err
	}
	if err := prettyx.PrettyTo(w, bytes.TrimSpace(buf.Bytes()), prettyx.DefaultOptions); err != nil {
		return fmt.Errorf("pretty print: %w", err)
	}
	return nil
}
