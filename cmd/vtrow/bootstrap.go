package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pkt.systems/pslog"
	"pkt.systems/vtrow"
)

// NewBootstrapCommand builds the bootstrap command.
func NewBootstrapCommand() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "bootstrap",
		Short: "Write the default vtrow config",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := pslog.Ctx(cmd.Context()).With("component", "bootstrap")
			written, err := vtrow.Bootstrap(vtrow.DefaultConfig(), path, logger)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), written)
			return err
		},
	}

	cmd.Flags().StringVar(&path, "path", "", "config file to write (default "+vtrow.DefaultConfigPath()+")")

	return cmd
}
