package main

import (
	"github.com/spf13/cobra"

	"pkt.systems/vtrow"
)

// rootFlags are shared by every subcommand.
type rootFlags struct {
	configFile string
	cols       int
	rows       int
	logFile    string
}

// NewRootCommand builds the root CLI command.
func NewRootCommand(loader *vtrow.Loader) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "vtrow",
		Short:         "Replay and record terminal byte streams on an emulated screen",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if flags.configFile != "" {
				loader.SetConfigFile(flags.configFile)
			}
		},
	}

	pflags := cmd.PersistentFlags()
	pflags.StringVar(&flags.configFile, "config", "", "config file path")
	pflags.IntVar(&flags.cols, "cols", vtrow.DefaultTerminalCols, "screen columns")
	pflags.IntVar(&flags.rows, "rows", vtrow.DefaultTerminalRows, "screen rows")
	pflags.StringVar(&flags.logFile, "log-file", "", "append logs to this file instead of stderr")

	cmd.AddCommand(NewReplayCommand(loader, flags))
	cmd.AddCommand(NewRecordCommand(loader, flags))
	cmd.AddCommand(NewBootstrapCommand())

	return cmd
}

// load reads the config and applies the persistent flags the user set.
func (f *rootFlags) load(cmd *cobra.Command, loader *vtrow.Loader) (vtrow.Config, error) {
	cfg, err := loader.Load()
	if err != nil {
		return vtrow.Config{}, err
	}
	if cmd.Flags().Changed("cols") {
		cfg.Terminal.Cols = f.cols
	}
	if cmd.Flags().Changed("rows") {
		cfg.Terminal.Rows = f.rows
	}
	if cmd.Flags().Changed("log-file") {
		cfg.Log.File = f.logFile
	}
	return cfg, cfg.Validate()
}
