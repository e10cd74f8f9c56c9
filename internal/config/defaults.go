package config

// DefaultConfig returns the default configuration values.
func DefaultConfig() Config {
	return Config{
		Terminal: TerminalConfig{
			Cols: DefaultTerminalCols,
			Rows: DefaultTerminalRows,
			Term: DefaultTerminalTerm,
		},
		Replay: ReplayConfig{
			Format: DefaultReplayFormat,
		},
		Record: RecordConfig{
			Duration: DefaultRecordDuration,
		},
		Log: LogConfig{},
	}
}

// SetDefaults registers DefaultConfig with v so unset keys resolve to it.
func (l *Loader) SetDefaults() {
	d := DefaultConfig()
	l.v.SetDefault("terminal.cols", d.Terminal.Cols)
	l.v.SetDefault("terminal.rows", d.Terminal.Rows)
	l.v.SetDefault("terminal.term", d.Terminal.Term)
	l.v.SetDefault("replay.format", d.Replay.Format)
	l.v.SetDefault("record.duration", d.Record.Duration)
	l.v.SetDefault("record.out", d.Record.Out)
	l.v.SetDefault("log.file", d.Log.File)
}
