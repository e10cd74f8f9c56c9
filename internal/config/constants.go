package config

import "time"

const (
	// EnvPrefix prefixes every environment override, e.g. VTROW_TERMINAL_COLS.
	EnvPrefix = "VTROW"
	// DefaultConfigDirName is the directory name under the home directory.
	DefaultConfigDirName = ".vtrow"
	// DefaultConfigFileName is the default config file name.
	DefaultConfigFileName = "config.yaml"
	// DefaultLogFileName is the default log file name.
	DefaultLogFileName = "vtrow.log"
	// DefaultRecordFileName is the default recording file name.
	DefaultRecordFileName = "session.vt"

	// DefaultTerminalCols is the default terminal columns.
	DefaultTerminalCols = 80
	// DefaultTerminalRows is the default terminal rows.
	DefaultTerminalRows = 24
	// DefaultTerminalTerm is the default TERM for recorded programs.
	DefaultTerminalTerm = "xterm-256color"

	// FormatText prints the screen as plain text.
	FormatText = "text"
	// FormatANSI prints the screen as ANSI escapes.
	FormatANSI = "ansi"
	// FormatJSON prints the screen as a JSON dump.
	FormatJSON = "json"
	// FormatWire prints the protobuf wire encoding.
	FormatWire = "wire"
	// DefaultReplayFormat is the default replay output format.
	DefaultReplayFormat = FormatText

	// DefaultRecordDuration bounds how long a program is recorded.
	DefaultRecordDuration = 2 * time.Second
)

// Formats lists the accepted replay formats.
var Formats = []string{FormatText, FormatANSI, FormatJSON, FormatWire}
