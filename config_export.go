package vtrow

import "pkt.systems/vtrow/internal/config"

// Config mirrors the vtrow configuration.
type Config = config.Config

// TerminalConfig sizes the emulated screen.
type TerminalConfig = config.TerminalConfig

// ReplayConfig configures replay output.
type ReplayConfig = config.ReplayConfig

// RecordConfig configures recording.
type RecordConfig = config.RecordConfig

// LogConfig configures logging.
type LogConfig = config.LogConfig

// Loader wraps configuration loading via Viper.
type Loader = config.Loader

const (
	// EnvPrefix prefixes environment overrides.
	EnvPrefix = config.EnvPrefix
	// DefaultConfigDirName is the directory name under the home directory.
	DefaultConfigDirName = config.DefaultConfigDirName
	// DefaultConfigFileName is the default config file name.
	DefaultConfigFileName = config.DefaultConfigFileName
	// DefaultLogFileName is the default log file name.
	DefaultLogFileName = config.DefaultLogFileName

	// DefaultTerminalCols is the default terminal column count.
	DefaultTerminalCols = config.DefaultTerminalCols
	// DefaultTerminalRows is the default terminal row count.
	DefaultTerminalRows = config.DefaultTerminalRows
	// DefaultTerminalTerm is the default TERM for recorded programs.
	DefaultTerminalTerm = config.DefaultTerminalTerm
	// DefaultRecordDuration bounds a recording.
	DefaultRecordDuration = config.DefaultRecordDuration

	// FormatText prints the screen as plain text.
	FormatText = config.FormatText
	// FormatANSI prints the screen as ANSI escapes.
	FormatANSI = config.FormatANSI
	// FormatJSON prints the screen as a JSON dump.
	FormatJSON = config.FormatJSON
	// FormatWire prints the protobuf wire encoding.
	FormatWire = config.FormatWire
)

// NewLoader returns a config loader with defaults wired.
func NewLoader() *config.Loader {
	return config.NewLoader()
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return config.DefaultConfig()
}

// DefaultConfigDir returns the default config directory.
func DefaultConfigDir() string {
	return config.DefaultConfigDir()
}

// DefaultConfigPath returns the default config path.
func DefaultConfigPath() string {
	return config.DefaultConfigPath()
}

// DefaultLogPath returns the default log path.
func DefaultLogPath() string {
	return config.DefaultLogPath()
}
