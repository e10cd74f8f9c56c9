package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/spf13/viper"

	"pkt.systems/vtrow/internal/textbuf"
)

// Config is the root configuration for vtrow.
type Config struct {
	Terminal TerminalConfig `mapstructure:"terminal" yaml:"terminal"`
	Replay   ReplayConfig   `mapstructure:"replay" yaml:"replay"`
	Record   RecordConfig   `mapstructure:"record" yaml:"record"`
	Log      LogConfig      `mapstructure:"log" yaml:"log"`
}

// TerminalConfig sizes the emulated screen.
type TerminalConfig struct {
	Cols int    `mapstructure:"cols" yaml:"cols"`
	Rows int    `mapstructure:"rows" yaml:"rows"`
	Term string `mapstructure:"term" yaml:"term"`
}

// ReplayConfig configures replay output.
type ReplayConfig struct {
	Format string `mapstructure:"format" yaml:"format"`
}

// RecordConfig configures recording. An empty Out writes to stdout.
type RecordConfig struct {
	Duration time.Duration `mapstructure:"duration" yaml:"duration"`
	Out      string        `mapstructure:"out" yaml:"out"`
}

// LogConfig configures logging. An empty File logs to stderr.
type LogConfig struct {
	File string `mapstructure:"file" yaml:"file"`
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	if c.Terminal.Cols <= 0 || c.Terminal.Cols > textbuf.MaxWidth {
		return fmt.Errorf("terminal.cols %d out of range 1..%d", c.Terminal.Cols, textbuf.MaxWidth)
	}
	if c.Terminal.Rows <= 0 || c.Terminal.Rows > textbuf.MaxWidth {
		return fmt.Errorf("terminal.rows %d out of range 1..%d", c.Terminal.Rows, textbuf.MaxWidth)
	}
	if !slices.Contains(Formats, c.Replay.Format) {
		return fmt.Errorf("replay.format %q: want one of %s", c.Replay.Format, strings.Join(Formats, ", "))
	}
	if c.Record.Duration <= 0 {
		return fmt.Errorf("record.duration %s must be positive", c.Record.Duration)
	}
	return nil
}

// Loader wraps Viper configuration loading for vtrow.
type Loader struct {
	v          *viper.Viper
	configFile string
}

// NewLoader initializes a Loader with standard defaults.
func NewLoader() *Loader {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/vtrow")
	v.AddConfigPath("$HOME/" + DefaultConfigDirName)

	l := &Loader{v: v}
	l.SetDefaults()
	return l
}

// Viper exposes the underlying Viper instance for flag binding and defaults.
func (l *Loader) Viper() *viper.Viper {
	return l.v
}

// SetConfigFile sets an explicit config file path.
func (l *Loader) SetConfigFile(path string) {
	l.configFile = strings.TrimSpace(path)
}

// ReadInConfig reads configuration from file if available.
func (l *Loader) ReadInConfig() error {
	if l.configFile != "" {
		l.v.SetConfigFile(l.configFile)
	}

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}
	return nil
}

// Load reads configuration, unmarshals it into a Config struct and
// validates it.
func (l *Loader) Load() (Config, error) {
	if err := l.ReadInConfig(); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
