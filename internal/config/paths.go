package config

import (
	"os"
	"path/filepath"
)

// DefaultConfigDir returns the default vtrow config directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return DefaultConfigDirName
	}
	return filepath.Join(home, DefaultConfigDirName)
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), DefaultConfigFileName)
}

// DefaultLogPath returns the default log file path.
func DefaultLogPath() string {
	return filepath.Join(DefaultConfigDir(), DefaultLogFileName)
}

// DefaultRecordPath returns the default recording path.
func DefaultRecordPath() string {
	return filepath.Join(DefaultConfigDir(), DefaultRecordFileName)
}
