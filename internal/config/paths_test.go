package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultPaths(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	expectedDir := filepath.Join(home, DefaultConfigDirName)
	if got := DefaultConfigDir(); got != expectedDir {
		t.Fatalf("DefaultConfigDir() = %q, want %q", got, expectedDir)
	}

	expectedConfig := filepath.Join(expectedDir, DefaultConfigFileName)
	if got := DefaultConfigPath(); got != expectedConfig {
		t.Fatalf("DefaultConfigPath() = %q, want %q", got, expectedConfig)
	}

	expectedLog := filepath.Join(expectedDir, DefaultLogFileName)
	if got := DefaultLogPath(); got != expectedLog {
		t.Fatalf("DefaultLogPath() = %q, want %q", got, expectedLog)
	}

	expectedRecord := filepath.Join(expectedDir, DefaultRecordFileName)
	if got := DefaultRecordPath(); got != expectedRecord {
		t.Fatalf("DefaultRecordPath() = %q, want %q", got, expectedRecord)
	}
}
