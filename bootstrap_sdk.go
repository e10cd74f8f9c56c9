package vtrow

import (
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"pkt.systems/pslog"
)

// Bootstrap writes cfg as YAML to path, or to DefaultConfigPath when path is
// empty. It refuses to overwrite an existing file.
func Bootstrap(cfg Config, path string, logger pslog.Logger) (string, error) {
	if logger == nil {
		logger = pslog.LoggerFromEnv()
	}
	if err := cfg.Validate(); err != nil {
		return "", err
	}
	if path == "" {
		path = DefaultConfigPath()
	}
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("config already exists at %s", path)
	} else if !os.IsNotExist(err) {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	logger.Info("bootstrapped config", "path", path)
	return path, nil
}
