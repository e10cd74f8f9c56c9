package main

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"pkt.systems/pslog"
)

// commandLogger returns the context logger, or a logger appending to path
// when a log file is configured. The closer is never nil.
func commandLogger(ctx context.Context, path, component string) (pslog.Logger, io.Closer, error) {
	if path == "" {
		return pslog.Ctx(ctx).With("component", component), io.NopCloser(nil), nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, nil, err
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, err
	}
	logger := pslog.LoggerFromEnv(pslog.WithEnvWriter(file)).With("component", component)
	return logger, file, nil
}
