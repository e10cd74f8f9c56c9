package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pkt.systems/pslog"
	"pkt.systems/vtrow"
)

func TestReplayCommandPrintsText(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "stream.vt")
	if err := os.WriteFile(path, []byte("hello\r\n\x1b[1mworld"), 0o600); err != nil {
		t.Fatalf("write stream: %v", err)
	}
	out, err := execute(t, "", "replay", "--cols", "10", "--rows", "3", path)
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if out != "hello\nworld\n" {
		t.Fatalf("output = %q", out)
	}
}

func TestReplayCommandReadsStdinAsJSON(t *testing.T) {
	isolate(t)
	out, err := execute(t, "ab", "replay", "--cols", "4", "--rows", "1", "--format", "json", "-")
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if !strings.Contains(out, `"text"`) || !strings.Contains(out, "ab  ") {
		t.Fatalf("output = %q", out)
	}
}

func TestReplayCommandRejectsBadFormat(t *testing.T) {
	isolate(t)
	if _, err := execute(t, "x", "replay", "--format", "html", "-"); err == nil {
		t.Fatalf("expected format error")
	}
}

func TestBootstrapCommandWritesConfig(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	out, err := execute(t, "", "bootstrap", "--path", path)
	if err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	if strings.TrimSpace(out) != path {
		t.Fatalf("output = %q, want %q", out, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	if !strings.Contains(string(data), "cols: 80") {
		t.Fatalf("config = %q", data)
	}
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand(vtrow.NewLoader())
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	logger := pslog.NewWithOptions(&bytes.Buffer{}, pslog.Options{
		Mode:             pslog.ModeStructured,
		DisableTimestamp: true,
		NoColor:          true,
	})
	err := root.ExecuteContext(pslog.ContextWithLogger(context.Background(), logger))
	return out.String(), err
}

// isolate keeps the user's config files and environment out of the test.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
}
