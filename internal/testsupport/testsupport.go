// Package testsupport provides shared fixtures for vidvault tests: temp-dir
// configs, capture loggers, and library file seeding.
package testsupport

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"vidvault/internal/config"
	"vidvault/internal/logging"
)

// NopLogger returns a logger that discards output, for tests that do not
// assert on logs.
func NopLogger() *slog.Logger {
	return logging.NewNop()
}

// NewConfig produces a config seeded with unique temp paths per test.
func NewConfig(t testing.TB) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.LibraryFile = filepath.Join(base, "videos.json")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	return &cfg
}

// CaptureLogger returns a debug-level logger whose output accumulates in the
// returned buffer, for asserting on emitted events.
func CaptureLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	handler := slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(handler), buf
}

// WriteLibrary seeds a library file with raw content.
func WriteLibrary(t testing.TB, path string, content []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("create library directory: %v", err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write library file: %v", err)
	}
}
