package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// newLogger opens the log file and returns a logger writing to it. The TUI
// owns the terminal, so logs never go to stdout. A file that cannot be
// opened silences logging instead of failing the command; an unknown level
// is an error.
func newLogger(path, level string) (*log.Logger, func() error, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}

	noop := func() error { return nil }
	if path == "" {
		return newFileLogger(io.Discard, lvl), noop, nil
	}

	path, err = expandHome(path)
	if err != nil {
		return newFileLogger(io.Discard, lvl), noop, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return newFileLogger(io.Discard, lvl), noop, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return newFileLogger(io.Discard, lvl), noop, nil
	}

	return newFileLogger(f, lvl), f.Close, nil
}

func newFileLogger(w io.Writer, lvl log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Level:           lvl,
		Prefix:          "battleship",
	})
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot get home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
