// Package logging builds the charmbracelet/log loggers shared by the CLI,
// the TUI host and the servers.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// DefaultPath is where play sessions log while the TUI owns the terminal.
const DefaultPath = "~/.tapball/tapball.log"

// New creates a logger with timestamps and the given prefix.
func New(w io.Writer, prefix string, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return New(io.Discard, "", log.FatalLevel)
}

// ParseLevel parses debug, info, warn or error. An empty string means info.
func ParseLevel(s string) (log.Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return log.InfoLevel, nil
	}
	lvl, err := log.ParseLevel(s)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("logging: %w", err)
	}
	return lvl, nil
}

// Open opens an append-only log file, creating parent directories.
// The returned closer closes the file.
func Open(path, prefix string, level log.Level) (*log.Logger, io.Closer, error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, nil, err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("logging: cannot create directory for %s: %w", path, err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //#nosec G304 -- user-selected log path
	if err != nil {
		return nil, nil, fmt.Errorf("logging: cannot open %s: %w", path, err)
	}

	return New(f, prefix, level), f, nil
}

func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("logging: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
