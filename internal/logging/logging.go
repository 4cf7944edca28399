// Package logging creates the file logger used while the terminal is
// owned by the game.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-miner/internal/config"
)

// DefaultPath is where interactive runs write their log.
const DefaultPath = "~/.miner/miner.log"

// New creates a logger writing to w at the given level.
func New(w io.Writer, prefix string, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
}

// Open creates a logger appending to the file at path. An empty path
// discards all output. The returned closer releases the file.
func Open(path, level string) (*log.Logger, io.Closer, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: %w", err)
	}

	if path == "" {
		return New(io.Discard, "miner", lvl), nopCloser{}, nil
	}

	path, err = config.ExpandHome(path)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("logging: cannot create directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: cannot open %s: %w", path, err)
	}
	return New(f, "miner", lvl), f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
