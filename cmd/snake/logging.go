package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/term-snake/config"
)

const (
	// maxLogSize is the size above which the previous log is rotated away on startup
	maxLogSize = 10 * 1024 * 1024

	rotatedSuffix = ".old"
)

// setupLogging opens the log file named by cfg and returns a logger writing to it.
// The terminal owns stdout and stderr, so the logger never writes there.
// The returned file is nil when logging is disabled and must be closed by the caller otherwise.
func setupLogging(cfg config.Config) (zerolog.Logger, *os.File, error) {
	if !cfg.LogEnabled {
		return zerolog.New(io.Discard), nil, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
		return zerolog.New(io.Discard), nil, fmt.Errorf("create log directory: %w", err)
	}

	// Rotate if the previous run left a large file
	if info, err := os.Stat(cfg.LogFile); err == nil && info.Size() > maxLogSize {
		if err := os.Rename(cfg.LogFile, cfg.LogFile+rotatedSuffix); err != nil {
			return zerolog.New(io.Discard), nil, fmt.Errorf("rotate log: %w", err)
		}
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.New(io.Discard), nil, fmt.Errorf("open log: %w", err)
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano
	logger := zerolog.New(f).Level(cfg.Level()).With().Timestamp().Logger()
	return logger, f, nil
}
