// ABOUTME: Logger construction from the log section of the config.
// ABOUTME: Diagnostics only; user-facing messages are written to the console.

package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/harper/commentbox/internal/config"
)

// New builds a logger writing to cfg.File, or stderr when it is empty.
// The returned close function releases the log file.
func New(cfg config.LogConfig) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("parse log level: %w", err)
	}

	var w io.Writer = os.Stderr
	closeFn := func() error { return nil }
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600) //nolint:gosec // User-configured log path is expected
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          "commentbox",
		ReportTimestamp: true,
	})
	return logger, closeFn, nil
}
