package config

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// SetupLogging points the default logger at cfg.LogFile. The terminal belongs
// to the TUI, so logs never go to stderr. The returned closer releases the
// file; it is a no-op when logging is disabled.
func SetupLogging(cfg *Config) (io.Closer, error) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	log.SetLevel(level)
	log.SetReportTimestamp(true)
	log.SetPrefix("sailing-score")

	if cfg.LogFile == "" || cfg.LogFile == "-" {
		log.SetOutput(io.Discard)
		return io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	log.SetOutput(f)
	return f, nil
}
