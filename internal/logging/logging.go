// ABOUTME: Logger construction shared by the CLI and tests.
// ABOUTME: Wraps charmbracelet/log with level parsing and a discard logger.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// DefaultLevel is used when no level is configured.
const DefaultLevel = "warn"

// New builds a leveled logger writing to w (stderr when nil).
func New(level string, w io.Writer) (*log.Logger, error) {
	if level == "" {
		level = DefaultLevel
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}
	if w == nil {
		w = os.Stderr
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Prefix:          "arista",
		ReportTimestamp: lvl <= log.DebugLevel,
	}), nil
}

// ValidLevel reports whether level parses as a log level.
func ValidLevel(level string) bool {
	_, err := log.ParseLevel(level)
	return err == nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
