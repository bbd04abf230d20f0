// Package logger builds the charmbracelet/log instances the CLI and server use.
package logger

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Default creates a prefixed logger on stderr that respects the global level.
// Server mode keeps stdout free for the IPC stream, so diagnostics always go
// to stderr.
func Default(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          prefix,
		ReportCaller:    false,
		ReportTimestamp: false,
		Formatter:       log.TextFormatter,
		Level:           log.GetLevel(),
	})
}

// Interactive creates the logger the CLI session prints through: stdout,
// no prefix, no timestamps.
func Interactive() *log.Logger {
	return log.NewWithOptions(os.Stdout, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Formatter:       log.TextFormatter,
		Level:           log.GetLevel(),
	})
}

// New creates a logger with explicit options, for tests and one-offs.
func New(w io.Writer, prefix string, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix: prefix,
		Level:  level,
	})
}
