// Package logger provides prefixed charmbracelet/log loggers used across
// the typeahead packages.
package logger

import (
	"os"

	"github.com/charmbracelet/log"
)

// Default creates a prefixed charm logger that respects the global level.
func Default(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          prefix,
		ReportCaller:    false,
		ReportTimestamp: false,
		Formatter:       log.TextFormatter,
		Level:           log.GetLevel(),
	})
}

// NewWithConfig creates a charm logger with explicit options.
func NewWithConfig(prefix string, level log.Level, caller bool, timestamp bool, fmt log.Formatter) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          prefix,
		Level:           level,
		ReportCaller:    caller,
		ReportTimestamp: timestamp,
		Formatter:       fmt,
	})
}
