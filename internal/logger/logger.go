// Package logger provides shared charmbracelet/log defaults for all
// components.
package logger

import (
	"os"

	"github.com/charmbracelet/log"
)

// New creates a logger with the given component prefix that respects
// the global log level.
func New(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          prefix,
		ReportCaller:    false,
		ReportTimestamp: true,
		Formatter:       log.TextFormatter,
		Level:           log.GetLevel(),
	})
}
