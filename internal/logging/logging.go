// Package logging builds the tagged logger every autocommit message goes
// through. The build system only ever sees these lines, never an exit code.
package logging

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Prefix tags every line so build logs can be grepped for the auto-commit step.
const Prefix = "autocommit"

// New returns a logger writing to w. verbose enables debug output.
func New(w io.Writer, verbose bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix:          Prefix,
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Level:           log.InfoLevel,
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Prefix: Prefix})
}
