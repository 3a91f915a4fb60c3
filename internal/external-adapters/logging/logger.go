// Package logging adapts the structured log backend to the domain Logger port.
package logging

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/tur-wheels/wheeldex/internal/domain/interfaces"
)

// CharmLogger implements interfaces.Logger on top of charmbracelet/log
type CharmLogger struct {
	logger *log.Logger
}

// New creates a stderr logger. Verbose mode enables debug-level output.
func New(verbose bool) *CharmLogger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "wheeldex",
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return &CharmLogger{logger: logger}
}

// Debug logs debug-level messages
func (c *CharmLogger) Debug(msg string, fields ...interfaces.Field) {
	c.logger.Debug(msg, keyvals(fields)...)
}

// Info logs informational messages
func (c *CharmLogger) Info(msg string, fields ...interfaces.Field) {
	c.logger.Info(msg, keyvals(fields)...)
}

// Warn logs warning messages
func (c *CharmLogger) Warn(msg string, fields ...interfaces.Field) {
	c.logger.Warn(msg, keyvals(fields)...)
}

// Error logs error messages
func (c *CharmLogger) Error(msg string, fields ...interfaces.Field) {
	c.logger.Error(msg, keyvals(fields)...)
}

func keyvals(fields []interfaces.Field) []interface{} {
	out := make([]interface{}, 0, len(fields)*2)
	for _, f := range fields {
		out = append(out, f.Key, f.Value)
	}
	return out
}
