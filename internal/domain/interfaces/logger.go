// Package interfaces defines core domain contracts.
//
//nolint:revive // Package name 'interfaces' is intentional for domain layer
package interfaces

// Logger is the structured diagnostics port. Every component reports through
// it rather than printing, so the backend stays swappable.
type Logger interface {
	// Debug logs high-volume detail useful only when tracing a run
	Debug(msg string, fields ...Field)

	// Info logs normal progress messages
	Info(msg string, fields ...Field)

	// Warn logs recoverable problems, such as a skipped asset or link
	Warn(msg string, fields ...Field)

	// Error logs failures that end the run or drop output
	Error(msg string, fields ...Field)
}

// Field is one key/value pair attached to a log message
type Field struct {
	Key   string
	Value interface{}
}

// F builds a Field without the struct-literal noise at call sites
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// NoOpLogger discards everything; tests use it to silence components
type NoOpLogger struct{}

// Debug discards the message
func (n *NoOpLogger) Debug(_ string, _ ...Field) {}

// Info discards the message
func (n *NoOpLogger) Info(_ string, _ ...Field) {}

// Warn discards the message
func (n *NoOpLogger) Warn(_ string, _ ...Field) {}

// Error discards the message
func (n *NoOpLogger) Error(_ string, _ ...Field) {}
