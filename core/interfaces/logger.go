// ABOUTME: Logger interface defines the contract for logging operations
// ABOUTME: Provides structured logging with different severity levels

package interfaces

// Logger defines the interface for logging operations
type Logger interface {
	// Debug logs a debug message with optional fields
	Debug(msg string, fields map[string]interface{})

	// Info logs an info message with optional fields
	Info(msg string, fields map[string]interface{})

	// Warn logs a warning message with optional fields
	Warn(msg string, fields map[string]interface{})

	// Error logs an error message with optional fields
	Error(msg string, fields map[string]interface{})
}
