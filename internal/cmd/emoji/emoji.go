// Package emoji provides symbol constants for CLI output.
// These symbols create a consistent visual language across commands.
package emoji

// Symbol constants for status lines printed by commands.
const (
	// Success represents successful completion of an operation.
	// Used for: server listening, clean shutdown.
	Success = "✓"

	// Error represents failures.
	// Used for: bind failures, unexpected serve errors.
	Error = "✗"

	// Stop represents graceful shutdowns.
	Stop = "■"

	// Info represents informational messages.
	// Used for: test mode notices, hints.
	Info = "i"
)
