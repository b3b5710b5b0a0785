// Package emoji provides the status symbols used in CLI output.
package emoji

// Status symbols.
const (
	// Success marks a completed action, such as a delivered signal.
	Success = "✓"

	// Error marks a failed action.
	Error = "✗"

	// Warning marks a non-fatal problem, such as an unavailable server status.
	Warning = "!"

	// Info marks plain information.
	Info = "i"
)
