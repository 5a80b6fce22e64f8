// Package errors holds the CLI-facing error presentation helpers. Domain
// packages return plain wrapped errors; only the entrypoint formats them
// for people.
package errors

import (
	"fmt"
	"os"

	"habitkeep/internal/logger"
)

// Format renders an error with the user-facing "Error: " prefix.
// A nil error renders as the empty string.
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Fatal logs the error, prints it to stderr, and exits with code 1.
// A nil error is a no-op so callers can pass results through unconditionally.
func Fatal(err error) {
	if err == nil {
		return
	}
	logger.Error("Command execution failed", "error", err)
	fmt.Fprintln(os.Stderr, Format(err))
	os.Exit(1)
}
