package logging

import (
	"fmt"
	"os"
)

// DebugEnabled returns true if debug mode is enabled via TRACKER_DEBUG environment variable
func DebugEnabled() bool {
	return os.Getenv("TRACKER_DEBUG") != ""
}

// Debugf prints a formatted debug message only if debug mode is enabled
func Debugf(format string, args ...interface{}) {
	if DebugEnabled() {
		fmt.Printf(format, args...)
	}
}

// Errorf prints a formatted message to stderr unconditionally.
// Used for fire-and-forget persistence failures that are reported but not retried.
func Errorf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
}
