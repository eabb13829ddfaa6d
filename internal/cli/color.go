// Package cli holds terminal presentation helpers for the swan command.
package cli

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// ANSI reset code, shared across the package.
const reset = "\033[0m"

const (
	red    = "\033[31m"
	green  = "\033[32m"
	yellow = "\033[33m"
	cyan   = "\033[36m"
	dim    = "\033[2m"
)

// ColorEnabled controls whether ANSI color codes are emitted.
// It defaults to true if stdout is a terminal and NO_COLOR is not set.
var ColorEnabled = initColorEnabled()

func initColorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Success formats a message with a green check prefix.
func Success(msg string) string {
	if ColorEnabled {
		return fmt.Sprintf("%s✓ %s%s", green, msg, reset)
	}
	return "✓ " + msg
}

// Error formats a message with a red cross prefix.
func Error(msg string) string {
	if ColorEnabled {
		return fmt.Sprintf("%s✗ %s%s", red, msg, reset)
	}
	return "✗ " + msg
}

// Warn formats a message with a yellow warning prefix.
func Warn(msg string) string {
	if ColorEnabled {
		return fmt.Sprintf("%s⚠ %s%s", yellow, msg, reset)
	}
	return "⚠ " + msg
}

// Info formats a message in cyan with no prefix.
func Info(msg string) string {
	if ColorEnabled {
		return fmt.Sprintf("%s%s%s", cyan, msg, reset)
	}
	return msg
}

// Dim formats secondary text such as suggestion lines.
func Dim(msg string) string {
	if ColorEnabled {
		return fmt.Sprintf("%s%s%s", dim, msg, reset)
	}
	return msg
}
