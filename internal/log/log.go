//nolint:revive // Package name kept as "log" for stable internal imports.
package log

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

var (
	debugMode = false

	// Stdout and Stderr are the destinations for informational and error
	// lines. Tests swap them for buffers.
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// SetDebugMode enables or disables debug logging
func SetDebugMode(enabled bool) {
	debugMode = enabled
}

// DebugEnabled reports whether debug lines are printed
func DebugEnabled() bool {
	return debugMode
}

func emit(w io.Writer, prefix string, format string, elem ...any) {
	_, _ = fmt.Fprintln(w, prefix+fmt.Sprintf(format, elem...))
}

// Debug logs debug messages when debug mode is enabled
func Debug(format string, elem ...any) {
	if debugMode {
		emit(Stdout, color.CyanString("[DEBUG] "), format, elem...)
	}
}

// DebugH2 logs indented debug messages when debug mode is enabled
func DebugH2(format string, elem ...any) {
	if debugMode {
		emit(Stdout, color.CyanString("  [DEBUG] "), format, elem...)
	}
}

// Error logs an error message to stderr. Multi-line messages get the
// prefix on every line.
func Error(format string, elem ...any) {
	message := strings.TrimSpace(fmt.Sprintf(format, elem...))
	for _, line := range strings.Split(message, "\n") {
		_, _ = fmt.Fprintln(Stderr, color.RedString("[x] ")+line)
	}
}

// Info logs an informational message
func Info(format string, elem ...any) {
	emit(Stdout, color.BlueString("[x] "), format, elem...)
}

// InfoH2 logs an indented informational message
func InfoH2(format string, elem ...any) {
	emit(Stdout, color.GreenString("  [x] "), format, elem...)
}

// Warn logs a warning to stdout
func Warn(format string, elem ...any) {
	emit(Stdout, color.YellowString("[!] "), format, elem...)
}

// Success logs a completed write against the remote service
func Success(format string, elem ...any) {
	emit(Stdout, color.GreenString("[+] "), format, elem...)
}
