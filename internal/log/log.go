package log

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
)

// Level selects the prefix and color of a message
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levels = map[Level]struct {
	prefix string
	attr   color.Attribute
}{
	LevelDebug: {"[DEBUG] ", color.FgHiBlack},
	LevelInfo:  {"", color.Reset},
	LevelWarn:  {"Warning: ", color.FgYellow},
	LevelError: {"Error: ", color.FgRed},
}

var (
	debugMode           = false
	output    io.Writer = os.Stderr
)

// SetDebugMode enables or disables debug mode
func SetDebugMode(enabled bool) {
	debugMode = enabled
}

// IsDebugMode returns whether debug mode is enabled
func IsDebugMode() bool {
	return debugMode
}

// SetOutput sets the output writer for log messages
func SetOutput(w io.Writer) {
	output = w
}

// logf writes one line at level. Debug lines are dropped unless debug mode is on.
func logf(level Level, attr color.Attribute, format string, args ...interface{}) {
	if level == LevelDebug && !debugMode {
		return
	}
	style := levels[level]
	if attr == color.Reset {
		attr = style.attr
	}
	_, _ = color.New(attr).Fprintf(output, style.prefix+format+"\n", args...)
}

// Debug prints debug messages (only in debug mode)
func Debug(format string, args ...interface{}) {
	logf(LevelDebug, color.Reset, format, args...)
}

// DebugConfig prints the configuration as indented JSON in debug mode
func DebugConfig(label string, config interface{}) {
	if !debugMode {
		return
	}
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		Debug("%s: (failed to serialize: %v)", label, err)
		return
	}
	Debug("%s:\n%s", label, data)
}

// DebugSuggestion logs which strategy produced a candidate message
func DebugSuggestion(strategy string, message string, repeated bool) {
	verb := "proposed"
	if repeated {
		verb = "repeated"
	}
	logf(LevelDebug, color.FgYellow, "Strategy %s %s: %s", strategy, verb, truncate(message, 120))
}

// DebugAnalysis logs the outcome of analysing a change set
func DebugAnalysis(files int, dominant string, added, removed int) {
	logf(LevelDebug, color.FgCyan, "Analyzed %d files: dominant=%s +%d -%d", files, dominant, added, removed)
}

// DebugDuration logs execution duration in debug mode
func DebugDuration(operation string, duration time.Duration) {
	logf(LevelDebug, color.FgBlue, "%s took %v", operation, duration)
}

// Info prints informational messages
func Info(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(output, format+"\n", args...)
}

// Warn prints warning messages
func Warn(format string, args ...interface{}) {
	logf(LevelWarn, color.Reset, format, args...)
}

// Error prints error messages
func Error(format string, args ...interface{}) {
	logf(LevelError, color.Reset, format, args...)
}

// truncate shortens s to maxLen runes
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen]) + "..."
}
