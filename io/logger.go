// Package cmdlineio provides the leveled diagnostic logger used by the
// command-line parser.
package cmdlineio

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// LogLevel represents the severity level of a log message
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarning
	LevelError
)

// String returns the string representation of the log level
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// LogFormat defines the output format for log messages
type LogFormat int

const (
	LogFormatTagged  LogFormat = iota // Default: [INFO] [WARN] [ERROR] [DEBUG]
	LogFormatSymbols                  // ● ◆ ▲ ✗
	LogFormatPlain                    // No prefix
)

// Logger writes leveled messages to a single writer.
type Logger struct {
	mu         sync.Mutex
	out        io.Writer
	format     LogFormat
	prefixes   map[LogLevel]string
	colors     map[LogLevel]*color.Color
	minLevel   LogLevel
	withTime   bool
	timeFormat string
}

// NewLogger creates a logger writing to w. Messages below LevelWarning are
// dropped until WithLevel lowers the threshold. When w is a file, prefixes
// are colored only if that file is a terminal.
func NewLogger(w io.Writer) *Logger {
	if w == nil {
		w = io.Discard
	}
	l := &Logger{
		out:        w,
		format:     LogFormatTagged,
		prefixes:   defaultTaggedPrefixes(),
		colors:     defaultColors(),
		minLevel:   LevelWarning,
		timeFormat: "15:04:05",
	}
	if f, ok := w.(*os.File); ok {
		l.WithColor(colorTerminal(f))
	}
	return l
}

// colorTerminal reports whether f should get colored output. fatih/color
// only inspects stdout, which says nothing about a redirected stderr.
func colorTerminal(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Discard returns a logger that drops every message.
func Discard() *Logger {
	return NewLogger(io.Discard).WithLevel(LevelError + 1)
}

func defaultTaggedPrefixes() map[LogLevel]string {
	return map[LogLevel]string{
		LevelDebug:   "[DEBUG]",
		LevelInfo:    "[INFO]",
		LevelWarning: "[WARN]",
		LevelError:   "[ERROR]",
	}
}

func defaultSymbolPrefixes() map[LogLevel]string {
	return map[LogLevel]string{
		LevelDebug:   "●", // U+25CF Black Circle
		LevelInfo:    "◆", // U+25C6 Black Diamond
		LevelWarning: "▲", // U+25B2 Black Up-Pointing Triangle
		LevelError:   "✗", // U+2717 Ballot X
	}
}

func defaultColors() map[LogLevel]*color.Color {
	return map[LogLevel]*color.Color{
		LevelDebug:   color.New(color.FgMagenta),
		LevelInfo:    color.New(color.FgBlue),
		LevelWarning: color.New(color.FgYellow),
		LevelError:   color.New(color.FgRed, color.Bold),
	}
}

// WithFormat sets the log format and returns the logger for chaining
func (l *Logger) WithFormat(format LogFormat) *Logger {
	l.format = format
	switch format {
	case LogFormatSymbols:
		l.prefixes = defaultSymbolPrefixes()
	case LogFormatPlain:
		l.prefixes = make(map[LogLevel]string)
	default:
		l.format = LogFormatTagged
		l.prefixes = defaultTaggedPrefixes()
	}
	return l
}

// WithLevel sets the minimum level that is written.
func (l *Logger) WithLevel(level LogLevel) *Logger {
	l.minLevel = level
	return l
}

// SetPrefix sets a custom prefix for a specific log level
func (l *Logger) SetPrefix(level LogLevel, prefix string) *Logger {
	l.prefixes[level] = prefix
	return l
}

// WithTimestamp enables or disables timestamp in log output
func (l *Logger) WithTimestamp(enabled bool) *Logger {
	l.withTime = enabled
	return l
}

// WithTimeFormat sets the time format (Go time format string)
func (l *Logger) WithTimeFormat(format string) *Logger {
	l.timeFormat = format
	return l
}

// WithColor forces colored prefixes on or off. Without it a file writer is
// checked by NewLogger and any other writer follows fatih/color, which
// checks NO_COLOR and whether stdout is a TTY.
func (l *Logger) WithColor(enabled bool) *Logger {
	for _, c := range l.colors {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return l
}

// Enabled reports whether messages at level are written.
func (l *Logger) Enabled(level LogLevel) bool {
	return level >= l.minLevel
}

// Log outputs a log message at the specified level
func (l *Logger) Log(level LogLevel, format string, args ...any) {
	if !l.Enabled(level) {
		return
	}
	output := l.formatMessage(level, fmt.Sprintf(format, args...))

	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.out, output)
}

func (l *Logger) formatMessage(level LogLevel, msg string) string {
	// Whitespace-only messages are written as-is
	if strings.TrimSpace(msg) == "" {
		return msg
	}

	var b strings.Builder
	if prefix := l.prefixes[level]; prefix != "" {
		b.WriteString(l.colorize(level, prefix))
		b.WriteByte(' ')
	}
	if l.withTime {
		b.WriteString(time.Now().Format(l.timeFormat))
		b.WriteByte(' ')
	}
	if l.format == LogFormatPlain {
		b.WriteString(l.colorize(level, msg))
	} else {
		b.WriteString(msg)
	}
	return b.String()
}

func (l *Logger) colorize(level LogLevel, text string) string {
	c, ok := l.colors[level]
	if !ok {
		return text
	}
	return c.Sprint(text)
}

// Debug logs a debug message
func (l *Logger) Debug(format string, args ...any) {
	l.Log(LevelDebug, format, args...)
}

// Info logs an informational message
func (l *Logger) Info(format string, args ...any) {
	l.Log(LevelInfo, format, args...)
}

// Warning logs a warning message
func (l *Logger) Warning(format string, args ...any) {
	l.Log(LevelWarning, format, args...)
}

// Error logs an error message
func (l *Logger) Error(format string, args ...any) {
	l.Log(LevelError, format, args...)
}
