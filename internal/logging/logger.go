// Package logging provides the leveled console logger used by the CLI.
package logging

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Level names a log line's severity.
type Level string

const (
	LevelInfo    Level = "INFO"
	LevelSuccess Level = "SUCCESS"
	LevelWarn    Level = "WARN"
	LevelError   Level = "ERROR"
	LevelDebug   Level = "DEBUG"
)

// Logger writes "[LEVEL] message" lines to a single writer. The level tag is
// styled only when the writer is a color capable terminal.
type Logger struct {
	mu      sync.Mutex
	out     io.Writer
	verbose bool
	styles  map[Level]lipgloss.Style
}

// New returns a Logger writing to out. Debug lines are dropped unless verbose.
func New(out io.Writer, verbose bool) *Logger {
	r := lipgloss.NewRenderer(out)
	tag := r.NewStyle().Bold(true)
	return &Logger{
		out:     out,
		verbose: verbose,
		styles: map[Level]lipgloss.Style{
			LevelInfo:    tag.Foreground(lipgloss.Color("12")),
			LevelSuccess: tag.Foreground(lipgloss.Color("10")),
			LevelWarn:    tag.Foreground(lipgloss.Color("11")),
			LevelError:   tag.Foreground(lipgloss.Color("9")),
			LevelDebug:   tag.Foreground(lipgloss.Color("14")),
		},
	}
}

func (l *Logger) line(level Level, text string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	tag := l.styles[level].Render("[" + string(level) + "]")
	_, _ = io.WriteString(l.out, tag+" "+text+"\n")
}

// Plain writes text without a level tag.
func (l *Logger) Plain(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = fmt.Fprintf(l.out, format+"\n", args...)
}

// Info logs at INFO level.
func (l *Logger) Info(format string, args ...any) {
	l.line(LevelInfo, fmt.Sprintf(format, args...))
}

// Success logs at SUCCESS level.
func (l *Logger) Success(format string, args ...any) {
	l.line(LevelSuccess, fmt.Sprintf(format, args...))
}

// Warn logs at WARN level.
func (l *Logger) Warn(format string, args ...any) {
	l.line(LevelWarn, fmt.Sprintf(format, args...))
}

// Error logs at ERROR level.
func (l *Logger) Error(format string, args ...any) {
	l.line(LevelError, fmt.Sprintf(format, args...))
}

// Debug logs at DEBUG level when the logger is verbose.
func (l *Logger) Debug(format string, args ...any) {
	if !l.verbose {
		return
	}
	l.line(LevelDebug, fmt.Sprintf(format, args...))
}
