// Package logging provides the leveled, optionally colored Logger used by
// every command, plus file-only loggers for per-command workspace logs.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/backmassage/labbench/internal/config"
	"github.com/backmassage/labbench/internal/term"
)

// Logger provides leveled, optionally colored logging with an optional file
// sink. A Logger with console disabled writes only to its file; workspace
// command logs (logs/train.log etc.) use that form.
type Logger struct {
	mu       sync.Mutex
	console  bool
	verbose  bool
	file     *os.File
	filePath string
}

// New creates the console logger. Colors are configured from cfg, and when
// cfg.LogFile is set every line is also appended there. Call Close when done
// if a log file was opened.
func New(cfg *config.Config) (*Logger, error) {
	term.Configure(cfg.ColorMode)
	l := &Logger{console: true, verbose: cfg.Verbose}
	if cfg.LogFile != "" {
		if err := l.openFile(cfg.LogFile); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// NewFileOnly creates a logger that appends to path and never writes to the
// console. Used for workspace per-command logs.
func NewFileOnly(path string) (*Logger, error) {
	l := &Logger{}
	if err := l.openFile(path); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *Logger) openFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	l.file = f
	l.filePath = path
	return nil
}

// Path returns the log file path, or "" for console-only loggers.
func (l *Logger) Path() string { return l.filePath }

// Close closes the log file if one was opened.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}

func (l *Logger) line(level, color, text string) {
	ts := time.Now().Format("2006-01-02 15:04:05")
	l.mu.Lock()
	defer l.mu.Unlock()
	plain := ts + " [" + level + "] " + text + "\n"
	if l.console {
		out := os.Stdout
		if level == "ERROR" {
			out = os.Stderr
		}
		if color != "" {
			_, _ = io.WriteString(out, ts+" "+color+"["+level+"]"+term.NC+" "+text+"\n")
		} else {
			_, _ = io.WriteString(out, plain)
		}
	}
	if l.file != nil {
		_, _ = io.WriteString(l.file, plain)
	}
}

// Info logs at INFO level (blue).
func (l *Logger) Info(format string, args ...interface{}) {
	l.line("INFO", term.Blue, fmt.Sprintf(format, args...))
}

// Success logs at SUCCESS level (green).
func (l *Logger) Success(format string, args ...interface{}) {
	l.line("SUCCESS", term.Green, fmt.Sprintf(format, args...))
}

// Warn logs at WARN level (yellow).
func (l *Logger) Warn(format string, args ...interface{}) {
	l.line("WARN", term.Yellow, fmt.Sprintf(format, args...))
}

// Error logs at ERROR level (red), also to stderr.
func (l *Logger) Error(format string, args ...interface{}) {
	l.line("ERROR", term.Red, fmt.Sprintf(format, args...))
}

// Debug logs at DEBUG level (cyan) only when the logger is verbose.
func (l *Logger) Debug(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.line("DEBUG", term.Cyan, fmt.Sprintf(format, args...))
}
