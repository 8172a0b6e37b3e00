// Package logger appends timestamped entries to an application log file. The
// core only hands it (level, message) pairs; presentation and services stay
// free of formatting concerns.
package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Logger writes one line per entry: [timestamp] LEVEL - message.
type Logger struct {
	mu   sync.Mutex
	file *os.File
}

// Open creates the log directory when missing and opens the log file for
// appending.
func Open(path string) (*Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", path, err)
	}
	return &Logger{file: f}, nil
}

// Log appends one entry. A failed write is reported on stderr instead of
// failing the operation being logged.
func (l *Logger) Log(level, message string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	ts := time.Now().Format("2006-01-02 15:04:05")
	if _, err := fmt.Fprintf(l.file, "[%s] %s - %s\n", ts, level, message); err != nil {
		fmt.Fprintf(os.Stderr, "log write failed: %v\n", err)
	}
}

// Info logs at INFO level with fmt.Sprintf formatting.
func (l *Logger) Info(format string, args ...any) {
	l.Log("INFO", fmt.Sprintf(format, args...))
}

// Warn logs at WARNING level with fmt.Sprintf formatting.
func (l *Logger) Warn(format string, args ...any) {
	l.Log("WARNING", fmt.Sprintf(format, args...))
}

// Error logs at ERROR level with fmt.Sprintf formatting.
func (l *Logger) Error(format string, args ...any) {
	l.Log("ERROR", fmt.Sprintf(format, args...))
}

// Close releases the underlying file.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.file.Close()
}
