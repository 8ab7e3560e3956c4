// Package tracelog provides the diagnostic trace: a text log appended to a
// file that is opened on first use.
//
// The trace is observational. Failing to open the file shows one warning via
// notify and silently drops every record afterwards.
package tracelog

import (
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/gogpu/d3d8/internal/notify"
)

// DefaultPath is the trace file used when none is configured.
const DefaultPath = "d3d8.log"

// Log is a lazily opened append-only trace file.
type Log struct {
	path     string
	notifier notify.Notifier

	once sync.Once
	mu   sync.Mutex
	f    *os.File
	err  error
}

// New returns a trace that appends to path. The file is not touched until
// the first record is written. A nil notifier uses notify.System().
func New(path string, n notify.Notifier) *Log {
	if path == "" {
		path = DefaultPath
	}
	if n == nil {
		n = notify.System()
	}
	return &Log{path: path, notifier: n}
}

// Logger returns a text logger writing to the trace at or above level.
func (l *Log) Logger(level slog.Leveler) *slog.Logger {
	return slog.New(slog.NewTextHandler(l, &slog.HandlerOptions{Level: level}))
}

// Path returns the trace file path.
func (l *Log) Path() string { return l.path }

// Err returns the error from opening the file, if the open was attempted and
// failed.
func (l *Log) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

// Write appends p to the trace file, opening it first if needed. It never
// fails: records are dropped when the file could not be opened.
func (l *Log) Write(p []byte) (int, error) {
	l.once.Do(l.open)

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.f == nil {
		return len(p), nil
	}
	_, _ = l.f.Write(p)
	return len(p), nil
}

// Close closes the trace file if it was opened.
func (l *Log) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.f == nil {
		return nil
	}
	err := l.f.Close()
	l.f = nil
	return err
}

func (l *Log) open() {
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)

	l.mu.Lock()
	l.f, l.err = f, err
	l.mu.Unlock()

	if err != nil {
		l.notifier.Warn("d3d8", fmt.Sprintf("Failed to open debug log file %q: %v", l.path, err))
	}
}
