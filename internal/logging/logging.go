// Package logging holds the process-wide structured logger.
package logging

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

var (
	once      sync.Once
	singleton *log.Logger
	runID     = uuid.NewString()
)

func get() *log.Logger {
	once.Do(func() {
		singleton = newLogger(os.Stderr)
	})
	return singleton
}

func newLogger(w io.Writer) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportCaller:    true,
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Prefix:          "brush " + runID[:8],
	})
	l.SetLevel(log.InfoLevel)
	return l
}

// RunID identifies this process in log output.
func RunID() string { return runID }

// SetLevel parses a level name ("debug", "info", "warn", "error") and applies it.
func SetLevel(name string) error {
	lvl, err := log.ParseLevel(name)
	if err != nil {
		return err
	}
	get().SetLevel(lvl)
	return nil
}

// SetOutput redirects log output, mainly for tests.
func SetOutput(w io.Writer) {
	get().SetOutput(w)
}

// Debug logs at debug level; args follow fmt.Sprintf.
func Debug(msg string, args ...interface{}) {
	l := get()
	l.Helper()
	l.Debugf(msg, args...)
}

// Info logs at info level.
func Info(msg string, args ...interface{}) {
	l := get()
	l.Helper()
	l.Infof(msg, args...)
}

// Warn logs at warn level.
func Warn(msg string, args ...interface{}) {
	l := get()
	l.Helper()
	l.Warnf(msg, args...)
}

// Error logs at error level.
func Error(msg string, args ...interface{}) {
	l := get()
	l.Helper()
	l.Errorf(msg, args...)
}

// Fatal logs and exits the process with status 1.
func Fatal(msg string, args ...interface{}) {
	l := get()
	l.Helper()
	l.Fatalf(msg, args...)
}
