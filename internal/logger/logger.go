// Package logger is the pipeline's verbose stderr log. Nothing is
// written unless verbose mode is on, so batch runs stay silent behind
// the progress view by default.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	verbose bool
	out     io.Writer = os.Stderr
)

// SetVerbose toggles verbose mode. Wired to the --verbose flag.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// SetOutput redirects log output, primarily for tests. Defaults to
// os.Stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = w
}

func logf(level, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(out, "["+level+"] "+format+"\n", args...)
	}
}

// Debug logs pipeline internals: lookup queries, restyle decisions,
// reseed attempts.
func Debug(format string, args ...any) {
	logf("DEBUG", format, args...)
}

// Info logs row-level progress when the plain output path is active.
func Info(format string, args ...any) {
	logf("INFO", format, args...)
}

// Warn logs recoverable problems: skipped rows, failed validations,
// a history store that refuses writes.
func Warn(format string, args ...any) {
	logf("WARN", format, args...)
}

// Row logs a debug message scoped to one category row.
func Row(catid, format string, args ...any) {
	logf("DEBUG", "row %s: "+format, append([]any{catid}, args...)...)
}

// Section prints a header separating the phases of a run.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(out, "\n=== %s ===\n", name)
	}
}
