// Package logger provides verbose logging for authorlist.
// When verbose mode is enabled via the --verbose flag, the pipeline stages
// report what they read, skipped and indexed. Logs go to stderr so that
// stdout carries nothing but the listing.
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
	output  io.Writer = os.Stderr
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for verbose logs.
// Defaults to os.Stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Section prints a stage header.
func Section(name string) {
	emit("\n=== %s ===\n", name)
}

// Debug prints per-line detail.
func Debug(format string, args ...any) {
	emit("[DEBUG] "+format+"\n", args...)
}

// Info prints a stage summary.
func Info(format string, args ...any) {
	emit("[INFO] "+format+"\n", args...)
}

// Warn prints a suspicious but non-fatal condition in the input.
func Warn(format string, args ...any) {
	emit("[WARN] "+format+"\n", args...)
}

func emit(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, format, args...)
	}
}
