// ABOUTME: Shared options and helpers for all modes (CLI, TUI, watch)
// ABOUTME: Provides debug logging setup and failure formatting used by every reporter

package main

import (
	"fmt"
	"log"
	"os"
)

var debugLog *log.Logger

// RunOptions contains command-line options for all modes
type RunOptions struct {
	ConfigPath string
	Visual     bool
	DryRun     bool
	Probe      bool
	Watch      bool
	DebugLog   bool
}

// SetupDebugLog initializes debug logging
func SetupDebugLog(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create debug log file: %w", err)
	}

	debugLog = log.New(f, "", log.Ltime|log.Lmicroseconds)

	return nil
}

// debugf logs debug messages if enabled
func debugf(format string, args ...interface{}) {
	if debugLog != nil {
		debugLog.Printf(format, args...)
	}
}

// formatReasons renders a file failure as one human-readable line per reason.
// Used by both the console reporter and the TUI adapter.
func formatReasons(failure FileFailure) []string {
	if failure.Err != nil {
		return []string{failure.Err.Error()}
	}

	reasons := make([]string, len(failure.Lines))
	for i, lf := range failure.Lines {
		reasons[i] = fmt.Sprintf("line %d: %v", lf.Line, lf.Err)
	}

	return reasons
}
