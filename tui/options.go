// ABOUTME: TUI mode configuration and the event types it consumes
// ABOUTME: Events mirror batch reporter callbacks as data for rendering

package tui

// Options contains configuration for running the TUI
type Options struct {
	Total  int  // number of playlists in the batch
	DryRun bool // shown in the status bar; nothing is written in dry-run mode
}

// EventKind identifies which reporter callback an Event mirrors
type EventKind int

const (
	EventProcessing EventKind = iota
	EventCompleted
	EventFailed
	EventWarning
	EventSummary
)

// Event is one batch progress update. Path holds the source path for
// Processing, Failed and Warning events, and the destination path for
// Completed events.
type Event struct {
	Kind      EventKind
	Index     int
	Total     int
	Path      string
	Reasons   []string // failure reasons or warning text
	Converted int      // set on Summary
	Failed    int      // set on Summary
}
