// ABOUTME: Adapters between the batch runner and the TUI
// ABOUTME: Forwards reporter callbacks into the TUI event channel and runs both sides

package main

import (
	"playlist-rebase/config"
	"playlist-rebase/tui"
)

// tuiReporter forwards batch events into the TUI's event channel.
// Sends are non-blocking so the batch never stalls if the user quits the
// TUI early; the authoritative counts come from the returned Summary.
type tuiReporter struct {
	events chan<- tui.Event
}

func (r *tuiReporter) send(event tui.Event) {
	select {
	case r.events <- event:
	default:
	}
}

func (r *tuiReporter) Processing(index, total int, sourcePath string) {
	r.send(tui.Event{Kind: tui.EventProcessing, Index: index, Total: total, Path: sourcePath})
}

func (r *tuiReporter) Completed(index int, destPath string) {
	r.send(tui.Event{Kind: tui.EventCompleted, Index: index, Path: destPath})
}

func (r *tuiReporter) Failed(index int, failure FileFailure) {
	r.send(tui.Event{Kind: tui.EventFailed, Index: index, Path: failure.Source, Reasons: formatReasons(failure)})
}

func (r *tuiReporter) Warning(index int, trackPath string, err error) {
	r.send(tui.Event{Kind: tui.EventWarning, Index: index, Path: trackPath, Reasons: []string{err.Error()}})
}

func (r *tuiReporter) Summary(converted, failed int) {
	r.send(tui.Event{Kind: tui.EventSummary, Converted: converted, Failed: failed})
}

// runVisual runs the batch in a goroutine and the TUI in the foreground
func runVisual(cfg config.Config, paths []string, opts RunOptions) (Summary, error) {
	events := make(chan tui.Event, 64)
	rep := &tuiReporter{events: events}

	var summary Summary

	done := make(chan struct{})

	go func() {
		summary = RunBatch(cfg, paths, rep, BatchOptions{DryRun: opts.DryRun, Probe: opts.Probe})
		close(events)
		close(done)
	}()

	err := tui.Run(tui.Options{Total: len(paths), DryRun: opts.DryRun}, events)

	<-done

	return summary, err
}
