// ABOUTME: Batch runner that converts discovered playlists one by one
// ABOUTME: Emits structured progress events and aggregates per-file outcomes into a summary

package main

import (
	"fmt"
	"path/filepath"

	"playlist-rebase/config"
	"playlist-rebase/playlist"
	"playlist-rebase/resolve"
)

// Reporter receives structured progress events from a batch run.
// Events carry data, not formatted strings; rendering is up to the
// implementation (console, TUI).
type Reporter interface {
	Processing(index, total int, sourcePath string)
	Completed(index int, destPath string)
	Failed(index int, failure FileFailure)
	Warning(index int, trackPath string, err error)
	Summary(converted, failed int)
}

// FileFailure describes why one playlist could not be converted.
// Either Err is set (read or write problem) or Lines lists the path lines
// that failed to resolve, never both.
type FileFailure struct {
	Source string
	Err    error
	Lines  []resolve.LineFailure
}

// Summary aggregates the outcome of a whole batch run
type Summary struct {
	Converted int
	Failed    int
	Failures  []FileFailure
}

// BatchOptions carries the per-run switches that alter conversion behavior
type BatchOptions struct {
	DryRun bool // resolve and report, but write nothing
	Probe  bool // read tags of every resolved track, warn on unreadable audio
}

// RunBatch converts every playlist in paths, in order, writing successful
// conversions into the mirrored output tree. A single playlist failing never
// stops the batch; failures are recorded and reported at the end.
func RunBatch(cfg config.Config, paths []string, rep Reporter, opts BatchOptions) Summary {
	resolver := resolve.NewResolver(cfg.OldPrefixes, cfg.NewPrefixes)

	var summary Summary

	total := len(paths)

	for i, src := range paths {
		index := i + 1
		rep.Processing(index, total, src)

		failure := convertPlaylist(cfg, resolver, src, index, rep, opts)
		if failure != nil {
			summary.Failed++
			summary.Failures = append(summary.Failures, *failure)
			rep.Failed(index, *failure)

			continue
		}

		summary.Converted++
	}

	rep.Summary(summary.Converted, summary.Failed)

	return summary
}

// convertPlaylist runs the read, transform, write pipeline for one playlist.
// Returns nil on success, or the failure to record.
func convertPlaylist(cfg config.Config, resolver *resolve.Resolver, src string, index int, rep Reporter, opts BatchOptions) *FileFailure {
	lines, err := playlist.ReadLines(src)
	if err != nil {
		return &FileFailure{Source: src, Err: err}
	}

	converted, lineFailures := resolve.Transform(lines, resolver)
	if lineFailures != nil {
		return &FileFailure{Source: src, Lines: lineFailures}
	}

	dest, err := destPath(cfg, src)
	if err != nil {
		return &FileFailure{Source: src, Err: err}
	}

	if opts.Probe {
		probeTracks(converted, index, rep)
	}

	if !opts.DryRun {
		if err := playlist.WriteLines(dest, converted); err != nil {
			return &FileFailure{Source: src, Err: err}
		}
	}

	rep.Completed(index, dest)

	return nil
}

// destPath mirrors the playlist's location under the input tree into the
// output tree, preserving the relative subpath
func destPath(cfg config.Config, src string) (string, error) {
	rel, err := filepath.Rel(cfg.InputDir, src)
	if err != nil {
		return "", fmt.Errorf("failed to compute mirrored path for %q: %w", src, err)
	}

	return filepath.Join(cfg.OutputDir, rel), nil
}

// probeTracks reads the tags of every resolved track line and reports
// unreadable audio as warnings. A bad probe never fails the conversion.
func probeTracks(lines []string, index int, rep Reporter) {
	for _, line := range lines {
		if line == "" || line[0] == '#' || !filepath.IsAbs(line) {
			continue
		}

		if err := playlist.ProbeAudio(line); err != nil {
			rep.Warning(index, line, err)
		}
	}
}
