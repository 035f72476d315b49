// ABOUTME: Watch mode that keeps converting playlists as they appear
// ABOUTME: Monitors the input tree with fsnotify and converts new or changed files

package main

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"playlist-rebase/config"
	"playlist-rebase/playlist"
	"playlist-rebase/resolve"
)

const (
	// Skip duplicate Create+Write event pairs for the same file
	watchDebounce = 500 * time.Millisecond

	// Wait for atomic writes to complete before reading
	watchSettleDelay = 100 * time.Millisecond
)

// RunWatch watches the input tree and converts playlists as they are created
// or modified, until ctx is cancelled. Newly created subdirectories are added
// to the watch set so nested playlists are picked up too. The returned
// Summary covers every conversion attempted during the watch, so failures
// reach the process exit status.
func RunWatch(ctx context.Context, cfg config.Config, rep Reporter, opts BatchOptions) (Summary, error) {
	var summary Summary

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return summary, fmt.Errorf("failed to create file watcher: %w", err)
	}

	defer func() { _ = watcher.Close() }()

	dirs, err := watchDirs(cfg.InputDir)
	if err != nil {
		return summary, err
	}

	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return summary, fmt.Errorf("failed to watch %q: %w", dir, err)
		}
	}

	resolver := resolve.NewResolver(cfg.OldPrefixes, cfg.NewPrefixes)
	lastSeen := make(map[string]time.Time)

	var index int

	for {
		select {
		case <-ctx.Done():
			rep.Summary(summary.Converted, summary.Failed)

			return summary, nil

		case event, ok := <-watcher.Events:
			if !ok {
				return summary, nil
			}

			if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}

			info, err := os.Stat(event.Name)
			if err != nil {
				continue
			}

			if info.IsDir() {
				if event.Op&fsnotify.Create != 0 {
					if err := watcher.Add(event.Name); err != nil {
						debugf("[WATCHER] Failed to watch new directory %q: %v", event.Name, err)
					}
				}

				continue
			}

			if !playlist.IsPlaylistPath(event.Name) {
				continue
			}

			if last, seen := lastSeen[event.Name]; seen && time.Since(last) < watchDebounce {
				continue
			}

			lastSeen[event.Name] = time.Now()

			time.Sleep(watchSettleDelay)

			index++
			rep.Processing(index, index, event.Name)

			if failure := convertPlaylist(cfg, resolver, event.Name, index, rep, opts); failure != nil {
				summary.Failed++
				summary.Failures = append(summary.Failures, *failure)
				rep.Failed(index, *failure)

				continue
			}

			summary.Converted++

		case err, ok := <-watcher.Errors:
			if !ok {
				return summary, nil
			}

			debugf("[WATCHER] Error: %v", err)
		}
	}
}

// watchDirs collects every directory under root, root included
func watchDirs(root string) ([]string, error) {
	var dirs []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			dirs = append(dirs, path)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect watch directories: %w", err)
	}

	return dirs, nil
}
