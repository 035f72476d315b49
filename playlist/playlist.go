// ABOUTME: Handles reading and writing M3U/M3U8 playlist files as raw lines
// ABOUTME: Reads preserve every line verbatim; writes mirror directories and never overwrite

// Package playlist handles M3U and M3U8 playlist files for batch migration.
// It reads playlists as ordered raw lines (directives, comments and blanks
// included), writes converted playlists into a mirrored output tree, and
// discovers playlist files under a library root.
package playlist

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
)

// DestExistsError indicates that a conversion target already exists.
// Output files are never overwritten; a stale output tree must be cleared
// by the operator before re-running.
type DestExistsError struct {
	Path string
}

func (e *DestExistsError) Error() string {
	return fmt.Sprintf("destination already exists, refusing to overwrite: %q", e.Path)
}

// ReadLines reads a playlist file as an ordered sequence of lines.
// Unlike a track-oriented reader, nothing is filtered: blank lines,
// #EXTM3U/#EXTINF directives and comments are all kept so the converted
// file reproduces the original structure.
func ReadLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open playlist: %w", err)
	}

	defer func() {
		_ = file.Close() // Explicitly ignore error for read-only file
	}()

	var lines []string

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading playlist: %w", err)
	}

	return lines, nil
}

// WriteLines writes a playlist to path, creating parent directories as
// needed. If path already exists the write is refused with *DestExistsError.
func WriteLines(path string, lines []string) (err error) {
	if _, statErr := os.Stat(path); statErr == nil {
		return &DestExistsError{Path: path}
	}

	if mkErr := os.MkdirAll(filepath.Dir(path), 0o755); mkErr != nil {
		return fmt.Errorf("failed to create output directory: %w", mkErr)
	}

	// O_EXCL keeps the no-overwrite guarantee even if the file appeared
	// between the stat above and the create
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return &DestExistsError{Path: path}
		}

		return fmt.Errorf("failed to create playlist: %w", err)
	}

	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close playlist file: %w", closeErr)
		}
	}()

	writer := bufio.NewWriter(file)
	for _, line := range lines {
		if _, err := writer.WriteString(line + "\n"); err != nil {
			return fmt.Errorf("failed to write line: %w", err)
		}
	}

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush writer: %w", err)
	}

	return nil
}
