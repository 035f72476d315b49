// ABOUTME: Base-path substitution for media file paths referenced by playlists
// ABOUTME: Matches old prefixes on segment boundaries and picks the unique existing replacement

// Package resolve implements the path rewriting engine for playlist migration.
// Given a media path recorded under an old library root, it substitutes each
// configured new root and selects the single candidate that exists on disk.
package resolve

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// NoMatchError indicates that a path could not be resolved: either no old
// prefix matched the path, or none of the substitution candidates exist.
type NoMatchError struct {
	Path       string
	Candidates []string // substitutions that were tried; empty when no old prefix matched
}

func (e *NoMatchError) Error() string {
	if len(e.Candidates) == 0 {
		return fmt.Sprintf("no configured old prefix matches %q", e.Path)
	}

	return fmt.Sprintf("no existing replacement found for %q (tried %s)", e.Path, quoteAll(e.Candidates))
}

// AmbiguousError indicates that two or more substitution candidates exist on
// disk, so the replacement cannot be chosen deterministically.
type AmbiguousError struct {
	Path       string
	Candidates []string // all existing candidates, in new-prefix order
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("multiple existing replacements for %q: %s", e.Path, quoteAll(e.Candidates))
}

// Resolver rewrites paths from a set of old base prefixes to the unique
// existing location under a set of new base prefixes. It is immutable after
// construction and performs only read-only existence checks.
type Resolver struct {
	oldPrefixes []string
	newPrefixes []string
}

// NewResolver builds a Resolver. Trailing separators on prefixes are
// normalized away so that "/music/" and "/music" behave identically.
func NewResolver(oldPrefixes, newPrefixes []string) *Resolver {
	return &Resolver{
		oldPrefixes: cleanAll(oldPrefixes),
		newPrefixes: cleanAll(newPrefixes),
	}
}

// Resolve maps path to its location under the new library roots.
// A path that already exists on disk is returned unchanged, so converted
// playlists resolve to themselves on a re-run. Otherwise it strips the first
// matching old prefix, appends the remaining suffix to every new prefix, and
// returns the single candidate that exists on disk. Zero existing candidates
// yield a *NoMatchError, two or more a *AmbiguousError.
func (r *Resolver) Resolve(path string) (string, error) {
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	suffix, ok := r.trimOldPrefix(path)
	if !ok {
		return "", &NoMatchError{Path: path}
	}

	tried := make([]string, 0, len(r.newPrefixes))

	var existing []string

	for _, prefix := range r.newPrefixes {
		candidate := filepath.Join(prefix, suffix)
		tried = append(tried, candidate)

		if _, err := os.Stat(candidate); err == nil {
			existing = append(existing, candidate)
		}
	}

	switch len(existing) {
	case 0:
		return "", &NoMatchError{Path: path, Candidates: tried}
	case 1:
		return existing[0], nil
	default:
		return "", &AmbiguousError{Path: path, Candidates: existing}
	}
}

// trimOldPrefix returns the path suffix relative to the first old prefix that
// matches on a whole path-segment boundary. A prefix like "/music" matches
// "/music/a.mp3" but never "/music2/a.mp3".
func (r *Resolver) trimOldPrefix(path string) (string, bool) {
	for _, prefix := range r.oldPrefixes {
		if path == prefix {
			return "", true
		}

		boundary := prefix
		if !strings.HasSuffix(boundary, string(filepath.Separator)) {
			boundary += string(filepath.Separator)
		}

		if strings.HasPrefix(path, boundary) {
			return path[len(boundary):], true
		}
	}

	return "", false
}

// cleanAll normalizes each prefix, dropping trailing separators
func cleanAll(prefixes []string) []string {
	cleaned := make([]string, len(prefixes))
	for i, p := range prefixes {
		cleaned[i] = filepath.Clean(p)
	}

	return cleaned
}

// quoteAll renders paths as a comma-separated list of quoted strings
func quoteAll(paths []string) string {
	quoted := make([]string, len(paths))
	for i, p := range paths {
		quoted[i] = fmt.Sprintf("%q", p)
	}

	return strings.Join(quoted, ", ")
}
