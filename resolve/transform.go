// ABOUTME: Transforms whole playlists by resolving every path-bearing line
// ABOUTME: All-or-nothing per playlist; directive and comment lines pass through verbatim

package resolve

import (
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// LineFailure records one path line that could not be resolved
type LineFailure struct {
	Line int    // 1-based line number in the playlist
	Path string // original path text from the playlist
	Err  error  // *NoMatchError or *AmbiguousError
}

// Transform resolves every path-bearing line of a playlist against r.
// Blank lines, #-directives (#EXTM3U, #EXTINF, comments) and non-absolute
// lines are copied through unchanged. If every path line resolves, the
// rewritten lines are returned in original order. If any line fails, no
// output is produced and all failures are returned for diagnostics: a
// playlist is converted completely or not at all.
func Transform(lines []string, r *Resolver) ([]string, []LineFailure) {
	out := make([]string, len(lines))

	var failures []LineFailure

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)

		if !isPathLine(trimmed) {
			out[i] = line

			continue
		}

		// iTunes exports decomposed accents; the library on disk uses
		// precomposed names, so normalize to NFC before matching
		resolved, err := r.Resolve(norm.NFC.String(trimmed))
		if err != nil {
			failures = append(failures, LineFailure{Line: i + 1, Path: trimmed, Err: err})

			continue
		}

		out[i] = resolved
	}

	if len(failures) > 0 {
		return nil, failures
	}

	return out, nil
}

// isPathLine reports whether a trimmed playlist line references a media file
// that should be rewritten. Relative paths are left alone (resolving them is
// out of scope), so only absolute non-comment lines qualify.
func isPathLine(trimmed string) bool {
	return trimmed != "" && !strings.HasPrefix(trimmed, "#") && filepath.IsAbs(trimmed)
}
