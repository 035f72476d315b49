// ABOUTME: Optional sanity probe for resolved track files
// ABOUTME: Opens an audio file and reads its metadata tags to confirm it is real audio

package playlist

import (
	"fmt"
	"os"

	"github.com/dhowden/tag"
)

// ProbeAudio opens the audio file at path and attempts to read its metadata
// tags (ID3, Vorbis, MP4). A resolved path that exists but holds something
// other than audio usually means the substitution landed on the wrong file;
// the returned error lets the caller surface that as a warning.
func ProbeAudio(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open track: %w", err)
	}

	defer func() { _ = file.Close() }()

	if _, err := tag.ReadFrom(file); err != nil {
		return fmt.Errorf("failed to read tags: %w", err)
	}

	return nil
}
