// ABOUTME: Tests for raw-line playlist reading and writing
// ABOUTME: Verifies verbatim reads, parent directory creation, and overwrite refusal

package playlist

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// TestReadLines verifies that every line is preserved, including blanks and directives
func TestReadLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "directives and blanks preserved",
			content: "#EXTM3U\n\n/music/a.mp3\n# comment\n/music/b.mp3\n",
			want:    []string{"#EXTM3U", "", "/music/a.mp3", "# comment", "/music/b.mp3"},
		},
		{
			name:    "empty file",
			content: "",
			want:    nil,
		},
		{
			name:    "no trailing newline",
			content: "/music/a.mp3",
			want:    []string{"/music/a.mp3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpFile := filepath.Join(t.TempDir(), "test.m3u8")

			if err := os.WriteFile(tmpFile, []byte(tt.content), 0o600); err != nil {
				t.Fatalf("Failed to create test file: %v", err)
			}

			lines, err := ReadLines(tmpFile)
			if err != nil {
				t.Fatalf("ReadLines failed: %v", err)
			}

			if len(lines) != len(tt.want) {
				t.Fatalf("Expected %d lines, got %d", len(tt.want), len(lines))
			}

			for i := range tt.want {
				if lines[i] != tt.want[i] {
					t.Errorf("Line %d: expected %q, got %q", i, tt.want[i], lines[i])
				}
			}
		})
	}
}

// TestReadLinesNonExistent verifies error handling for missing files
func TestReadLinesNonExistent(t *testing.T) {
	lines, err := ReadLines("/nonexistent/path/to/playlist.m3u8")

	if err == nil {
		t.Error("Expected error for nonexistent file, got none")
	}

	if len(lines) != 0 {
		t.Errorf("Expected 0 lines for failed read, got %d", len(lines))
	}
}

// TestWriteLines verifies writing into a mirrored, not-yet-existing subtree
func TestWriteLines(t *testing.T) {
	tmpDir := t.TempDir()
	dest := filepath.Join(tmpDir, "rock", "band.m3u")
	lines := []string{"#EXTM3U", "/new/a/Band/track1.mp3"}

	if err := WriteLines(dest, lines); err != nil {
		t.Fatalf("WriteLines failed: %v", err)
	}

	got, err := ReadLines(dest)
	if err != nil {
		t.Fatalf("ReadLines failed: %v", err)
	}

	if len(got) != len(lines) {
		t.Fatalf("Expected %d lines after round trip, got %d", len(lines), len(got))
	}

	for i := range lines {
		if got[i] != lines[i] {
			t.Errorf("Line %d: expected %q, got %q", i, lines[i], got[i])
		}
	}
}

// TestWriteLinesRefusesOverwrite verifies the no-overwrite guarantee
func TestWriteLinesRefusesOverwrite(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "band.m3u")

	if err := os.WriteFile(dest, []byte("original\n"), 0o600); err != nil {
		t.Fatalf("Failed to create existing file: %v", err)
	}

	err := WriteLines(dest, []string{"replacement"})

	var destExists *DestExistsError
	if !errors.As(err, &destExists) {
		t.Fatalf("Expected DestExistsError, got %v", err)
	}

	// Existing content must be untouched
	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}

	if string(data) != "original\n" {
		t.Errorf("Existing file was modified: %q", string(data))
	}
}
