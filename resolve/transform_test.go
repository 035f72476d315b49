// ABOUTME: Tests for whole-playlist transformation
// ABOUTME: Verifies pass-through lines, all-or-nothing failure, and NFC path normalization

package resolve

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestTransformConvertsPathLines(t *testing.T) {
	tmpDir := t.TempDir()
	track1 := mkTrack(t, tmpDir, "Band", "track1.mp3")
	track2 := mkTrack(t, tmpDir, "Band", "track2.mp3")

	r := NewResolver([]string{"/old/root"}, []string{tmpDir})

	lines := []string{
		"#EXTM3U",
		"#EXTINF:123,Band - Track 1",
		"/old/root/Band/track1.mp3",
		"",
		"/old/root/Band/track2.mp3",
	}

	out, failures := Transform(lines, r)
	if failures != nil {
		t.Fatalf("Unexpected failures: %v", failures)
	}

	want := []string{"#EXTM3U", "#EXTINF:123,Band - Track 1", track1, "", track2}

	if len(out) != len(want) {
		t.Fatalf("Expected %d lines, got %d", len(want), len(out))
	}

	for i := range want {
		if out[i] != want[i] {
			t.Errorf("Line %d: expected %q, got %q", i, want[i], out[i])
		}
	}
}

func TestTransformAllOrNothing(t *testing.T) {
	tmpDir := t.TempDir()

	// 9 of 10 tracks exist under the new root
	lines := make([]string, 0, 10)

	for i := range 10 {
		name := filepath.Join("Band", string(rune('a'+i))+".mp3")
		if i != 7 {
			mkTrack(t, tmpDir, name)
		}

		lines = append(lines, filepath.Join("/old/root", name))
	}

	r := NewResolver([]string{"/old/root"}, []string{tmpDir})

	out, failures := Transform(lines, r)
	if out != nil {
		t.Fatalf("Expected no output for partially resolvable playlist, got %d lines", len(out))
	}

	if len(failures) != 1 {
		t.Fatalf("Expected 1 failure, got %d", len(failures))
	}

	if failures[0].Line != 8 {
		t.Errorf("Expected failure on line 8, got %d", failures[0].Line)
	}

	var noMatch *NoMatchError
	if !errors.As(failures[0].Err, &noMatch) {
		t.Errorf("Expected NoMatchError, got %v", failures[0].Err)
	}
}

func TestTransformPassThroughLines(t *testing.T) {
	r := NewResolver([]string{"/old/root"}, []string{t.TempDir()})

	tests := []struct {
		name string
		line string
	}{
		{name: "directive", line: "#EXTM3U"},
		{name: "comment", line: "# a comment"},
		{name: "blank", line: ""},
		{name: "whitespace only", line: "   "},
		{name: "relative path", line: "Band/track1.mp3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, failures := Transform([]string{tt.line}, r)
			if failures != nil {
				t.Fatalf("Unexpected failures: %v", failures)
			}

			if out[0] != tt.line {
				t.Errorf("Expected line unchanged %q, got %q", tt.line, out[0])
			}
		})
	}
}

func TestTransformCollectsAllFailures(t *testing.T) {
	r := NewResolver([]string{"/old/root"}, []string{t.TempDir()})

	lines := []string{
		"/old/root/a.mp3",
		"#EXTM3U",
		"/elsewhere/b.mp3",
	}

	out, failures := Transform(lines, r)
	if out != nil {
		t.Fatal("Expected no output")
	}

	if len(failures) != 2 {
		t.Fatalf("Expected 2 failures, got %d", len(failures))
	}

	if failures[0].Line != 1 || failures[1].Line != 3 {
		t.Errorf("Expected failures on lines 1 and 3, got %d and %d", failures[0].Line, failures[1].Line)
	}

	if failures[1].Path != "/elsewhere/b.mp3" {
		t.Errorf("Expected original path in failure, got %q", failures[1].Path)
	}
}

func TestTransformNormalizesDecomposedAccents(t *testing.T) {
	tmpDir := t.TempDir()

	// Library file name uses the precomposed form U+00E9
	want := mkTrack(t, tmpDir, "Beyonc\u00e9", "track1.mp3")

	r := NewResolver([]string{"/old/root"}, []string{tmpDir})

	// Playlist line uses the decomposed form e + U+0301, as iTunes exports it
	out, failures := Transform([]string{"/old/root/Beyonce\u0301/track1.mp3"}, r)
	if failures != nil {
		t.Fatalf("Unexpected failures: %v", failures)
	}

	if out[0] != want {
		t.Errorf("Expected NFC-resolved path %q, got %q", want, out[0])
	}
}

func TestTransformEmptyPlaylist(t *testing.T) {
	r := NewResolver([]string{"/old/root"}, []string{t.TempDir()})

	out, failures := Transform(nil, r)
	if failures != nil {
		t.Fatalf("Unexpected failures: %v", failures)
	}

	if len(out) != 0 {
		t.Errorf("Expected empty output, got %d lines", len(out))
	}
}
