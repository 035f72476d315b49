// ABOUTME: Tests for the console reporter
// ABOUTME: Checks event rendering and the progress/diagnostics stream split

package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"playlist-rebase/resolve"
)

func TestConsoleReporterRendersEvents(t *testing.T) {
	var out, errOut bytes.Buffer

	rep := newConsoleReporter(&out, &errOut, false)

	rep.Processing(1, 2, "/in/a.m3u")
	rep.Completed(1, "/out/a.m3u")
	rep.Processing(2, 2, "/in/b.m3u")
	rep.Failed(2, FileFailure{
		Source: "/in/b.m3u",
		Lines: []resolve.LineFailure{
			{Line: 3, Path: "/old/x.mp3", Err: errors.New("no match")},
		},
	})
	rep.Summary(1, 1)

	stdout := out.String()

	for _, want := range []string{
		`processing [1/2] <- "/in/a.m3u"`,
		`completed [1/2] -> "/out/a.m3u"`,
		"done: 1 converted, 1 failed",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("Expected stdout to contain %q, got:\n%s", want, stdout)
		}
	}

	stderr := errOut.String()

	for _, want := range []string{
		`failed [2/2] "/in/b.m3u"`,
		"line 3: no match",
	} {
		if !strings.Contains(stderr, want) {
			t.Errorf("Expected stderr to contain %q, got:\n%s", want, stderr)
		}
	}

	// Failures never pollute the progress stream
	if strings.Contains(stdout, "failed [2/2]") {
		t.Error("Expected per-file failures on stderr only")
	}
}

func TestConsoleReporterDryRunVerb(t *testing.T) {
	var out, errOut bytes.Buffer

	rep := newConsoleReporter(&out, &errOut, true)

	rep.Processing(1, 1, "/in/a.m3u")
	rep.Completed(1, "/out/a.m3u")

	if !strings.Contains(out.String(), `would write [1/1] -> "/out/a.m3u"`) {
		t.Errorf("Expected dry-run verb, got:\n%s", out.String())
	}
}

func TestConsoleReporterWarning(t *testing.T) {
	var out, errOut bytes.Buffer

	rep := newConsoleReporter(&out, &errOut, false)

	rep.Processing(1, 1, "/in/a.m3u")
	rep.Warning(1, "/new/a/x.mp3", errors.New("failed to read tags"))

	if !strings.Contains(errOut.String(), `warning [1/1] "/new/a/x.mp3": failed to read tags`) {
		t.Errorf("Expected warning on stderr, got:\n%s", errOut.String())
	}
}
