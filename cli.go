// ABOUTME: CLI mode implementation for non-interactive batch conversion
// ABOUTME: Renders progress events to the console with lipgloss styling

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"playlist-rebase/config"
)

// Console styles
var (
	processingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	completedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	failedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	summaryStyle = lipgloss.NewStyle().
			Bold(true)
)

// consoleReporter renders batch progress events as styled console lines.
// Progress goes to out, failures and warnings to errOut so batch output
// stays pipeable.
type consoleReporter struct {
	out    io.Writer
	errOut io.Writer
	dryRun bool
	total  int // remembered from the last Processing event
}

func newConsoleReporter(out, errOut io.Writer, dryRun bool) *consoleReporter {
	return &consoleReporter{out: out, errOut: errOut, dryRun: dryRun}
}

func (c *consoleReporter) Processing(index, total int, sourcePath string) {
	c.total = total
	fmt.Fprintln(c.out, processingStyle.Render(fmt.Sprintf("processing [%d/%d] <- %q", index, total, sourcePath)))
}

func (c *consoleReporter) Completed(index int, destPath string) {
	verb := "completed"
	if c.dryRun {
		verb = "would write"
	}

	fmt.Fprintln(c.out, completedStyle.Render(fmt.Sprintf("%s [%d/%d] -> %q", verb, index, c.total, destPath)))
}

func (c *consoleReporter) Failed(index int, failure FileFailure) {
	fmt.Fprintln(c.errOut, failedStyle.Render(fmt.Sprintf("failed [%d/%d] %q", index, c.total, failure.Source)))

	for _, reason := range formatReasons(failure) {
		fmt.Fprintln(c.errOut, failedStyle.Render("  "+reason))
	}
}

func (c *consoleReporter) Warning(index int, trackPath string, err error) {
	fmt.Fprintln(c.errOut, warningStyle.Render(fmt.Sprintf("warning [%d/%d] %q: %v", index, c.total, trackPath, err)))
}

func (c *consoleReporter) Summary(converted, failed int) {
	fmt.Fprintln(c.out, summaryStyle.Render(fmt.Sprintf("done: %d converted, %d failed", converted, failed)))
}

// RunCLI executes one batch conversion in console mode
func RunCLI(cfg config.Config, paths []string, opts RunOptions) Summary {
	rep := newConsoleReporter(os.Stdout, os.Stderr, opts.DryRun)

	if opts.DryRun {
		fmt.Println("--dry-run mode: no files will be written")
	}

	return RunBatch(cfg, paths, rep, BatchOptions{DryRun: opts.DryRun, Probe: opts.Probe})
}
