// ABOUTME: Rendering for the batch conversion TUI
// ABOUTME: Implements the Bubble Tea View() function and its styles

package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	spinnerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	completedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	failedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	failedReasonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("196"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	statusStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("15")).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// View renders the TUI
func (m model) View() string {
	if m.quitting {
		return "Exiting...\n"
	}

	if !m.ready {
		return "Initializing...\n"
	}

	title := "playlist-rebase"
	if m.dryRun {
		title += " (dry-run)"
	}

	return titleStyle.Render(title) + "\n\n" +
		m.viewport.View() + "\n" +
		m.renderStatus() + "\n" +
		m.renderHelp()
}

// renderStatus renders the bottom status bar
func (m model) renderStatus() string {
	var status string

	if m.done {
		status = fmt.Sprintf("done: %d converted, %d failed", m.converted, m.failed)
		if m.warnings > 0 {
			status += fmt.Sprintf(", %d warnings", m.warnings)
		}
	} else {
		status = fmt.Sprintf("%s %d/%d", m.spinner.View(), m.processed, m.total)
		if m.current != "" {
			status += "  " + truncate(m.current, m.width-20)
		}
	}

	return statusStyle.Width(m.width).Render(status)
}

// renderHelp renders the help text
func (m model) renderHelp() string {
	return helpStyle.Render(" ↑/↓: scroll | q: quit")
}

// truncate shortens string to maxLen runes, adding "..." if needed.
// Counts runes rather than bytes so multibyte path names are never split
// mid-character.
func truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return s
	}

	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}

	if maxLen <= 3 {
		return string(runes[:maxLen])
	}

	return string(runes[:maxLen-3]) + "..."
}
