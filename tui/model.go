// ABOUTME: Terminal UI model for watching a batch conversion live
// ABOUTME: Bubble Tea model fed by a channel of batch progress events

// Package tui provides an interactive terminal UI for batch playlist
// conversion. It renders the same structured events the console reporter
// receives: a spinner for the file in flight, a scrollable log of per-file
// outcomes, and a final summary.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// UI chrome heights (elements that reduce available viewport space)
const (
	titleHeight     = 2 // Title line plus blank spacer
	statusBarHeight = 1 // Bottom status bar
	helpHeight      = 1 // Help text line

	minViewportHeight = 3
)

// eventMsg wraps one batch progress event
type eventMsg Event

// eventsClosedMsg signals that the batch finished and closed the channel
type eventsClosedMsg struct{}

// model holds the TUI state
type model struct {
	events <-chan Event
	total  int
	dryRun bool

	spinner  spinner.Model
	viewport viewport.Model
	ready    bool
	width    int
	height   int

	current   string   // source path currently being processed
	results   []string // rendered outcome lines, oldest first
	processed int
	converted int
	failed    int
	warnings  int
	done      bool
	quitting  bool
}

// Key bindings
type keyMap struct {
	Quit key.Binding
}

var keys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func newModel(opts Options, events <-chan Event) model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	return model{
		events:  events,
		total:   opts.Total,
		dryRun:  opts.DryRun,
		spinner: s,
	}
}

// Init starts the spinner and the event pump
func (m model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, waitForEvent(m.events))
}

// waitForEvent returns a command that delivers the next batch event
func waitForEvent(events <-chan Event) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return eventsClosedMsg{}
		}

		return eventMsg(event)
	}
}

// Update handles messages
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.Quit) {
			m.quitting = true

			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeViewport()

	case spinner.TickMsg:
		if m.done {
			return m, nil
		}

		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd

	case eventMsg:
		m.applyEvent(Event(msg))
		m.refreshViewport()

		return m, waitForEvent(m.events)

	case eventsClosedMsg:
		m.done = true

		return m, nil
	}

	// Let the viewport handle scrolling keys
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)

	return m, cmd
}

// applyEvent folds one batch event into the model state
func (m *model) applyEvent(event Event) {
	switch event.Kind {
	case EventProcessing:
		m.current = event.Path

		if event.Total > m.total {
			m.total = event.Total
		}

	case EventCompleted:
		m.processed++
		m.converted++
		m.results = append(m.results, completedStyle.Render(fmt.Sprintf("✓ [%d] %s", event.Index, event.Path)))

	case EventFailed:
		m.processed++
		m.failed++
		m.results = append(m.results, failedStyle.Render(fmt.Sprintf("✗ [%d] %s", event.Index, event.Path)))

		for _, reason := range event.Reasons {
			m.results = append(m.results, failedReasonStyle.Render("    "+reason))
		}

	case EventWarning:
		m.warnings++
		m.results = append(m.results, warningStyle.Render(fmt.Sprintf("! [%d] %s", event.Index, event.Path)))

		for _, reason := range event.Reasons {
			m.results = append(m.results, warningStyle.Render("    "+reason))
		}

	case EventSummary:
		m.current = ""
		m.converted = event.Converted
		m.failed = event.Failed
	}
}

// resizeViewport (re)creates the viewport for the current window size
func (m *model) resizeViewport() {
	height := m.height - (titleHeight + statusBarHeight + helpHeight)
	if height < minViewportHeight {
		height = minViewportHeight
	}

	if !m.ready {
		m.viewport = viewport.New(m.width, height)
		m.ready = true
	} else {
		m.viewport.Width = m.width
		m.viewport.Height = height
	}

	m.refreshViewport()
}

// refreshViewport rebuilds the result log content and follows the tail
func (m *model) refreshViewport() {
	if !m.ready {
		return
	}

	content := ""
	for _, line := range m.results {
		content += line + "\n"
	}

	atBottom := m.viewport.AtBottom()
	m.viewport.SetContent(content)

	if atBottom {
		m.viewport.GotoBottom()
	}
}

// Run starts the TUI and blocks until the user quits or the batch ends
// and the user dismisses the summary.
func Run(opts Options, events <-chan Event) error {
	p := tea.NewProgram(newModel(opts, events), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("visual mode error: %w", err)
	}

	return nil
}
