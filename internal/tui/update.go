// pattern: Imperative Shell

package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"projpick/internal/index"
	"projpick/internal/scan"
)

// projectsScannedMsg delivers the records of a completed scan.
type projectsScannedMsg struct {
	projects []scan.Project
}

// claudeFinishedMsg is sent when a foreground claude session ends and
// the TUI resumes.
type claudeFinishedMsg struct {
	err error
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.scanning {
			return m, nil
		}
		var cmd tea.Cmd
		m.scanSpinner, cmd = m.scanSpinner.Update(msg)
		return m, cmd

	case projectsScannedMsg:
		return m.applyScan(msg.projects), nil

	case claudeFinishedMsg:
		if msg.err != nil {
			m.logger.Warnw("claude session ended with error", "error", msg.err)
			m.err = msg.err
		} else {
			m.err = nil
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// applyScan swaps in a freshly built index and reclamps the cursor
// against the new filtered view.
func (m Model) applyScan(projects []scan.Project) Model {
	m.ix = index.Build(projects)
	m.scanning = false

	if m.selection.Cursor >= len(m.ix.Filter(m.selection.Query)) {
		m.selection.Cursor = 0
	}
	return m
}

// handleKey translates terminal keys into state machine events and
// executes the resulting intent.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	events, ok := toEvents(msg)
	if !ok {
		return m, nil
	}

	var cmds []tea.Cmd
	for _, ev := range events {
		var intent Intent
		m.selection, intent = Handle(m.selection, m.ix, ev)

		switch intent.Kind {
		case IntentQuit:
			return m, tea.Quit

		case IntentOpen:
			m.logger.Infow("opening project", "path", intent.Project.Path)
			cmds = append(cmds, m.launchClaude(intent.Project.Path))

		case IntentReveal:
			m.logger.Infow("revealing project", "path", intent.Project.Path)
			cmds = append(cmds, m.revealInFinder(intent.Project.Path))

		case IntentOpenDoc:
			m.logger.Infow("opening doc", "project", intent.Project.Name)
			cmds = append(cmds, m.openDoc(intent.Project.Name))

		case IntentRefresh:
			m.scanning = true
			cmds = append(cmds, m.scanCmd(), m.scanSpinner.Tick)
		}
	}

	return m, tea.Batch(cmds...)
}

// toEvents normalizes a bubbletea key message for the state machine.
// Pasted input arrives as one KeyRunes message carrying several runes;
// each rune becomes its own event.
func toEvents(msg tea.KeyMsg) ([]Event, bool) {
	switch msg.Type {
	case tea.KeyUp:
		return []Event{{Kind: EventUp}}, true
	case tea.KeyDown:
		return []Event{{Kind: EventDown}}, true
	case tea.KeyEnter:
		return []Event{{Kind: EventEnter}}, true
	case tea.KeyEscape:
		return []Event{{Kind: EventEscape}}, true
	case tea.KeyBackspace:
		return []Event{{Kind: EventBackspace}}, true
	case tea.KeySpace:
		return []Event{{Kind: EventRune, Rune: ' '}}, true
	case tea.KeyRunes:
		if len(msg.Runes) == 0 {
			return nil, false
		}
		events := make([]Event, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			events = append(events, Event{Kind: EventRune, Rune: r})
		}
		return events, true
	}
	return nil, false
}
