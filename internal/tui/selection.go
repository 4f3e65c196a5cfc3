// pattern: Functional Core

package tui

import (
	"unicode/utf8"

	"projpick/internal/index"
	"projpick/internal/scan"
)

// Mode is the selection state machine's mode.
type Mode int

const (
	// Browsing is the default navigation mode.
	Browsing Mode = iota
	// Searching means keystrokes edit the filter query.
	Searching
)

// SelectionState is the picker's interactive state: cursor into the
// currently filtered view, the active query, and the mode. It is a
// plain value passed through Handle so transitions are testable
// without a terminal.
type SelectionState struct {
	Cursor int
	Query  string
	Mode   Mode
}

// NewSelectionState returns the startup state: Browsing, cursor 0,
// empty query.
func NewSelectionState() SelectionState {
	return SelectionState{}
}

// EventKind identifies a normalized key event.
type EventKind int

const (
	EventUp EventKind = iota
	EventDown
	EventEnter
	EventEscape
	EventBackspace
	EventRune
)

// Event is one key event fed to the state machine. Rune is set only
// for EventRune.
type Event struct {
	Kind EventKind
	Rune rune
}

// IntentKind identifies an action the state machine asks the caller
// to perform.
type IntentKind int

const (
	IntentNone IntentKind = iota
	IntentOpen
	IntentReveal
	IntentOpenDoc
	IntentQuit
	IntentRefresh
)

// Intent is an action emitted by a transition, executed outside the
// state machine. Project is set for Open, Reveal, and OpenDoc.
type Intent struct {
	Kind    IntentKind
	Project scan.Project
}

// Handle applies one key event to the state and returns the new state
// plus the intent to execute. The cursor is reclamped against the
// filtered view on every transition that can shrink it.
func Handle(st SelectionState, ix *index.Index, ev Event) (SelectionState, Intent) {
	if st.Mode == Searching {
		return handleSearching(st, ix, ev)
	}
	return handleBrowsing(st, ix, ev)
}

func handleBrowsing(st SelectionState, ix *index.Index, ev Event) (SelectionState, Intent) {
	switch ev.Kind {
	case EventUp:
		return moveCursor(st, -1, ix), Intent{}
	case EventDown:
		return moveCursor(st, 1, ix), Intent{}
	case EventEnter:
		return st, selectionIntent(st, ix, IntentOpen)
	case EventRune:
		switch ev.Rune {
		case 'k':
			return moveCursor(st, -1, ix), Intent{}
		case 'j':
			return moveCursor(st, 1, ix), Intent{}
		case '/':
			st.Mode = Searching
			return st, Intent{}
		case 'q':
			return st, Intent{Kind: IntentQuit}
		case 'f':
			return st, selectionIntent(st, ix, IntentReveal)
		case 'd':
			return st, selectionIntent(st, ix, IntentOpenDoc)
		case 'r':
			return st, Intent{Kind: IntentRefresh}
		}
	}
	return st, Intent{}
}

func handleSearching(st SelectionState, ix *index.Index, ev Event) (SelectionState, Intent) {
	switch ev.Kind {
	case EventUp:
		return moveCursor(st, -1, ix), Intent{}
	case EventDown:
		return moveCursor(st, 1, ix), Intent{}
	case EventEnter:
		return st, selectionIntent(st, ix, IntentOpen)
	case EventEscape:
		// Full clear: back to browsing from the top
		return SelectionState{}, Intent{}
	case EventBackspace:
		if st.Query != "" {
			// Drop the last rune, not the last byte
			_, size := utf8.DecodeLastRuneInString(st.Query)
			st.Query = st.Query[:len(st.Query)-size]
		}
		// Empty query stays in Searching; only Esc leaves the mode
		return resetIfOutOfRange(st, ix), Intent{}
	case EventRune:
		st.Query += string(ev.Rune)
		return resetIfOutOfRange(st, ix), Intent{}
	}
	return st, Intent{}
}

// moveCursor shifts the cursor by delta, clamped to the filtered view.
func moveCursor(st SelectionState, delta int, ix *index.Index) SelectionState {
	n := len(ix.Filter(st.Query))
	if n == 0 {
		st.Cursor = 0
		return st
	}

	st.Cursor += delta
	if st.Cursor < 0 {
		st.Cursor = 0
	}
	if st.Cursor > n-1 {
		st.Cursor = n - 1
	}
	return st
}

// resetIfOutOfRange resets the cursor to the top when the previous
// cursor no longer fits the refiltered view.
func resetIfOutOfRange(st SelectionState, ix *index.Index) SelectionState {
	if st.Cursor >= len(ix.Filter(st.Query)) {
		st.Cursor = 0
	}
	return st
}

// selectionIntent builds an intent carrying the selected project, or
// none when the filtered view is empty.
func selectionIntent(st SelectionState, ix *index.Index, kind IntentKind) Intent {
	filtered := ix.Filter(st.Query)
	if len(filtered) == 0 || st.Cursor >= len(filtered) {
		return Intent{}
	}
	return Intent{Kind: kind, Project: filtered[st.Cursor]}
}
