package tui

import (
	"errors"
	"testing"
	"time"

	"projpick/internal/config"
	"projpick/internal/index"
	"projpick/internal/logging"
	"projpick/internal/scan"
)

// testNow is the fixed clock for deterministic age rendering.
var testNow = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

var errFake = errors.New("launch failed")

// newTestModel builds a picker model with a canned scan and no docs.
func newTestModel(t *testing.T, projects ...scan.Project) Model {
	t.Helper()

	cfg := config.DefaultConfig()
	m := NewModel(&cfg, func() []scan.Project { return projects }, nil, logging.Nop())
	m.ix = index.Build(projects)
	m.scanning = false
	m.now = func() time.Time { return testNow }
	m.width = 80
	m.height = 24
	return m
}

func TestNewModel_InitialState(t *testing.T) {
	cfg := config.DefaultConfig()
	m := NewModel(&cfg, func() []scan.Project { return nil }, nil, logging.Nop())

	if m.selection.Mode != Browsing {
		t.Errorf("mode = %v, want Browsing", m.selection.Mode)
	}
	if m.selection.Cursor != 0 || m.selection.Query != "" {
		t.Errorf("selection = %+v, want zero state", m.selection)
	}
	if !m.scanning {
		t.Error("model should start in scanning state")
	}
	if m.ix.Len() != 0 {
		t.Errorf("index should start empty, got %d records", m.ix.Len())
	}
}

func TestInit_ReturnsScanCommand(t *testing.T) {
	m := newTestModel(t)
	if m.Init() == nil {
		t.Error("Init should return the scan command")
	}
}
