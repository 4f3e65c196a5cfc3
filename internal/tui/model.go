package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"projpick/internal/config"
	"projpick/internal/docs"
	"projpick/internal/index"
	"projpick/internal/scan"
)

// ScanFunc runs one full project scan. The model calls it from a
// command at startup and on explicit refresh, never per keystroke.
type ScanFunc func() []scan.Project

// Model represents the picker's TUI state.
type Model struct {
	width  int
	height int
	styles *Styles
	keys   keyMap

	cfg     *config.Config
	scanFn  ScanFunc
	matcher *docs.Matcher // nil when no docs folder configured
	logger  *zap.SugaredLogger

	ix        *index.Index
	selection SelectionState

	scanning    bool
	scanSpinner spinner.Model

	now func() time.Time // injected for deterministic row rendering in tests

	err error
}

// NewModel creates a picker model. matcher may be nil.
func NewModel(cfg *config.Config, scanFn ScanFunc, matcher *docs.Matcher, logger *zap.SugaredLogger) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		styles:      NewStyles(cfg.Theme),
		keys:        defaultKeyMap(),
		cfg:         cfg,
		scanFn:      scanFn,
		matcher:     matcher,
		logger:      logger,
		ix:          index.Build(nil),
		selection:   NewSelectionState(),
		scanning:    true,
		scanSpinner: sp,
		now:         time.Now,
	}
}

// Init kicks off the first scan.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.scanCmd(), m.scanSpinner.Tick)
}

// scanCmd runs the scan off the update loop and delivers the records.
func (m Model) scanCmd() tea.Cmd {
	return func() tea.Msg {
		started := time.Now()
		projects := m.scanFn()
		m.logger.Infow("scan complete", "count", len(projects), "elapsed", time.Since(started))
		return projectsScannedMsg{projects: projects}
	}
}
