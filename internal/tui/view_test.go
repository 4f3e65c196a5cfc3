package tui

import (
	"strings"
	"testing"
	"time"

	"projpick/internal/gitstatus"
	"projpick/internal/labels"
)

func TestView_ListsProjects(t *testing.T) {
	m := newTestModel(t,
		record("my-api", testNow.Add(-time.Hour)),
		record("webapp", testNow.Add(-2*time.Hour)),
	)

	out := m.View()

	if !strings.Contains(out, "my-api") || !strings.Contains(out, "webapp") {
		t.Error("view should list both projects")
	}
	if !strings.Contains(out, "2 projects") {
		t.Error("header should show the project count")
	}
}

func TestView_SearchHeader(t *testing.T) {
	m := newTestModel(t, record("my-api", testNow))
	m.selection.Mode = Searching
	m.selection.Query = "my"

	out := m.View()

	if !strings.Contains(out, "/ ") || !strings.Contains(out, "my") {
		t.Error("searching header should show the query prompt")
	}
	if strings.Contains(out, "projects") {
		t.Error("searching header should replace the project count")
	}
}

func TestView_FilterNarrowsRows(t *testing.T) {
	m := newTestModel(t,
		record("my-api", testNow.Add(-time.Hour)),
		record("webapp", testNow.Add(-2*time.Hour)),
	)
	m.selection.Mode = Searching
	m.selection.Query = "web"

	out := m.View()

	if strings.Contains(out, "my-api") {
		t.Error("filtered-out project should not render")
	}
	if !strings.Contains(out, "webapp") {
		t.Error("matching project should render")
	}
}

func TestView_EmptyFilteredView(t *testing.T) {
	m := newTestModel(t, record("my-api", testNow))
	m.selection.Mode = Searching
	m.selection.Query = "zzz"

	out := m.View()

	if !strings.Contains(out, "no projects") {
		t.Error("empty filtered view should render the empty placeholder")
	}
}

func TestRenderRow_BranchAndLabels(t *testing.T) {
	p := record("my-api", testNow.Add(-3*time.Hour))
	p.Git = gitstatus.Status{State: gitstatus.Dirty, Branch: "main", LastCommit: testNow}
	p.Labels = []labels.Label{
		{Kind: labels.HasClaudeMd},
		{Kind: labels.McpCount, Count: 2},
	}
	p.HasDoc = true

	m := newTestModel(t, p)
	row := m.renderRow(p, false, 100)

	for _, want := range []string{"my-api", "main*", "claude.md", "2mcp", "doc", "3h ago", "app"} {
		if !strings.Contains(row, want) {
			t.Errorf("row missing %q: %q", want, row)
		}
	}
}

func TestRenderRow_CleanBranchHasNoMarker(t *testing.T) {
	p := record("webapp", testNow)
	p.Git = gitstatus.Status{State: gitstatus.Clean, Branch: "main", LastCommit: testNow}

	m := newTestModel(t, p)
	row := m.renderRow(p, false, 100)

	if strings.Contains(row, "main*") {
		t.Errorf("clean tree should not carry the dirty marker: %q", row)
	}
	if !strings.Contains(row, "main") {
		t.Errorf("row missing branch: %q", row)
	}
}

func TestRenderRow_NonRepoShowsNoBranch(t *testing.T) {
	p := record("sketch", testNow)

	m := newTestModel(t, p)
	row := m.renderRow(p, false, 100)

	if strings.Contains(row, "*") {
		t.Errorf("non-repo row should have no dirty marker: %q", row)
	}
}

func TestRenderRow_SelectionMarker(t *testing.T) {
	p := record("my-api", testNow)
	m := newTestModel(t, p)

	if !strings.Contains(m.renderRow(p, true, 100), "▸") {
		t.Error("selected row should carry the cursor marker")
	}
	if strings.Contains(m.renderRow(p, false, 100), "▸") {
		t.Error("unselected row should not carry the cursor marker")
	}
}

func TestView_ScanningState(t *testing.T) {
	m := newTestModel(t)
	m.scanning = true

	if !strings.Contains(m.View(), "scanning projects") {
		t.Error("scanning state should render the progress line")
	}
}

func TestView_FooterPerMode(t *testing.T) {
	m := newTestModel(t, record("a", testNow))

	browsing := m.View()
	if !strings.Contains(browsing, "quit") || !strings.Contains(browsing, "search") {
		t.Error("browsing footer should show quit and search hints")
	}

	m.selection.Mode = Searching
	searching := m.View()
	if !strings.Contains(searching, "clear") {
		t.Error("searching footer should show the esc hint")
	}
}

func TestFormatRelative(t *testing.T) {
	now := testNow
	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"zero", time.Time{}, "—"},
		{"just now", now.Add(-30 * time.Second), "just now"},
		{"minutes", now.Add(-5 * time.Minute), "5m ago"},
		{"hours", now.Add(-3 * time.Hour), "3h ago"},
		{"days", now.Add(-48 * time.Hour), "2d ago"},
		{"months", now.Add(-60 * 24 * time.Hour), "2mo ago"},
		{"years", now.Add(-400 * 24 * time.Hour), "1y ago"},
		{"future", now.Add(time.Hour), "—"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatRelative(tt.t, now); got != tt.want {
				t.Errorf("formatRelative = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestScrollOffset(t *testing.T) {
	tests := []struct {
		name                   string
		cursor, total, visible int
		want                   int
	}{
		{"all fit", 3, 5, 10, 0},
		{"top", 0, 50, 10, 0},
		{"middle centers cursor", 25, 50, 10, 20},
		{"bottom clamps", 49, 50, 10, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scrollOffset(tt.cursor, tt.total, tt.visible); got != tt.want {
				t.Errorf("scrollOffset = %d, want %d", got, tt.want)
			}
		})
	}
}
