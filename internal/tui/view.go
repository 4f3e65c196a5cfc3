// pattern: Imperative Shell

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"projpick/internal/gitstatus"
	"projpick/internal/labels"
	"projpick/internal/scan"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	// chrome is header + separators + footer rows around the list.
	chromeRows = 4
)

// View renders the picker.
func (m Model) View() string {
	width := m.width
	if width <= 0 {
		width = defaultWidth
	}
	height := m.height
	if height <= 0 {
		height = defaultHeight
	}

	filtered := m.ix.Filter(m.selection.Query)

	var b strings.Builder
	b.WriteString(m.renderHeader(len(filtered)))
	b.WriteString("\n")
	b.WriteString(m.styles.MutedStyle().Render(strings.Repeat("─", width)))
	b.WriteString("\n")

	if m.scanning {
		b.WriteString(" " + m.scanSpinner.View() + m.styles.MutedStyle().Render("scanning projects…"))
		b.WriteString("\n")
	} else if len(filtered) == 0 {
		b.WriteString(m.styles.MutedStyle().Render(" no projects"))
		b.WriteString("\n")
	} else {
		listHeight := height - chromeRows
		if listHeight < 1 {
			listHeight = 1
		}
		start := scrollOffset(m.selection.Cursor, len(filtered), listHeight)
		for i := start; i < len(filtered) && i < start+listHeight; i++ {
			b.WriteString(m.renderRow(filtered[i], i == m.selection.Cursor, width))
			b.WriteString("\n")
		}
	}

	b.WriteString(m.styles.MutedStyle().Render(strings.Repeat("─", width)))
	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

// renderHeader shows the app title with a project count, or the live
// query while searching.
func (m Model) renderHeader(filteredLen int) string {
	if m.selection.Mode == Searching {
		return " " + m.styles.QueryStyle().Render("/ ") +
			m.selection.Query +
			m.styles.QueryStyle().Render("▌")
	}

	count := fmt.Sprintf(" %d projects", filteredLen)
	if m.err != nil {
		count += "  " + m.styles.ErrorStyle().Render(m.err.Error())
	}
	return " " + m.styles.TitleStyle().Render("projpick") +
		m.styles.MutedStyle().Render(count)
}

// renderRow lays out one project line: group, name, branch with dirty
// marker, config labels, doc marker, and right-aligned age.
func (m Model) renderRow(p scan.Project, selected bool, width int) string {
	marker := "  "
	nameStyle := m.styles.NameStyle()
	if selected {
		marker = m.styles.SelectedNameStyle().Render("▸ ")
		nameStyle = m.styles.SelectedNameStyle()
	}

	groupCol := fmt.Sprintf("%10s ", p.Group)
	timeStr := formatRelative(p.LastModified, m.now())

	// Plain segments first so padding is computed without escape codes
	plainLeft := "  " + groupCol + p.Name
	var segments []string
	segments = append(segments, marker, m.styles.MutedStyle().Render(groupCol), nameStyle.Render(p.Name))

	if branch := branchLabel(p.Git); branch != "" {
		plainLeft += "  " + branch
		style := m.styles.BranchStyle()
		if p.Git.State == gitstatus.Dirty {
			style = m.styles.DirtyStyle()
		}
		segments = append(segments, "  ", style.Render(branch))
	}

	if len(p.Labels) > 0 {
		labelStr := labelSummary(p.Labels)
		plainLeft += "  " + labelStr
		segments = append(segments, "  ", m.styles.MutedStyle().Render(labelStr))
	}

	if p.HasDoc {
		plainLeft += " doc"
		segments = append(segments, " ", m.styles.DocStyle().Render("doc"))
	}

	padding := width - ansi.StringWidth(plainLeft) - ansi.StringWidth(timeStr) - 2
	if padding < 1 {
		padding = 1
	}
	segments = append(segments, strings.Repeat(" ", padding), m.styles.MutedStyle().Render(timeStr))

	return ansi.Truncate(strings.Join(segments, ""), width, "…")
}

// renderFooter shows the mode-specific key help.
func (m Model) renderFooter() string {
	bindings := m.keys.browsingHelp()
	if m.selection.Mode == Searching {
		bindings = m.keys.searchingHelp()
	}

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts,
			m.styles.KeyStyle().Render(h.Key)+" "+m.styles.MutedStyle().Render(h.Desc))
	}
	return " " + strings.Join(parts, "  ")
}

// branchLabel renders "main" or "main*" for dirty trees, empty for
// non-repos.
func branchLabel(status gitstatus.Status) string {
	if !status.IsRepo() || status.Branch == "" {
		return ""
	}
	if status.State == gitstatus.Dirty {
		return status.Branch + "*"
	}
	return status.Branch
}

// labelSummary joins config labels with spaces ("claude.md 3skills 2mcp").
func labelSummary(labelList []labels.Label) string {
	parts := make([]string, len(labelList))
	for i, l := range labelList {
		parts[i] = l.String()
	}
	return strings.Join(parts, " ")
}

// scrollOffset keeps the cursor inside the visible window.
func scrollOffset(cursor, total, visible int) int {
	if total <= visible {
		return 0
	}
	start := cursor - visible/2
	if start < 0 {
		start = 0
	}
	if start > total-visible {
		start = total - visible
	}
	return start
}
