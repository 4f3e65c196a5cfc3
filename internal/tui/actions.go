// pattern: Imperative Shell

package tui

import (
	"os/exec"
	"runtime"

	tea "github.com/charmbracelet/bubbletea"

	"projpick/internal/docs"
)

// launchClaude suspends the TUI and runs `claude --continue` inside
// the project directory. The session takes over the terminal until
// it exits.
func (m Model) launchClaude(path string) tea.Cmd {
	cmd := exec.Command("claude", "--continue")
	cmd.Dir = path
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return claudeFinishedMsg{err: err}
	})
}

// revealInFinder opens the project directory in the platform file
// manager. Fire-and-forget: a launch failure is logged, never
// surfaced as picker state.
func (m Model) revealInFinder(path string) tea.Cmd {
	logger := m.logger
	return func() tea.Msg {
		if err := exec.Command(openCommand(), path).Start(); err != nil {
			logger.Warnw("failed to reveal project", "path", path, "error", err)
		}
		return nil
	}
}

// openDoc resolves the project's doc and opens its obsidian:// URI.
// No matching doc is normal and does nothing.
func (m Model) openDoc(projectName string) tea.Cmd {
	matcher := m.matcher
	obsidian := m.cfg.Obsidian
	logger := m.logger
	return func() tea.Msg {
		if matcher == nil {
			return nil
		}
		docPath, ok := matcher.Match(projectName)
		if !ok {
			logger.Debugw("no doc for project", "project", projectName)
			return nil
		}

		uri := docs.ObsidianURI(obsidian.Vault, obsidian.FilePrefix, docPath)
		if err := exec.Command(openCommand(), uri).Start(); err != nil {
			logger.Warnw("failed to open doc", "uri", uri, "error", err)
		}
		return nil
	}
}

// openCommand returns the platform URL/file opener.
func openCommand() string {
	if runtime.GOOS == "darwin" {
		return "open"
	}
	return "xdg-open"
}
