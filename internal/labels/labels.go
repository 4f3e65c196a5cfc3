// pattern: Imperative Shell

package labels

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Kind identifies a recognized Claude tool-config artifact.
type Kind int

const (
	// HasClaudeMd means a CLAUDE.md file sits at the project root.
	HasClaudeMd Kind = iota
	// SkillCount means .claude/commands/ contains regular files.
	SkillCount
	// McpCount means .mcp.json declares MCP servers.
	McpCount
)

// Label is one detected config artifact, with a count where relevant.
type Label struct {
	Kind  Kind
	Count int
}

// String renders the label the way the picker displays it.
func (l Label) String() string {
	switch l.Kind {
	case HasClaudeMd:
		return "claude.md"
	case SkillCount:
		return fmt.Sprintf("%dskills", l.Count)
	case McpCount:
		return fmt.Sprintf("%dmcp", l.Count)
	}
	return ""
}

// Scanner detects Claude config artifacts in project directories.
type Scanner struct{}

// NewScanner creates a config label scanner.
func NewScanner() *Scanner {
	return &Scanner{}
}

// Scan returns the labels detected under path, in stable order:
// CLAUDE.md, skills, mcp. Missing or unreadable artifacts are normal
// and simply produce no label.
func (s *Scanner) Scan(path string) []Label {
	var out []Label

	if info, err := os.Stat(filepath.Join(path, "CLAUDE.md")); err == nil && !info.IsDir() {
		out = append(out, Label{Kind: HasClaudeMd})
	}

	if n := countSkillFiles(filepath.Join(path, ".claude", "commands")); n > 0 {
		out = append(out, Label{Kind: SkillCount, Count: n})
	}

	if n := countMcpServers(filepath.Join(path, ".mcp.json")); n > 0 {
		out = append(out, Label{Kind: McpCount, Count: n})
	}

	return out
}

// countSkillFiles counts regular files directly inside dir (non-recursive).
func countSkillFiles(dir string) int {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0
	}
	count := 0
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			count++
		}
	}
	return count
}

// countMcpServers parses a .mcp.json file and counts declared servers
// under either the "mcpServers" or "servers" key. Malformed JSON or a
// missing mapping yields zero, never an error.
func countMcpServers(path string) int {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0
	}

	var doc struct {
		McpServers map[string]json.RawMessage `json:"mcpServers"`
		Servers    map[string]json.RawMessage `json:"servers"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return 0
	}

	if len(doc.McpServers) > 0 {
		return len(doc.McpServers)
	}
	return len(doc.Servers)
}
