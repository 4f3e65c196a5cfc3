// pattern: Imperative Shell

package docs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// matchThreshold is the minimum Jaccard token overlap between a
// project name and a doc stem for the doc to count as a match.
const matchThreshold = 0.5

// Matcher finds the markdown doc that best matches a project name.
type Matcher struct {
	docsDir string
}

// NewMatcher creates a matcher over the markdown files directly
// inside docsDir.
func NewMatcher(docsDir string) *Matcher {
	return &Matcher{docsDir: docsDir}
}

// Match returns the path of the best-matching doc for projectName.
// A project "daily-digest" matches a doc "Daily Digest.md". Returns
// false when the docs folder is missing or nothing clears the
// overlap threshold; absence is not an error.
func (m *Matcher) Match(projectName string) (string, bool) {
	entries, err := os.ReadDir(m.docsDir)
	if err != nil {
		return "", false
	}

	var bestPath string
	var bestScore float64

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		stem, ok := strings.CutSuffix(entry.Name(), ".md")
		if !ok {
			continue
		}

		// Exact normalized equality always wins
		if normalize(stem) == normalize(projectName) {
			return filepath.Join(m.docsDir, entry.Name()), true
		}

		score := tokenOverlap(tokens(projectName), tokens(stem))
		if score > bestScore {
			bestScore = score
			bestPath = filepath.Join(m.docsDir, entry.Name())
		}
	}

	if bestScore >= matchThreshold {
		return bestPath, true
	}
	return "", false
}

// HasDoc reports whether any doc matches the project name.
func (m *Matcher) HasDoc(projectName string) bool {
	_, ok := m.Match(projectName)
	return ok
}

// ObsidianURI builds the obsidian:// URI that opens the given doc.
// filePrefix is the already-escaped vault-relative folder prefix
// (e.g. "Personal%2FApp%2F").
func ObsidianURI(vault, filePrefix, docPath string) string {
	stem := strings.TrimSuffix(filepath.Base(docPath), ".md")
	return fmt.Sprintf("obsidian://open?vault=%s&file=%s%s",
		vault, filePrefix, strings.ReplaceAll(stem, " ", "%20"))
}

// normalize lowercases a name and strips separators so that
// "daily-digest" and "Daily Digest" compare equal.
func normalize(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', ' ':
			return -1
		}
		return r
	}, strings.ToLower(name))
}

// tokens splits a name into lowercase words on punctuation and
// whitespace.
func tokens(name string) []string {
	return strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
		return r == '-' || r == '_' || r == ' ' || r == '.'
	})
}

// tokenOverlap computes the Jaccard overlap between two token sets.
func tokenOverlap(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	inA := make(map[string]bool, len(a))
	for _, tok := range a {
		inA[tok] = true
	}

	// Distinct tokens only; repeats must not widen the union
	union := len(inA)
	shared := 0
	seen := make(map[string]bool, len(b))
	for _, tok := range b {
		if seen[tok] {
			continue
		}
		seen[tok] = true
		if inA[tok] {
			shared++
		} else {
			union++
		}
	}

	return float64(shared) / float64(union)
}
