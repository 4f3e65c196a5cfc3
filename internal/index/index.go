// pattern: Functional Core

package index

import (
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"

	"projpick/internal/scan"
)

// Scoring constants for query matching. The base score comes from
// sahilm/fuzzy's subsequence match; a contiguous substring match adds
// substringBonus on top, and every rune before the first matched rune
// subtracts firstMatchPenalty so that prefix matches rank first.
const (
	substringBonus    = 200
	firstMatchPenalty = 1
)

// Index holds one scan's project records, sorted by last modification
// descending with name-ascending tie-breaks. The index is rebuilt
// wholesale on rescan and never mutated in place.
type Index struct {
	projects []scan.Project
}

// Build sorts the records and returns a new index. The input slice is
// not modified.
func Build(records []scan.Project) *Index {
	sorted := make([]scan.Project, len(records))
	copy(sorted, records)

	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].LastModified.Equal(sorted[j].LastModified) {
			return sorted[i].LastModified.After(sorted[j].LastModified)
		}
		return sorted[i].Name < sorted[j].Name
	})

	return &Index{projects: sorted}
}

// All returns the full sorted record list.
func (ix *Index) All() []scan.Project {
	return ix.projects
}

// Len returns the number of records in the index.
func (ix *Index) Len() int {
	return len(ix.projects)
}

// Filter returns the records whose name fuzzy-matches query, best
// match first, ties kept in index order. An empty query returns the
// full sorted list unchanged; a query with no matches returns an
// empty (non-nil) slice.
func (ix *Index) Filter(query string) []scan.Project {
	if query == "" {
		return ix.projects
	}

	names := make([]string, len(ix.projects))
	for i, p := range ix.projects {
		names[i] = p.Name
	}

	matches := fuzzy.Find(query, names)

	type ranked struct {
		idx   int // position in the sorted index
		score int
	}
	candidates := make([]ranked, 0, len(matches))
	for _, m := range matches {
		candidates = append(candidates, ranked{
			idx:   m.Index,
			score: scoreMatch(query, names[m.Index], m),
		})
	}

	// Keep index order for equal scores so ties fall back to the
	// last_modified ordering
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].idx < candidates[j].idx
	})

	out := make([]scan.Project, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, ix.projects[c.idx])
	}
	return out
}

// scoreMatch combines the fuzzy subsequence score with the substring
// bonus and first-match position penalty.
func scoreMatch(query, name string, m fuzzy.Match) int {
	score := m.Score

	if strings.Contains(strings.ToLower(name), strings.ToLower(query)) {
		score += substringBonus
	}

	if len(m.MatchedIndexes) > 0 {
		score -= firstMatchPenalty * m.MatchedIndexes[0]
	}

	return score
}
