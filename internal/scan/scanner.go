// pattern: Imperative Shell

package scan

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"projpick/internal/gitstatus"
	"projpick/internal/labels"
)

// StatusProvider extracts git status for a project directory.
type StatusProvider interface {
	Read(path string) gitstatus.Status
}

// LabelProvider detects Claude config artifacts in a project directory.
type LabelProvider interface {
	Scan(path string) []labels.Label
}

// DocProber reports whether a project has a matching doc.
type DocProber interface {
	HasDoc(projectName string) bool
}

// Scanner builds project records from configured scan roots.
type Scanner struct {
	status StatusProvider
	labels LabelProvider
	docs   DocProber // nil disables doc probing
}

// NewScanner creates a project scanner with the given providers.
// docs may be nil when no docs folder is configured.
func NewScanner(status StatusProvider, labelScanner LabelProvider, docs DocProber) *Scanner {
	return &Scanner{
		status: status,
		labels: labelScanner,
		docs:   docs,
	}
}

// ScanAll enumerates the immediate child directories of every root and
// builds one record per surviving child. The result is unsorted; the
// index owns ordering. A missing root contributes zero records, an
// unreadable child is skipped, neither is an error.
func (s *Scanner) ScanAll(roots []string, exclude map[string]bool) []Project {
	var projects []Project
	seen := make(map[string]bool)

	for _, root := range roots {
		group := filepath.Base(root)

		entries, err := os.ReadDir(root)
		if err != nil {
			continue // Skip inaccessible roots
		}

		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			name := entry.Name()
			if skipName(name, exclude) {
				continue
			}
			projectPath := filepath.Join(root, name)

			// Resolve symlinks so the same project linked from two
			// roots produces one record
			resolved, err := filepath.EvalSymlinks(projectPath)
			if err != nil {
				resolved = projectPath
			}
			if seen[resolved] {
				continue
			}
			seen[resolved] = true

			projects = append(projects, s.buildRecord(name, resolved, group))
		}
	}

	return projects
}

// buildRecord runs the providers against one project directory.
func (s *Scanner) buildRecord(name, path, group string) Project {
	status := s.status.Read(path)

	modified := status.LastCommit
	if !status.IsRepo() {
		modified = fallbackModTime(path)
	}

	hasDoc := false
	if s.docs != nil {
		hasDoc = s.docs.HasDoc(name)
	}

	return Project{
		Name:         name,
		Path:         path,
		Group:        group,
		Git:          status,
		LastModified: modified,
		Labels:       s.labels.Scan(path),
		HasDoc:       hasDoc,
	}
}

// skipName filters excluded names, hidden directories, and macOS junk.
func skipName(name string, exclude map[string]bool) bool {
	if exclude[name] {
		return true
	}
	if strings.HasPrefix(name, ".") {
		return true
	}
	return name == ".DS_Store"
}

// fallbackModTime computes a modification time for non-git projects:
// the newest mtime among visible direct children, or the directory's
// own mtime if it has no visible children.
func fallbackModTime(path string) time.Time {
	var newest time.Time

	entries, err := os.ReadDir(path)
	if err == nil {
		for _, entry := range entries {
			if strings.HasPrefix(entry.Name(), ".") {
				continue
			}
			info, err := entry.Info()
			if err != nil {
				continue
			}
			if info.ModTime().After(newest) {
				newest = info.ModTime()
			}
		}
	}

	if newest.IsZero() {
		if info, err := os.Stat(path); err == nil {
			newest = info.ModTime()
		}
	}

	return newest
}
