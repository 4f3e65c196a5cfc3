// pattern: Functional Core

package scan

import (
	"time"

	"projpick/internal/gitstatus"
	"projpick/internal/labels"
)

// Project represents one project directory found during scanning,
// with derived git and config metadata. Records are immutable once
// built; a rescan replaces the whole collection.
type Project struct {
	Name         string           // Directory base name (display name)
	Path         string           // Absolute path, stable identity within a scan
	Group        string           // Base name of the scan root it was found under
	Git          gitstatus.Status // NotARepo / Clean / Dirty with branch
	LastModified time.Time        // Last commit time, or newest child mtime for non-repos
	Labels       []labels.Label   // Detected Claude config artifacts, stable order
	HasDoc       bool             // Whether a matching doc exists in the docs folder
}
