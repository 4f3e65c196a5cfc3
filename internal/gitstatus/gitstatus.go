// pattern: Imperative Shell

package gitstatus

import (
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// State classifies a directory's relationship to git.
type State int

const (
	// NotARepo means the directory has no usable git repository.
	NotARepo State = iota
	// Clean means the working tree has no uncommitted changes.
	Clean
	// Dirty means the working tree has uncommitted changes.
	Dirty
)

// Status describes the git state of one project directory.
type Status struct {
	State      State
	Branch     string
	LastCommit time.Time // zero if NotARepo or no commits
}

// IsRepo reports whether the directory was recognized as a git repository.
func (s Status) IsRepo() bool {
	return s.State != NotARepo
}

// Reader extracts git status via the git binary.
type Reader struct{}

// NewReader creates a git status reader.
func NewReader() *Reader {
	return &Reader{}
}

// Read returns the git status for the directory at path.
// Any git or filesystem failure degrades to NotARepo; the scan
// must never abort because one repository is broken.
func (r *Reader) Read(path string) Status {
	if _, err := os.Stat(filepath.Join(path, ".git")); err != nil {
		return Status{State: NotARepo}
	}

	branch := currentBranch(path)

	state := Clean
	if isDirty(path) {
		state = Dirty
	}

	return Status{
		State:      state,
		Branch:     branch,
		LastCommit: lastCommitTime(path),
	}
}

// currentBranch returns the checked-out branch name, or "" on
// detached HEAD or any git failure.
func currentBranch(path string) string {
	out, err := gitOutput(path, "branch", "--show-current")
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}

// isDirty reports whether `git status --porcelain` produced any output.
// A failed status command counts as clean rather than dirty.
func isDirty(path string) bool {
	out, err := gitOutput(path, "status", "--porcelain")
	if err != nil {
		return false
	}
	return len(strings.TrimSpace(string(out))) > 0
}

// lastCommitTime returns the committer timestamp of HEAD, or the zero
// time if the repo has no commits or git fails.
func lastCommitTime(path string) time.Time {
	out, err := gitOutput(path, "log", "-1", "--format=%ct")
	if err != nil {
		return time.Time{}
	}
	return parseCommitTime(string(out))
}

// parseCommitTime parses `git log --format=%ct` output (unix seconds).
func parseCommitTime(out string) time.Time {
	secs, err := strconv.ParseInt(strings.TrimSpace(out), 10, 64)
	if err != nil {
		return time.Time{}
	}
	return time.Unix(secs, 0)
}

func gitOutput(dir string, args ...string) ([]byte, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	return cmd.Output()
}
