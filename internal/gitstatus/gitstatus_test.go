package gitstatus

import (
	"testing"
	"time"
)

func TestParseCommitTime(t *testing.T) {
	got := parseCommitTime("1700000000\n")
	want := time.Unix(1700000000, 0)
	if !got.Equal(want) {
		t.Errorf("parseCommitTime = %v, want %v", got, want)
	}
}

func TestParseCommitTime_Empty(t *testing.T) {
	if got := parseCommitTime(""); !got.IsZero() {
		t.Errorf("expected zero time for empty output, got %v", got)
	}
}

func TestParseCommitTime_Garbage(t *testing.T) {
	if got := parseCommitTime("fatal: your current branch does not have any commits"); !got.IsZero() {
		t.Errorf("expected zero time for garbage output, got %v", got)
	}
}

func TestRead_NotARepo(t *testing.T) {
	tmpDir := t.TempDir()

	status := NewReader().Read(tmpDir)

	if status.State != NotARepo {
		t.Errorf("State = %v, want NotARepo", status.State)
	}
	if status.IsRepo() {
		t.Error("IsRepo should be false for a plain directory")
	}
	if !status.LastCommit.IsZero() {
		t.Errorf("LastCommit should be zero, got %v", status.LastCommit)
	}
}

func TestRead_MissingDir(t *testing.T) {
	status := NewReader().Read("/nonexistent/project")

	if status.State != NotARepo {
		t.Errorf("State = %v, want NotARepo for missing directory", status.State)
	}
}
