// pattern: Imperative Shell
package instance

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

const lockFileName = "projpick.lock"

// Lock acquires an exclusive file lock for single-instance
// enforcement. Two pickers would race on the rotating log file.
// Returns the flock handle (caller must defer Unlock) or an error if
// another instance already holds the lock.
func Lock(dataDir string) (*flock.Flock, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}

	lockPath := filepath.Join(dataDir, lockFileName)
	fl := flock.New(lockPath)
	locked, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("another projpick instance is already running")
	}
	return fl, nil
}

// Unlock releases the file lock.
func Unlock(fl *flock.Flock) {
	if fl != nil {
		_ = fl.Unlock()
	}
}
