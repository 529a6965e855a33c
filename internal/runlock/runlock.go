// Package runlock enforces single-instance execution for mutating commands.
//
// Two concurrent runs over the same tree would race each other's existence
// checks, so every command that moves or deletes files takes a file lock
// before touching anything. Dry runs do not lock.
package runlock

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrHeld is returned when another media-janitor process holds the lock.
var ErrHeld = errors.New("another media-janitor run is already in progress")

// Lock is a held run lock. Release it with Unlock.
type Lock struct {
	path string
	lock *flock.Flock
}

// DefaultPath returns the lock file location for a run rooted at dir.
func DefaultPath(dir string) string {
	return filepath.Join(dir, ".media-janitor.lock")
}

// Acquire takes the lock at path without blocking. It fails with ErrHeld when
// the lock is already taken by another process.
func Acquire(path string) (*Lock, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create lock directory: %w", err)
		}
	}
	fl := flock.New(path)
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock %s: %w", path, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w (lock file %s)", ErrHeld, path)
	}
	return &Lock{path: path, lock: fl}, nil
}

// Path returns the lock file location.
func (l *Lock) Path() string {
	return l.path
}

// Unlock releases the lock and removes the lock file on a best-effort basis.
func (l *Lock) Unlock() error {
	if l == nil || l.lock == nil {
		return nil
	}
	err := l.lock.Unlock()
	_ = os.Remove(l.path)
	l.lock = nil
	return err
}
