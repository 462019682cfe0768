package runlock

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// FileName is the lock file created inside the cache directory.
const FileName = ".langcache.lock"

// ErrLocked reports that another process holds the run lock.
var ErrLocked = errors.New("another langcache run is in progress")

// Lock is an exclusive, process-level lock on a cache directory.
type Lock struct {
	path string
	lock *flock.Flock
}

// Acquire takes the lock at path without blocking. It returns ErrLocked when
// another holder exists.
func Acquire(path string) (*Lock, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}
	fl := flock.New(path)
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w (lock %s)", ErrLocked, path)
	}
	return &Lock{path: path, lock: fl}, nil
}

// AcquireDir takes the lock file inside cacheDir.
func AcquireDir(cacheDir string) (*Lock, error) {
	return Acquire(filepath.Join(cacheDir, FileName))
}

// Path returns the lock file location.
func (l *Lock) Path() string {
	if l == nil {
		return ""
	}
	return l.path
}

// Release unlocks. Releasing a nil lock is a no-op.
func (l *Lock) Release() error {
	if l == nil || l.lock == nil {
		return nil
	}
	if err := l.lock.Unlock(); err != nil {
		return fmt.Errorf("release lock: %w", err)
	}
	return nil
}
