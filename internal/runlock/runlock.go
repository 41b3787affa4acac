// Package runlock serializes access to a working directory. Two concurrent
// runs over the same recording would race on extracted audio and transcript
// sidecars, so each run takes an advisory file lock for its duration.
package runlock

import (
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"bestcut/internal/services"
)

// LockFileName is created inside the working directory.
const LockFileName = "bestcut.lock"

// Lock guards one working directory.
type Lock struct {
	path string
	lock *flock.Flock
}

// New prepares a lock for the given working directory, creating the
// directory if needed.
func New(workDir string) (*Lock, error) {
	if err := os.MkdirAll(workDir, 0o755); err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "runlock", "new", "ensure work dir", err)
	}
	path := filepath.Join(workDir, LockFileName)
	return &Lock{path: path, lock: flock.New(path)}, nil
}

// Acquire takes the lock without blocking. A held lock means another run is
// active on the same directory.
func (l *Lock) Acquire() error {
	ok, err := l.lock.TryLock()
	if err != nil {
		return services.Wrap(services.ErrConfiguration, "runlock", "acquire", "try lock", err)
	}
	if !ok {
		return services.Wrap(services.ErrConfiguration, "runlock", "acquire",
			"another run is active in "+filepath.Dir(l.path), nil)
	}
	return nil
}

// Release drops the lock. Safe to call when the lock was never acquired.
func (l *Lock) Release() error {
	return l.lock.Unlock()
}

// Path returns the lock file location.
func (l *Lock) Path() string {
	return l.path
}
