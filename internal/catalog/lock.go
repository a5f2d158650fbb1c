package catalog

import (
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"tunecard/internal/services"
)

// SessionLock guards the state directory against concurrent sessions that
// would race on the snapshot file.
type SessionLock struct {
	lock *flock.Flock
}

// AcquireSessionLock takes an exclusive lock on path without blocking.
// A held lock means another session is live, which is a setup error.
func AcquireSessionLock(path string) (*SessionLock, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "catalog", "acquire lock", "create state directory", err)
	}

	lock := flock.New(path)
	acquired, err := lock.TryLock()
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "catalog", "acquire lock", "lock state directory", err)
	}
	if !acquired {
		return nil, services.Wrap(services.ErrConfiguration, "catalog", "acquire lock", "another session holds the state directory lock", nil)
	}
	return &SessionLock{lock: lock}, nil
}

// Release drops the lock. Safe to call on a nil lock.
func (l *SessionLock) Release() error {
	if l == nil || l.lock == nil {
		return nil
	}
	return l.lock.Unlock()
}
