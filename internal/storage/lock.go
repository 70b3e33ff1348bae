package storage

import (
	"log/slog"

	"github.com/gofrs/flock"
)

// instanceLock is an advisory lock beside the data file. Failing to take it
// only produces a warning; the store keeps working.
type instanceLock struct {
	fl   *flock.Flock
	held bool
}

func acquireLock(dataPath string, logger *slog.Logger) *instanceLock {
	fl := flock.New(dataPath + ".lock")
	ok, err := fl.TryLock()
	switch {
	case err != nil:
		logger.Warn("could not lock data file", "path", dataPath, "err", err)
	case !ok:
		logger.Warn("data file is in use by another taskline instance", "path", dataPath)
	}
	return &instanceLock{fl: fl, held: err == nil && ok}
}

func (l *instanceLock) Held() bool {
	return l != nil && l.held
}

func (l *instanceLock) release() error {
	if l == nil || !l.held {
		return nil
	}
	l.held = false
	return l.fl.Unlock()
}
