package storage

import (
	"fmt"
	"log/slog"
)

// Open returns the Store for backend ("file" or "sqlite") rooted at path.
func Open(backend, path string, logger *slog.Logger) (Store, error) {
	switch backend {
	case "", BackendFile:
		s, err := OpenFile(path, logger)
		if err != nil {
			return nil, err
		}
		return s, nil
	case BackendSQLite:
		s, err := OpenSQLite(path, logger)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("storage: unknown backend %q", backend)
	}
}
