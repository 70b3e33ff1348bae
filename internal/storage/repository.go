package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/sandeepkv93/taskline/internal/model"
)

var (
	ErrMalformedLine = errors.New("storage: malformed line")
	ErrUnknownKind   = errors.New("storage: unknown task type")
)

// Store persists the whole task collection. Save always rewrites every task
// in the given order.
type Store interface {
	Load(ctx context.Context) (LoadResult, error)
	Save(ctx context.Context, tasks []model.Task) error
	Close() error
}

// PersistenceError wraps an I/O failure during load or save.
type PersistenceError struct {
	Op   string
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("storage: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)
