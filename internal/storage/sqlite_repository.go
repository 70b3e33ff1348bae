package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/sandeepkv93/taskline/internal/model"
)

const sqliteTimeLayout = model.TimestampLayout

// SQLiteStore keeps the task collection in a single table ordered by position.
type SQLiteStore struct {
	db     *sql.DB
	path   string
	lock   *instanceLock
	logger *slog.Logger
}

func NewSQLiteStore(db *sql.DB, logger *slog.Logger) (*SQLiteStore, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	if logger == nil {
		logger = slog.Default()
	}
	if err := MigrateUp(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &SQLiteStore{db: db, logger: logger}, nil
}

func OpenSQLite(path string, logger *slog.Logger) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, &PersistenceError{Op: "open", Path: path, Err: err}
		}
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, &PersistenceError{Op: "open", Path: path, Err: err}
	}
	store, err := NewSQLiteStore(db, logger)
	if err != nil {
		_ = db.Close()
		return nil, &PersistenceError{Op: "open", Path: path, Err: err}
	}
	store.path = path
	store.lock = acquireLock(path, store.logger)
	return store, nil
}

func (s *SQLiteStore) Locked() bool { return s.lock.Held() }

func (s *SQLiteStore) Close() error {
	lockErr := s.lock.release()
	if err := s.db.Close(); err != nil {
		return err
	}
	return lockErr
}

func (s *SQLiteStore) Load(ctx context.Context) (LoadResult, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, position, kind, done, description, due_at, start_at, end_at
		FROM tasks ORDER BY position ASC`)
	if err != nil {
		return LoadResult{}, &PersistenceError{Op: "load", Path: s.path, Err: err}
	}
	defer rows.Close()

	out := LoadResult{Tasks: make([]model.Task, 0)}
	for rows.Next() {
		var rec taskRow
		if err := rows.Scan(&rec.ID, &rec.Position, &rec.Kind, &rec.Done, &rec.Description, &rec.DueAt, &rec.StartAt, &rec.EndAt); err != nil {
			return LoadResult{}, &PersistenceError{Op: "load", Path: s.path, Err: err}
		}
		task, decodeErr := rec.toTask()
		if decodeErr != nil {
			d := Diagnostic{Line: rec.Position + 1, Text: rec.ID, Reason: decodeErr.Error()}
			s.logger.Warn("skipping stored task", "path", s.path, "id", rec.ID, "reason", d.Reason)
			out.Skipped = append(out.Skipped, d)
			continue
		}
		out.Tasks = append(out.Tasks, task)
	}
	if err := rows.Err(); err != nil {
		return LoadResult{}, &PersistenceError{Op: "load", Path: s.path, Err: err}
	}
	return out, nil
}

// Save replaces every row inside one transaction.
func (s *SQLiteStore) Save(ctx context.Context, tasks []model.Task) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return &PersistenceError{Op: "save", Path: s.path, Err: err}
	}
	if err := replaceAll(ctx, tx, tasks); err != nil {
		_ = tx.Rollback()
		return &PersistenceError{Op: "save", Path: s.path, Err: err}
	}
	if err := tx.Commit(); err != nil {
		return &PersistenceError{Op: "save", Path: s.path, Err: err}
	}
	return nil
}

func replaceAll(ctx context.Context, tx *sql.Tx, tasks []model.Task) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM tasks`); err != nil {
		return err
	}
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO tasks (id, position, kind, done, description, due_at, start_at, end_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for i, t := range tasks {
		rec, err := rowFromTask(i, t)
		if err != nil {
			return err
		}
		if _, err := stmt.ExecContext(ctx, rec.ID, rec.Position, rec.Kind, rec.Done, rec.Description, rec.DueAt, rec.StartAt, rec.EndAt); err != nil {
			return fmt.Errorf("insert task %s: %w", rec.ID, err)
		}
	}
	return nil
}

type taskRow struct {
	ID          string
	Position    int
	Kind        string
	Done        int
	Description string
	DueAt       sql.NullString
	StartAt     sql.NullString
	EndAt       sql.NullString
}

func rowFromTask(position int, t model.Task) (taskRow, error) {
	rec := taskRow{
		ID:          t.ID(),
		Position:    position,
		Kind:        string(t.Kind()),
		Done:        boolInt(t.IsDone()),
		Description: t.Description(),
	}
	switch v := t.(type) {
	case *model.ToDo:
	case *model.Deadline:
		rec.DueAt = nullTime(&v.Due)
	case *model.Event:
		rec.StartAt = nullTime(&v.Start)
		rec.EndAt = nullTime(&v.End)
	default:
		return taskRow{}, fmt.Errorf("%w: %T", ErrUnknownKind, t)
	}
	return rec, nil
}

func (r taskRow) toTask() (model.Task, error) {
	opts := []model.Option{model.WithID(r.ID), model.WithDone(r.Done == 1)}
	var task model.Task
	switch model.Kind(r.Kind) {
	case model.KindToDo:
		task = model.NewToDo(r.Description, opts...)
	case model.KindDeadline:
		due, err := parseRequiredTime(r.DueAt)
		if err != nil {
			return nil, err
		}
		task = model.NewDeadline(r.Description, due, opts...)
	case model.KindEvent:
		start, err := parseRequiredTime(r.StartAt)
		if err != nil {
			return nil, err
		}
		end, err := parseRequiredTime(r.EndAt)
		if err != nil {
			return nil, err
		}
		task = model.NewEvent(r.Description, start, end, opts...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, r.Kind)
	}
	if err := model.Validate(task); err != nil {
		return nil, err
	}
	return task, nil
}

func nullTime(v *time.Time) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: v.Format(sqliteTimeLayout), Valid: true}
}

func parseRequiredTime(v sql.NullString) (time.Time, error) {
	if !v.Valid || v.String == "" {
		return time.Time{}, fmt.Errorf("%w: missing timestamp", ErrMalformedLine)
	}
	return parseStoredTime(v.String)
}

func boolInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
