package storage

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/sandeepkv93/taskline/internal/model"
)

// FileStore keeps tasks in a UTF-8 text file, one task per line.
type FileStore struct {
	path   string
	lock   *instanceLock
	logger *slog.Logger
}

// OpenFile prepares the data file at path, creating it and its parent
// directories when missing.
func OpenFile(path string, logger *slog.Logger) (*FileStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("storage: empty data file path")
	}
	if logger == nil {
		logger = slog.Default()
	}
	s := &FileStore{path: path, logger: logger}
	if err := s.ensureFile(); err != nil {
		return nil, &PersistenceError{Op: "open", Path: path, Err: err}
	}
	s.lock = acquireLock(path, logger)
	return s, nil
}

// Locked reports whether this store holds the advisory instance lock.
func (s *FileStore) Locked() bool { return s.lock.Held() }

func (s *FileStore) Close() error {
	return s.lock.release()
}

// Load reads every line independently. Lines that fail to decode are reported
// in LoadResult.Skipped and do not stop the rest of the file from loading.
func (s *FileStore) Load(ctx context.Context) (LoadResult, error) {
	if err := ctx.Err(); err != nil {
		return LoadResult{}, err
	}
	if err := s.ensureFile(); err != nil {
		return LoadResult{}, &PersistenceError{Op: "load", Path: s.path, Err: err}
	}
	f, err := os.Open(s.path)
	if err != nil {
		return LoadResult{}, &PersistenceError{Op: "load", Path: s.path, Err: err}
	}
	defer f.Close()

	out := LoadResult{Tasks: make([]model.Task, 0)}
	r := bufio.NewReader(f)
	lineNo := 0
	for {
		raw, readErr := r.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return LoadResult{}, &PersistenceError{Op: "load", Path: s.path, Err: readErr}
		}
		if raw == "" && readErr != nil {
			break
		}
		lineNo++
		line := strings.TrimRight(raw, "\r\n")
		if strings.TrimSpace(line) != "" {
			task, decodeErr := DecodeLine(line)
			if decodeErr != nil {
				d := Diagnostic{Line: lineNo, Text: line, Reason: decodeErr.Error()}
				s.logger.Warn("skipping stored task", "path", s.path, "line", lineNo, "reason", d.Reason)
				out.Skipped = append(out.Skipped, d)
			} else {
				out.Tasks = append(out.Tasks, task)
			}
		}
		if readErr != nil {
			break
		}
	}
	return out, nil
}

// Save overwrites the file with tasks in order. The write goes to a temporary
// file first and is renamed into place.
func (s *FileStore) Save(ctx context.Context, tasks []model.Task) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var b strings.Builder
	for _, t := range tasks {
		line, err := EncodeLine(t)
		if err != nil {
			return &PersistenceError{Op: "save", Path: s.path, Err: err}
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if err := s.ensureDir(); err != nil {
		return &PersistenceError{Op: "save", Path: s.path, Err: err}
	}
	mode := os.FileMode(0o644)
	if info, err := os.Stat(s.path); err == nil {
		mode = info.Mode().Perm()
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, []byte(b.String()), mode); err != nil {
		return &PersistenceError{Op: "save", Path: s.path, Err: err}
	}
	if err := os.Chmod(tmp, mode); err != nil {
		_ = os.Remove(tmp)
		return &PersistenceError{Op: "save", Path: s.path, Err: err}
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return &PersistenceError{Op: "save", Path: s.path, Err: err}
	}
	return nil
}

func (s *FileStore) ensureDir() error {
	dir := filepath.Dir(s.path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	return nil
}

func (s *FileStore) ensureFile() error {
	if err := s.ensureDir(); err != nil {
		return err
	}
	f, err := os.OpenFile(s.path, os.O_RDONLY|os.O_CREATE, 0o644)
	if err != nil {
		return err
	}
	return f.Close()
}
