package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/sandeepkv93/taskline/internal/commands"
	"github.com/sandeepkv93/taskline/internal/model"
	"github.com/sandeepkv93/taskline/internal/storage"
)

// Response is what a presentation adapter shows after one input line.
type Response struct {
	Text    string
	Exit    bool
	IsError bool
}

// Session owns the task list, its store and the undo/redo engine for one
// running process.
type Session struct {
	tasks   *model.TaskList
	store   storage.Store
	engine  *commands.Engine
	logger  *slog.Logger
	skipped []storage.Diagnostic
	loadErr error
}

// New loads the collection from store. A failed load degrades to an empty
// list; the failure is logged and kept in LoadError.
func New(ctx context.Context, store storage.Store, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Session{store: store, logger: logger}
	res, err := store.Load(ctx)
	if err != nil {
		logger.Warn("could not load tasks, starting with an empty list", "err", err)
		s.loadErr = err
		res = storage.LoadResult{}
	}
	s.tasks = model.NewTaskList(res.Tasks)
	s.skipped = res.Skipped
	s.engine = commands.NewEngine(s.tasks, store)
	logger.Debug("session ready", "tasks", s.tasks.Size(), "skipped", len(s.skipped))
	return s
}

// Skipped lists stored records that could not be decoded during load.
func (s *Session) Skipped() []storage.Diagnostic {
	return append([]storage.Diagnostic(nil), s.skipped...)
}

func (s *Session) LoadError() error { return s.loadErr }

func (s *Session) Len() int { return s.tasks.Size() }

// Notice summarizes load problems for the user, or returns "".
func (s *Session) Notice() string {
	switch {
	case s.loadErr != nil:
		return "Could not read saved tasks. Starting with an empty list."
	case len(s.skipped) == 1:
		return "Skipped 1 unreadable line in the saved tasks."
	case len(s.skipped) > 1:
		return fmt.Sprintf("Skipped %d unreadable lines in the saved tasks.", len(s.skipped))
	default:
		return ""
	}
}

// Execute parses and runs one input line and always produces user-facing text.
func (s *Session) Execute(ctx context.Context, input string) Response {
	cmd, err := commands.Parse(input)
	if err != nil {
		var ce *commands.CommandError
		if errors.As(err, &ce) {
			return Response{Text: oops(ce.Message), IsError: true}
		}
		return Response{Text: oops(err.Error()), IsError: true}
	}
	s.logger.Debug("executing command", "type", cmd.Type)

	res, err := s.engine.Execute(ctx, cmd)
	if err == nil {
		return Response{Text: res.Message, Exit: res.Exit}
	}

	var (
		pe *storage.PersistenceError
		ie *model.IndexError
	)
	switch {
	case errors.Is(err, commands.ErrNothingToUndo):
		return Response{Text: "Nothing to undo!"}
	case errors.Is(err, commands.ErrNothingToRedo):
		return Response{Text: "Nothing to redo!"}
	case errors.As(err, &ie):
		return Response{Text: oops(capitalize(ie.Error()) + "."), IsError: true}
	case errors.As(err, &pe):
		s.logger.Error("could not save tasks", "err", err)
		text := oops(fmt.Sprintf("Your change was applied but could not be saved: %v", pe.Err))
		if res.Message != "" {
			text = res.Message + "\n" + text
		}
		return Response{Text: text, Exit: res.Exit, IsError: true}
	default:
		s.logger.Error("command failed", "type", cmd.Type, "err", err)
		return Response{Text: oops(err.Error()), Exit: res.Exit, IsError: true}
	}
}

func (s *Session) Close() error {
	return s.store.Close()
}

func oops(msg string) string {
	return "OOPS!!! " + msg
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:]
	}
	return s
}
