package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sandeepkv93/taskline/internal/model"
)

var (
	ErrNothingToUndo   = errors.New("commands: nothing to undo")
	ErrNothingToRedo   = errors.New("commands: nothing to redo")
	ErrHistoryMismatch = errors.New("commands: history no longer matches the task list")
)

type Result struct {
	Message string
	Exit    bool
}

// Persister writes the full collection after every mutation.
type Persister interface {
	Save(ctx context.Context, tasks []model.Task) error
}

// Engine applies commands to a TaskList and keeps undo/redo history for the
// session. It is not safe for concurrent use.
type Engine struct {
	tasks *model.TaskList
	store Persister
	undo  stack
	redo  stack
}

func NewEngine(tasks *model.TaskList, store Persister) *Engine {
	return &Engine{tasks: tasks, store: store}
}

func (e *Engine) UndoDepth() int { return len(e.undo) }
func (e *Engine) RedoDepth() int { return len(e.redo) }

// Execute runs cmd. A failed save still leaves the in-memory change (and its
// history entry) in place; the save error is returned next to the result.
func (e *Engine) Execute(ctx context.Context, cmd Command) (Result, error) {
	switch cmd.Type {
	case TypeList:
		return Result{Message: renderList(e.tasks)}, nil
	case TypeFind:
		return Result{Message: renderMatches(e.tasks.Find(cmd.Find.Keyword))}, nil
	case TypeHelp:
		return Result{Message: Usage}, nil
	case TypeBye:
		res := Result{Message: "Bye. Hope to see you again soon!", Exit: true}
		return res, e.persist(ctx)
	case TypeUndo:
		return e.Undo(ctx)
	case TypeRedo:
		return e.Redo(ctx)
	}
	if !cmd.IsUndoable() {
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}

	effect, msg, err := e.apply(cmd)
	if err != nil {
		return Result{}, err
	}
	e.undo.push(Entry{Command: cmd, Effect: effect})
	e.redo = nil
	return Result{Message: msg}, e.persist(ctx)
}

func (e *Engine) Undo(ctx context.Context) (Result, error) {
	entry, ok := e.undo.peek()
	if !ok {
		return Result{}, ErrNothingToUndo
	}
	if err := e.revert(entry.Effect); err != nil {
		return Result{}, err
	}
	e.undo.pop()
	e.redo.push(entry)
	return Result{Message: fmt.Sprintf("Undid: %s", entry.Command.Raw)}, e.persist(ctx)
}

func (e *Engine) Redo(ctx context.Context) (Result, error) {
	entry, ok := e.redo.peek()
	if !ok {
		return Result{}, ErrNothingToRedo
	}
	if err := e.reapply(entry.Effect); err != nil {
		return Result{}, err
	}
	e.redo.pop()
	e.undo.push(entry)
	return Result{Message: fmt.Sprintf("Redid: %s", entry.Command.Raw)}, e.persist(ctx)
}

func (e *Engine) apply(cmd Command) (Effect, string, error) {
	switch cmd.Type {
	case TypeToDo, TypeDeadline, TypeEvent:
		task := cmd.Add.Task
		e.tasks.Add(task)
		msg := fmt.Sprintf("Got it. I've added this task:\n  %s\n%s", task.Render(), e.countLine())
		return Added{Task: task, Index: e.tasks.Size() - 1}, msg, nil
	case TypeDelete:
		idx := cmd.Target.Index
		removed, err := e.tasks.RemoveAt(idx)
		if err != nil {
			return nil, "", err
		}
		msg := fmt.Sprintf("Noted. I've removed this task:\n  %s\n%s", removed.Render(), e.countLine())
		return Removed{Task: removed, Index: idx}, msg, nil
	case TypeMark, TypeUnmark:
		idx := cmd.Target.Index
		task, err := e.tasks.Get(idx)
		if err != nil {
			return nil, "", err
		}
		prior := task.IsDone()
		done := cmd.Type == TypeMark
		if _, err := e.setDone(idx, done); err != nil {
			return nil, "", err
		}
		msg := fmt.Sprintf("Nice! I've marked this task as done:\n  %s", task.Render())
		if !done {
			msg = fmt.Sprintf("OK, I've marked this task as not done yet:\n  %s", task.Render())
		}
		return Toggled{Index: idx, PriorDone: prior, Done: done}, msg, nil
	default:
		return nil, "", fmt.Errorf("commands: %s is not undoable", cmd.Type)
	}
}

func (e *Engine) revert(effect Effect) error {
	switch v := effect.(type) {
	case Added:
		idx := e.tasks.IndexOf(v.Task.ID())
		if idx < 0 {
			return ErrHistoryMismatch
		}
		_, err := e.tasks.RemoveAt(idx)
		return err
	case Removed:
		if v.Index > e.tasks.Size() {
			return ErrHistoryMismatch
		}
		e.tasks.InsertAt(v.Index, v.Task)
		return nil
	case Toggled:
		_, err := e.setDone(v.Index, v.PriorDone)
		return err
	default:
		return fmt.Errorf("commands: unknown effect %T", effect)
	}
}

func (e *Engine) reapply(effect Effect) error {
	switch v := effect.(type) {
	case Added:
		if v.Index > e.tasks.Size() {
			return ErrHistoryMismatch
		}
		e.tasks.InsertAt(v.Index, v.Task)
		return nil
	case Removed:
		idx := e.tasks.IndexOf(v.Task.ID())
		if idx < 0 {
			return ErrHistoryMismatch
		}
		_, err := e.tasks.RemoveAt(idx)
		return err
	case Toggled:
		_, err := e.setDone(v.Index, v.Done)
		return err
	default:
		return fmt.Errorf("commands: unknown effect %T", effect)
	}
}

func (e *Engine) setDone(idx int, done bool) (model.Task, error) {
	if done {
		return e.tasks.MarkDone(idx)
	}
	return e.tasks.MarkNotDone(idx)
}

func (e *Engine) persist(ctx context.Context) error {
	if e.store == nil {
		return nil
	}
	return e.store.Save(ctx, e.tasks.Tasks())
}

func (e *Engine) countLine() string {
	n := e.tasks.Size()
	if n == 1 {
		return "Now you have 1 task in the list."
	}
	return fmt.Sprintf("Now you have %d tasks in the list.", n)
}

func renderList(tasks *model.TaskList) string {
	if tasks.IsEmpty() {
		return "Your task list is empty!"
	}
	return numbered("Here are the tasks in your list:", tasks.Tasks())
}

func renderMatches(matches []model.Task) string {
	if len(matches) == 0 {
		return "No matching tasks found!"
	}
	return numbered("Here are the matching tasks in your list:", matches)
}

func numbered(header string, tasks []model.Task) string {
	var b strings.Builder
	b.WriteString(header)
	for i, t := range tasks {
		fmt.Fprintf(&b, "\n%d. %s", i+1, t.Render())
	}
	return b.String()
}
