package model

import (
	"errors"
	"fmt"
	"strings"
)

var ErrIndexOutOfRange = errors.New("model: task index out of range")

// IndexError reports a 0-based index outside the list. It satisfies
// errors.Is(err, ErrIndexOutOfRange).
type IndexError struct {
	Index int
	Size  int
}

func (e *IndexError) Error() string {
	if e.Size == 0 {
		return fmt.Sprintf("task number %d does not exist, the list is empty", e.Index+1)
	}
	return fmt.Sprintf("task number %d does not exist, pick a number from 1 to %d", e.Index+1, e.Size)
}

func (e *IndexError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}

// TaskList is the ordered task collection of one session. Indices are 0-based.
type TaskList struct {
	tasks []Task
}

func NewTaskList(tasks []Task) *TaskList {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if t != nil {
			out = append(out, t)
		}
	}
	return &TaskList{tasks: out}
}

func (l *TaskList) Add(t Task) {
	l.tasks = append(l.tasks, t)
}

// InsertAt panics when index is outside [0, Size()].
func (l *TaskList) InsertAt(index int, t Task) {
	if index < 0 || index > len(l.tasks) {
		panic(fmt.Sprintf("model: insert index %d outside [0, %d]", index, len(l.tasks)))
	}
	l.tasks = append(l.tasks, nil)
	copy(l.tasks[index+1:], l.tasks[index:])
	l.tasks[index] = t
}

func (l *TaskList) RemoveAt(index int) (Task, error) {
	if err := l.check(index); err != nil {
		return nil, err
	}
	removed := l.tasks[index]
	l.tasks = append(l.tasks[:index], l.tasks[index+1:]...)
	return removed, nil
}

func (l *TaskList) Get(index int) (Task, error) {
	if err := l.check(index); err != nil {
		return nil, err
	}
	return l.tasks[index], nil
}

func (l *TaskList) MarkDone(index int) (Task, error) {
	t, err := l.Get(index)
	if err != nil {
		return nil, err
	}
	t.MarkDone()
	return t, nil
}

func (l *TaskList) MarkNotDone(index int) (Task, error) {
	t, err := l.Get(index)
	if err != nil {
		return nil, err
	}
	t.MarkNotDone()
	return t, nil
}

func (l *TaskList) Size() int     { return len(l.tasks) }
func (l *TaskList) IsEmpty() bool { return len(l.tasks) == 0 }

// IndexOf returns the position of the task with the given identity, or -1.
func (l *TaskList) IndexOf(id string) int {
	for i, t := range l.tasks {
		if t.ID() == id {
			return i
		}
	}
	return -1
}

// Find matches keyword case-insensitively against descriptions, keeping list order.
func (l *TaskList) Find(keyword string) []Task {
	needle := strings.ToLower(keyword)
	out := make([]Task, 0)
	for _, t := range l.tasks {
		if strings.Contains(strings.ToLower(t.Description()), needle) {
			out = append(out, t)
		}
	}
	return out
}

// Tasks returns a copy of the backing slice; the tasks themselves are shared.
func (l *TaskList) Tasks() []Task {
	return append([]Task(nil), l.tasks...)
}

func (l *TaskList) check(index int) error {
	if index < 0 || index >= len(l.tasks) {
		return &IndexError{Index: index, Size: len(l.tasks)}
	}
	return nil
}
