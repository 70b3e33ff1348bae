package commands

import "github.com/sandeepkv93/taskline/internal/model"

// Effect is the undo memory captured when an undoable command runs. It is
// written once during execution and only read afterwards.
type Effect interface {
	effect()
}

// Added records the task instance appended and where it landed.
type Added struct {
	Task  model.Task
	Index int
}

// Removed records the deleted task and its original position.
type Removed struct {
	Task  model.Task
	Index int
}

// Toggled records the done flag before and after a mark or unmark.
type Toggled struct {
	Index     int
	PriorDone bool
	Done      bool
}

func (Added) effect()   {}
func (Removed) effect() {}
func (Toggled) effect() {}

// Entry pairs an executed command with its effect.
type Entry struct {
	Command Command
	Effect  Effect
}

type stack []Entry

func (s *stack) push(e Entry) { *s = append(*s, e) }

func (s stack) peek() (Entry, bool) {
	if len(s) == 0 {
		return Entry{}, false
	}
	return s[len(s)-1], true
}

func (s *stack) pop() {
	old := *s
	old[len(old)-1] = Entry{}
	*s = old[:len(old)-1]
}
