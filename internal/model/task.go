package model

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	ErrEmptyDescription = errors.New("model: task description is required")
	ErrInvalidKind      = errors.New("model: invalid task kind")
)

type Kind string

const (
	KindToDo     Kind = "T"
	KindDeadline Kind = "D"
	KindEvent    Kind = "E"
)

func (k Kind) IsValid() bool {
	switch k {
	case KindToDo, KindDeadline, KindEvent:
		return true
	default:
		return false
	}
}

// Task is implemented only by *ToDo, *Deadline and *Event.
type Task interface {
	ID() string
	Kind() Kind
	Description() string
	IsDone() bool
	MarkDone()
	MarkNotDone()
	Render() string
	sealed()
}

type Option func(*base)

// WithID keeps a previously issued identity instead of minting a new one.
func WithID(id string) Option {
	return func(b *base) {
		if strings.TrimSpace(id) != "" {
			b.id = id
		}
	}
}

func WithDone(done bool) Option {
	return func(b *base) { b.done = done }
}

type base struct {
	id          string
	description string
	done        bool
}

func newBase(description string, opts []Option) base {
	b := base{id: NewID(), description: description}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

func (b *base) ID() string          { return b.id }
func (b *base) Description() string { return b.description }
func (b *base) IsDone() bool        { return b.done }
func (b *base) MarkDone()           { b.done = true }
func (b *base) MarkNotDone()        { b.done = false }
func (b *base) sealed()             {}

func (b *base) render(kind Kind) string {
	mark := " "
	if b.done {
		mark = "X"
	}
	return fmt.Sprintf("[%s][%s] %s", kind, mark, b.description)
}

type ToDo struct {
	base
}

func NewToDo(description string, opts ...Option) *ToDo {
	return &ToDo{base: newBase(description, opts)}
}

func (t *ToDo) Kind() Kind     { return KindToDo }
func (t *ToDo) Render() string { return t.render(KindToDo) }

type Deadline struct {
	base
	Due time.Time
}

func NewDeadline(description string, due time.Time, opts ...Option) *Deadline {
	return &Deadline{base: newBase(description, opts), Due: due}
}

func (d *Deadline) Kind() Kind { return KindDeadline }

func (d *Deadline) Render() string {
	return fmt.Sprintf("%s (by: %s)", d.render(KindDeadline), FormatDisplay(d.Due))
}

// Event does not require Start to precede End.
type Event struct {
	base
	Start time.Time
	End   time.Time
}

func NewEvent(description string, start, end time.Time, opts ...Option) *Event {
	return &Event{base: newBase(description, opts), Start: start, End: end}
}

func (e *Event) Kind() Kind { return KindEvent }

func (e *Event) Render() string {
	return fmt.Sprintf("%s (from: %s to: %s)", e.render(KindEvent), FormatDisplay(e.Start), FormatDisplay(e.End))
}

func NewID() string {
	return ulid.Make().String()
}

func Validate(t Task) error {
	if t == nil {
		return errors.New("model: nil task")
	}
	if strings.TrimSpace(t.Description()) == "" {
		return ErrEmptyDescription
	}
	if !t.Kind().IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidKind, t.Kind())
	}
	return nil
}
