package commands

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sandeepkv93/taskline/internal/model"
)

type Type string

const (
	TypeList     Type = "list"
	TypeMark     Type = "mark"
	TypeUnmark   Type = "unmark"
	TypeDelete   Type = "delete"
	TypeToDo     Type = "todo"
	TypeDeadline Type = "deadline"
	TypeEvent    Type = "event"
	TypeFind     Type = "find"
	TypeUndo     Type = "undo"
	TypeRedo     Type = "redo"
	TypeHelp     Type = "help"
	TypeBye      Type = "bye"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeInvalidDateTime ErrorCode = "invalid_datetime"
)

// CommandError is returned by Parse. Message is meant for the user.
type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type AddArgs struct {
	Task model.Task
}

// TargetArgs holds a 0-based task index. It is not bounds-checked until execution.
type TargetArgs struct {
	Index int
}

type FindArgs struct {
	Keyword string
}

type Command struct {
	Type   Type
	Raw    string
	Add    *AddArgs
	Target *TargetArgs
	Find   *FindArgs
}

// IsUndoable reports whether executing the command records history.
func (c Command) IsUndoable() bool {
	switch c.Type {
	case TypeToDo, TypeDeadline, TypeEvent, TypeDelete, TypeMark, TypeUnmark:
		return true
	default:
		return false
	}
}

func (c Command) IsExit() bool {
	return c.Type == TypeBye
}

const (
	bySep   = " /by "
	fromSep = " /from "
	toSep   = " /to "
)

// Parse turns one input line into a Command. It never touches task state.
func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "type a command to get started, or 'help' to see them all"}
	}
	head, rest, _ := strings.Cut(raw, " ")
	rest = strings.TrimSpace(rest)

	switch Type(head) {
	case TypeList, TypeUndo, TypeRedo, TypeHelp, TypeBye:
		return Command{Type: Type(head), Raw: raw}, nil
	case TypeMark, TypeUnmark, TypeDelete:
		return parseTarget(Type(head), raw, rest)
	case TypeToDo:
		return parseToDo(raw, rest)
	case TypeDeadline:
		return parseDeadline(raw, rest)
	case TypeEvent:
		return parseEvent(raw, rest)
	case TypeFind:
		return parseFind(raw, rest)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unrecognized command: %s", head)}
	}
}

func parseTarget(typ Type, raw, arg string) (Command, error) {
	if arg == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s requires a task number", typ)}
	}
	n, err := strconv.Atoi(arg)
	if err != nil {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("task number must be a valid integer, got %q", arg)}
	}
	if n < 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "task number must be a positive integer"}
	}
	return Command{Type: typ, Raw: raw, Target: &TargetArgs{Index: n - 1}}, nil
}

func parseToDo(raw, arg string) (Command, error) {
	if err := checkDescription(arg); err != nil {
		return Command{}, err
	}
	return Command{Type: TypeToDo, Raw: raw, Add: &AddArgs{Task: model.NewToDo(arg)}}, nil
}

func parseDeadline(raw, arg string) (Command, error) {
	desc, when, ok := strings.Cut(arg, bySep)
	if !ok {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("deadline requires a description and /by <%s>", model.TimestampHint)}
	}
	desc = strings.TrimSpace(desc)
	if err := checkDescription(desc); err != nil {
		return Command{}, err
	}
	due, err := parseWhen(when)
	if err != nil {
		return Command{}, err
	}
	return Command{Type: TypeDeadline, Raw: raw, Add: &AddArgs{Task: model.NewDeadline(desc, due)}}, nil
}

func parseEvent(raw, arg string) (Command, error) {
	desc, window, ok := strings.Cut(arg, fromSep)
	if !ok {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("event requires a description and /from <%s>", model.TimestampHint)}
	}
	from, to, ok := strings.Cut(window, toSep)
	if !ok {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("event requires /to <%s>", model.TimestampHint)}
	}
	desc = strings.TrimSpace(desc)
	if err := checkDescription(desc); err != nil {
		return Command{}, err
	}
	start, err := parseWhen(from)
	if err != nil {
		return Command{}, err
	}
	end, err := parseWhen(to)
	if err != nil {
		return Command{}, err
	}
	return Command{Type: TypeEvent, Raw: raw, Add: &AddArgs{Task: model.NewEvent(desc, start, end)}}, nil
}

// checkDescription rejects descriptions that cannot be stored as one line.
func checkDescription(desc string) error {
	if desc == "" {
		return &CommandError{Code: ErrCodeInvalidArgument, Message: "description cannot be empty"}
	}
	if strings.ContainsAny(desc, "\r\n") {
		return &CommandError{Code: ErrCodeInvalidArgument, Message: "description must fit on a single line"}
	}
	return nil
}

func parseFind(raw, arg string) (Command, error) {
	if arg == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "find requires a keyword"}
	}
	return Command{Type: TypeFind, Raw: raw, Find: &FindArgs{Keyword: arg}}, nil
}

func parseWhen(raw string) (time.Time, error) {
	out, err := model.ParseTimestamp(raw)
	if err != nil {
		return time.Time{}, &CommandError{
			Code:    ErrCodeInvalidDateTime,
			Message: fmt.Sprintf("invalid date/time %q, use %s", strings.TrimSpace(raw), model.TimestampHint),
		}
	}
	return out, nil
}
