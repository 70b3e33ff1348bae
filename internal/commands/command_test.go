package commands

import (
	"errors"
	"testing"

	"github.com/sandeepkv93/taskline/internal/model"
)

func TestParseSupportedCommands(t *testing.T) {
	cases := []struct {
		in       string
		typeWant Type
	}{
		{"list", TypeList},
		{"  list  ", TypeList},
		{"mark 2", TypeMark},
		{"unmark 1", TypeUnmark},
		{"delete 3", TypeDelete},
		{"todo Buy milk", TypeToDo},
		{"deadline Pay rent /by 2025-01-01 1800", TypeDeadline},
		{"event Trip /from 2025-01-01 1800 /to 2025-01-03 0900", TypeEvent},
		{"find milk", TypeFind},
		{"undo", TypeUndo},
		{"redo", TypeRedo},
		{"help", TypeHelp},
		{"bye", TypeBye},
	}

	for _, tc := range cases {
		cmd, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("parse %q failed: %v", tc.in, err)
		}
		if cmd.Type != tc.typeWant {
			t.Fatalf("parse %q type = %s, want %s", tc.in, cmd.Type, tc.typeWant)
		}
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		in   string
		code ErrorCode
	}{
		{"", ErrCodeEmptyInput},
		{"   ", ErrCodeEmptyInput},
		{"blah", ErrCodeUnknownCommand},
		{"List", ErrCodeUnknownCommand},
		{"mark", ErrCodeInvalidArgument},
		{"mark two", ErrCodeInvalidArgument},
		{"mark 0", ErrCodeInvalidArgument},
		{"delete -3", ErrCodeInvalidArgument},
		{"delete 1 2", ErrCodeInvalidArgument},
		{"todo", ErrCodeInvalidArgument},
		{"todo    ", ErrCodeInvalidArgument},
		{"deadline Pay rent", ErrCodeInvalidArgument},
		{"deadline Pay rent /by", ErrCodeInvalidArgument},
		{"deadline  /by 2025-01-01 1800", ErrCodeInvalidArgument},
		{"deadline Pay rent /by tomorrow", ErrCodeInvalidDateTime},
		{"deadline Pay rent /by 2025-01-01 18:00", ErrCodeInvalidDateTime},
		{"event Trip", ErrCodeInvalidArgument},
		{"event Trip /from 2025-01-01 1800", ErrCodeInvalidArgument},
		{"event Trip /from soon /to 2025-01-01 1800", ErrCodeInvalidDateTime},
		{"event Trip /from 2025-01-01 1800 /to later", ErrCodeInvalidDateTime},
		{"find", ErrCodeInvalidArgument},
		{"todo buy\nmilk", ErrCodeInvalidArgument},
		{"todo buy\rmilk", ErrCodeInvalidArgument},
		{"deadline Pay\nrent /by 2025-01-01 1800", ErrCodeInvalidArgument},
		{"event Trip\nabroad /from 2025-01-01 1800 /to 2025-01-02 1800", ErrCodeInvalidArgument},
	}
	for _, tc := range cases {
		_, err := Parse(tc.in)
		var ce *CommandError
		if !errors.As(err, &ce) {
			t.Fatalf("parse %q: expected CommandError, got %v", tc.in, err)
		}
		if ce.Code != tc.code {
			t.Fatalf("parse %q: code = %s, want %s (%s)", tc.in, ce.Code, tc.code, ce.Message)
		}
	}
}

func TestParseTodoMessage(t *testing.T) {
	_, err := Parse("todo ")
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Message != "description cannot be empty" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestParseIndexIsZeroBasedAndUnbounded(t *testing.T) {
	cmd, err := Parse("delete 999")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Target == nil || cmd.Target.Index != 998 {
		t.Fatalf("unexpected target: %+v", cmd.Target)
	}
}

func TestParseBuildsTasks(t *testing.T) {
	cmd, err := Parse("todo  Buy milk ")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if got := cmd.Add.Task.Render(); got != "[T][ ] Buy milk" {
		t.Fatalf("todo render = %q", got)
	}

	cmd, err = Parse("deadline Pay rent /by 2025-01-01 1800")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	d, ok := cmd.Add.Task.(*model.Deadline)
	if !ok {
		t.Fatalf("expected deadline, got %T", cmd.Add.Task)
	}
	if d.Description() != "Pay rent" || model.FormatTimestamp(d.Due) != "2025-01-01 1800" {
		t.Fatalf("unexpected deadline: %q", d.Render())
	}

	cmd, err = Parse("event Launch party /from 2025-02-01 1900 /to 2025-02-01 2300")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	ev, ok := cmd.Add.Task.(*model.Event)
	if !ok {
		t.Fatalf("expected event, got %T", cmd.Add.Task)
	}
	if got := ev.Render(); got != "[E][ ] Launch party (from: Feb 01 2025 19:00 to: Feb 01 2025 23:00)" {
		t.Fatalf("event render = %q", got)
	}
}

func TestParseIgnoresArgumentsOfNullaryCommands(t *testing.T) {
	cmd, err := Parse("undo everything")
	if err != nil || cmd.Type != TypeUndo {
		t.Fatalf("parse undo: %+v %v", cmd, err)
	}
	if cmd.IsUndoable() {
		t.Fatal("undo itself must not be recorded in history")
	}
	bye, _ := Parse("bye")
	if !bye.IsExit() {
		t.Fatal("expected bye to exit")
	}
}
