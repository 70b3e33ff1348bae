package model

import (
	"errors"
	"testing"
)

func descriptions(tasks []Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.Description())
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestAddRemoveInsertPreservesOrder(t *testing.T) {
	l := NewTaskList(nil)
	for _, d := range []string{"a", "b", "c"} {
		l.Add(NewToDo(d))
	}
	removed, err := l.RemoveAt(1)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if removed.Description() != "b" {
		t.Fatalf("removed %q, want b", removed.Description())
	}
	if got := descriptions(l.Tasks()); !equalStrings(got, []string{"a", "c"}) {
		t.Fatalf("after remove: %v", got)
	}
	l.InsertAt(1, removed)
	if got := descriptions(l.Tasks()); !equalStrings(got, []string{"a", "b", "c"}) {
		t.Fatalf("after insert: %v", got)
	}
	l.InsertAt(3, NewToDo("d"))
	if l.Size() != 4 {
		t.Fatalf("size = %d, want 4", l.Size())
	}
}

func TestBoundsChecks(t *testing.T) {
	l := NewTaskList([]Task{NewToDo("only")})
	for _, idx := range []int{-1, 1, 7} {
		_, err := l.Get(idx)
		var ie *IndexError
		if !errors.As(err, &ie) || ie.Index != idx || ie.Size != 1 {
			t.Fatalf("get(%d): expected IndexError, got %v", idx, err)
		}
		if !errors.Is(err, ErrIndexOutOfRange) {
			t.Fatalf("get(%d): expected ErrIndexOutOfRange", idx)
		}
		if _, err := l.RemoveAt(idx); !errors.Is(err, ErrIndexOutOfRange) {
			t.Fatalf("remove(%d): expected ErrIndexOutOfRange, got %v", idx, err)
		}
		if _, err := l.MarkDone(idx); !errors.Is(err, ErrIndexOutOfRange) {
			t.Fatalf("mark(%d): expected ErrIndexOutOfRange, got %v", idx, err)
		}
	}
	if l.Size() != 1 {
		t.Fatalf("failed calls must not mutate, size = %d", l.Size())
	}
}

func TestInsertOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	NewTaskList(nil).InsertAt(1, NewToDo("x"))
}

func TestMarkAndUnmark(t *testing.T) {
	l := NewTaskList([]Task{NewToDo("a")})
	task, err := l.MarkDone(0)
	if err != nil || !task.IsDone() {
		t.Fatalf("mark: %v done=%v", err, task.IsDone())
	}
	task, err = l.MarkNotDone(0)
	if err != nil || task.IsDone() {
		t.Fatalf("unmark: %v done=%v", err, task.IsDone())
	}
}

func TestFindCaseInsensitive(t *testing.T) {
	l := NewTaskList([]Task{NewToDo("Buy Milk"), NewToDo("read book"), NewToDo("milkshake")})
	got := descriptions(l.Find("MILK"))
	if !equalStrings(got, []string{"Buy Milk", "milkshake"}) {
		t.Fatalf("find = %v", got)
	}
	if res := l.Find("zzz"); res == nil || len(res) != 0 {
		t.Fatalf("expected empty non-nil result, got %#v", res)
	}
}

func TestIndexOfUsesIdentity(t *testing.T) {
	a := NewToDo("twin")
	b := NewToDo("twin")
	l := NewTaskList([]Task{a, b})
	if l.IndexOf(b.ID()) != 1 || l.IndexOf(a.ID()) != 0 {
		t.Fatal("identity lookup failed")
	}
	if l.IndexOf("missing") != -1 {
		t.Fatal("expected -1 for unknown id")
	}
	if l.IsEmpty() {
		t.Fatal("expected non-empty")
	}
}
