package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runRoot(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCommand(strings.NewReader(stdin), &stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestOneShotCommandsShareDataFile(t *testing.T) {
	data := filepath.Join(t.TempDir(), "tasks.txt")

	out, _, err := runRoot(t, "", "--data", data, "deadline", "return", "book", "/by", "2019-12-02", "1800")
	if err != nil {
		t.Fatalf("deadline: %v", err)
	}
	if !strings.Contains(out, "[D][ ] return book (by: Dec 02 2019 18:00)") {
		t.Fatalf("unexpected output: %q", out)
	}

	raw, err := os.ReadFile(data)
	if err != nil {
		t.Fatalf("read data: %v", err)
	}
	if string(raw) != "D | 0 | return book | 2019-12-02 1800\n" {
		t.Fatalf("unexpected file: %q", raw)
	}

	out, _, err = runRoot(t, "", "--data", data, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, "1. [D][ ] return book") {
		t.Fatalf("unexpected list: %q", out)
	}
}

func TestOneShotErrorReturnsError(t *testing.T) {
	data := filepath.Join(t.TempDir(), "tasks.txt")
	out, _, err := runRoot(t, "", "--data", data, "mark", "4")
	if err == nil {
		t.Fatal("expected error for missing task")
	}
	if !strings.HasPrefix(out, "OOPS!!!") {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestPlainModeReadsStdin(t *testing.T) {
	data := filepath.Join(t.TempDir(), "tasks.txt")
	out, _, err := runRoot(t, "todo read book\nmark 1\nbye\n", "--data", data, "--plain")
	if err != nil {
		t.Fatalf("plain: %v", err)
	}
	for _, want := range []string{"Hello! I'm taskline.", "[T][X] read book", "Bye. Hope to see you again soon!"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
}

func TestSQLiteStorageFlag(t *testing.T) {
	data := filepath.Join(t.TempDir(), "tasks.db")
	if _, _, err := runRoot(t, "", "--data", data, "--storage", "sqlite", "todo", "water", "plants"); err != nil {
		t.Fatalf("todo: %v", err)
	}
	out, _, err := runRoot(t, "", "--data", data, "--storage", "sqlite", "find", "PLANT")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if !strings.Contains(out, "1. [T][ ] water plants") {
		t.Fatalf("unexpected find output: %q", out)
	}
}

func TestUnknownStorageIsRejected(t *testing.T) {
	if _, _, err := runRoot(t, "", "--data", filepath.Join(t.TempDir(), "x"), "--storage", "redis", "list"); err == nil {
		t.Fatal("expected config error")
	}
}
