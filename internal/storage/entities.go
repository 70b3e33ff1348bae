package storage

import (
	"fmt"

	"github.com/sandeepkv93/taskline/internal/model"
)

// Diagnostic describes a stored record that was skipped during load.
type Diagnostic struct {
	Line   int
	Text   string
	Reason string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("line %d skipped (%s): %q", d.Line, d.Reason, d.Text)
}

type LoadResult struct {
	Tasks   []model.Task
	Skipped []Diagnostic
}
