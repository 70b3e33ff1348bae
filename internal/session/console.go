package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sandeepkv93/taskline/internal/commands"
)

// Presenter is the line-oriented surface a session talks through.
type Presenter interface {
	ReadLine() (string, error)
	Show(text string)
}

const divider = "____________________________________________________________"

// LinePresenter reads lines from in and frames every reply with a divider.
type LinePresenter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func NewLinePresenter(in io.Reader, out io.Writer) *LinePresenter {
	return &LinePresenter{scanner: bufio.NewScanner(in), out: out}
}

func (p *LinePresenter) ReadLine() (string, error) {
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return p.scanner.Text(), nil
}

func (p *LinePresenter) Show(text string) {
	fmt.Fprintf(p.out, "%s\n%s\n%s\n", divider, strings.TrimRight(text, "\n"), divider)
}

// RunLoop drives s with p until the user exits or input ends. Blank lines are
// ignored.
func RunLoop(ctx context.Context, s *Session, p Presenter) error {
	greeting := commands.Welcome
	if notice := s.Notice(); notice != "" {
		greeting += "\n" + notice
	}
	p.Show(greeting)
	for {
		line, err := p.ReadLine()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		resp := s.Execute(ctx, line)
		p.Show(resp.Text)
		if resp.Exit {
			return nil
		}
	}
}
