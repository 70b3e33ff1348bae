package update

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/sandeepkv93/taskline/internal/session"
	"github.com/sandeepkv93/taskline/internal/views"
)

// Executor is the single entry point the chat window feeds.
type Executor interface {
	Execute(ctx context.Context, input string) session.Response
}

type StatusBar struct {
	Text    string
	IsError bool
}

type Model struct {
	Transcript []views.Bubble
	Status     StatusBar
	Quitting   bool
	Markdown   bool
	exec       Executor
	keys       keyMap
	// Bubble components
	input     textinput.Model
	viewport  viewport.Model
	helpModel help.Model
	width     int
	height    int
}
