package update

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/taskline/internal/commands"
	"github.com/sandeepkv93/taskline/internal/views"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	// header, bordered input (3 lines), status and footer
	chromeHeight = 6
)

// NewModel builds the chat window. greeting, when set, is shown as the first
// message from taskline.
func NewModel(exec Executor, greeting string, markdown bool) Model {
	in := textinput.New()
	in.Placeholder = "type a command, e.g. todo Buy milk"
	in.Prompt = "> "
	in.CharLimit = 512
	in.Focus()

	m := Model{
		exec:      exec,
		keys:      defaultKeyMap(),
		input:     in,
		viewport:  viewport.New(defaultWidth, defaultHeight-chromeHeight),
		helpModel: help.New(),
		Markdown:  markdown,
		width:     defaultWidth,
		height:    defaultHeight,
	}
	if strings.TrimSpace(greeting) != "" {
		m.Transcript = append(m.Transcript, views.Bubble{Speaker: views.SpeakerBot, Text: greeting})
	}
	m.refreshTranscript()
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.height = typed.Height
		m.viewport.Width = typed.Width
		m.viewport.Height = max(typed.Height-chromeHeight, 1)
		m.input.Width = max(typed.Width-6, 10)
		m.refreshTranscript()
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(typed, m.keys.Quit):
			m.Quitting = true
			return m, tea.Quit
		case key.Matches(typed, m.keys.Submit):
			return m.submit()
		case key.Matches(typed, m.keys.ScrollUp, m.keys.ScrollDn):
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(typed)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	raw := m.input.Value()
	if strings.TrimSpace(raw) == "" {
		return m, nil
	}
	m.input.Reset()
	m.Transcript = append(m.Transcript, views.Bubble{Speaker: views.SpeakerUser, Text: strings.TrimSpace(raw)})

	resp := m.exec.Execute(context.Background(), raw)
	m.Transcript = append(m.Transcript, views.Bubble{
		Speaker:  views.SpeakerBot,
		Text:     resp.Text,
		IsError:  resp.IsError,
		Markdown: m.Markdown && resp.Text == commands.Usage,
	})
	m.Status = StatusBar{Text: firstLine(resp.Text), IsError: resp.IsError}
	m.refreshTranscript()

	if resp.Exit {
		m.Quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) refreshTranscript() {
	m.viewport.SetContent(views.RenderTranscript(m.Transcript, m.width))
	m.viewport.GotoBottom()
}

func (m Model) View() string {
	if m.Quitting {
		return ""
	}
	return views.RenderChat(views.ChatData{
		Header:     "taskline",
		Transcript: m.viewport.View(),
		Input:      m.input.View(),
		StatusLine: m.Status.Text,
		IsError:    m.Status.IsError,
		Footer:     m.helpModel.View(m.keys),
	})
}

func firstLine(text string) string {
	first, _, _ := strings.Cut(text, "\n")
	return first
}
