package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	inputStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)

	userBubbleStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("12")).
			Padding(0, 1)
	botBubbleStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("10")).
			Padding(0, 1)
	errorBubbleStyle = botBubbleStyle.BorderForeground(lipgloss.Color("9"))
)

const minWidth = 20

// RenderBubble draws one message; the user's messages sit on the right.
func RenderBubble(b Bubble, width int) string {
	if width < minWidth {
		width = minWidth
	}
	maxBubble := width * 3 / 4
	text := b.Text
	if b.Markdown {
		text = RenderMarkdown(text, maxBubble-4)
	}
	style := botBubbleStyle
	switch {
	case b.Speaker == SpeakerUser:
		style = userBubbleStyle
	case b.IsError:
		style = errorBubbleStyle
	}
	if lipgloss.Width(text)+4 > maxBubble {
		style = style.Width(maxBubble - 2)
	}
	box := style.Render(text)
	if b.Speaker == SpeakerUser {
		return lipgloss.PlaceHorizontal(width, lipgloss.Right, box)
	}
	return box
}

func RenderTranscript(bubbles []Bubble, width int) string {
	out := make([]string, 0, len(bubbles))
	for _, b := range bubbles {
		out = append(out, RenderBubble(b, width))
	}
	return strings.Join(out, "\n")
}

func RenderChat(data ChatData) string {
	status := statusStyle.Render(data.StatusLine)
	if data.IsError {
		status = errorStyle.Render(data.StatusLine)
	}
	lines := []string{
		headerStyle.Render(data.Header),
		data.Transcript,
		inputStyle.Render(data.Input),
	}
	if data.StatusLine != "" {
		lines = append(lines, status)
	}
	if data.Footer != "" {
		lines = append(lines, footerStyle.Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

// RenderMarkdown falls back to the raw text when glamour cannot render it.
func RenderMarkdown(md string, width int) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	if width < minWidth {
		width = minWidth
	}
	r, err := glamour.NewTermRenderer(glamour.WithStandardStyle("dark"), glamour.WithWordWrap(width))
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
