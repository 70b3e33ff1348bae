package views

import (
	"strings"
	"testing"
)

func TestRenderBubbleKeepsText(t *testing.T) {
	for _, b := range []Bubble{
		{Speaker: SpeakerUser, Text: "todo Buy milk"},
		{Speaker: SpeakerBot, Text: "Got it. I've added this task:"},
		{Speaker: SpeakerBot, Text: "OOPS!!! description cannot be empty", IsError: true},
	} {
		out := RenderBubble(b, 80)
		if !strings.Contains(out, b.Text) {
			t.Fatalf("bubble lost its text:\n%s", out)
		}
	}
}

func TestUserBubbleIsRightAligned(t *testing.T) {
	out := RenderBubble(Bubble{Speaker: SpeakerUser, Text: "hi"}, 60)
	first := strings.Split(out, "\n")[0]
	if !strings.HasPrefix(first, " ") {
		t.Fatalf("expected left padding for user bubble, got %q", first)
	}
	bot := RenderBubble(Bubble{Speaker: SpeakerBot, Text: "hi"}, 60)
	if strings.HasPrefix(bot, " ") {
		t.Fatalf("bot bubble should start at the left edge, got %q", bot)
	}
}

func TestRenderTranscriptAndChat(t *testing.T) {
	transcript := RenderTranscript([]Bubble{
		{Speaker: SpeakerUser, Text: "list"},
		{Speaker: SpeakerBot, Text: "Your task list is empty!"},
	}, 70)
	out := RenderChat(ChatData{
		Header:     "taskline",
		Transcript: transcript,
		Input:      "> ",
		StatusLine: "ready",
		Footer:     "enter send",
	})
	for _, want := range []string{"taskline", "list", "Your task list is empty!", "ready", "enter send"} {
		if !strings.Contains(out, want) {
			t.Fatalf("chat view missing %q:\n%s", want, out)
		}
	}
}

func TestRenderMarkdown(t *testing.T) {
	if RenderMarkdown("   ", 40) != "" {
		t.Fatal("expected empty output for blank markdown")
	}
	out := RenderMarkdown("## Commands\n\n- `list` show tasks", 60)
	if !strings.Contains(out, "Commands") || !strings.Contains(out, "list") {
		t.Fatalf("unexpected markdown output:\n%s", out)
	}
}
