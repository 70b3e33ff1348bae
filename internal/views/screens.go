package views

type Speaker int

const (
	SpeakerUser Speaker = iota
	SpeakerBot
)

// Bubble is one message in the chat transcript.
type Bubble struct {
	Speaker  Speaker
	Text     string
	IsError  bool
	Markdown bool
}

type ChatData struct {
	Header     string
	Transcript string
	Input      string
	StatusLine string
	IsError    bool
	Footer     string
}
