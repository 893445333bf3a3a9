package domain

// Inbound is a transport-independent chat event
type Inbound struct {
	UserID   int64
	Username string
	Text     string
	// Callback carries the raw callback id of an inline button press
	Callback string
}

// Button is an inline button bound to a callback id
type Button struct {
	Label string
	Data  string
}

// Reply is a single outbound message.
// Keyboard is a fixed-choice reply keyboard, Inline a list of callback buttons.
type Reply struct {
	Text     string
	Keyboard [][]string
	Inline   [][]Button
}
