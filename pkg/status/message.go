package status

// Message pairs a severity with free-form text. Messages are immutable once
// created and owned by the Result that recorded them; Incorporate copies
// messages between Results rather than sharing them.
type Message struct {
	Severity Severity `json:"severity"`
	Text     string   `json:"text"`
}

// NewMessage constructs a message. No validation is applied: empty text and
// any severity are accepted.
func NewMessage(severity Severity, text string) Message {
	return Message{Severity: severity, Text: text}
}

// String renders the message as "severity: text".
func (m Message) String() string {
	return m.Severity.String() + ": " + m.Text
}
