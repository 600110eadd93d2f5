package domain

// Role identifies who authored a transcript message.
type Role string

const (
	// RoleUser marks a question typed by the user.
	RoleUser Role = "user"

	// RoleAssistant marks an answer from the remote service.
	RoleAssistant Role = "assistant"
)

// Verdict is the user's feedback on an assistant answer.
type Verdict string

const (
	// VerdictPositive marks the answer as helpful.
	VerdictPositive Verdict = "positive"

	// VerdictNegative marks the answer as unhelpful.
	VerdictNegative Verdict = "negative"
)

// Message is one entry in the chat transcript. Messages are immutable
// once appended except for the Feedback field, which may be set (and
// overwritten) on assistant messages. Transcript order is the literal
// conversation order and survives persistence round-trips verbatim.
type Message struct {
	// Role is the author of the message.
	Role Role `json:"role"`

	// Content is the message text.
	Content string `json:"content"`

	// Sources attributes an assistant answer. Never set on user messages.
	Sources *Sources `json:"sources,omitempty"`

	// Feedback is the user's verdict. Never set on user messages.
	Feedback Verdict `json:"feedback,omitempty"`
}

// NewUserMessage builds a user question entry.
func NewUserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// NewAssistantMessage builds an assistant answer entry.
func NewAssistantMessage(content string, sources *Sources) Message {
	return Message{Role: RoleAssistant, Content: content, Sources: sources}
}

// IsAssistant reports whether the message is an assistant answer.
func (m *Message) IsAssistant() bool {
	return m.Role == RoleAssistant
}
