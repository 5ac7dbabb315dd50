package conversation

import "sync"

const (
	greetingUser      = "Hello"
	greetingAssistant = "Greetings! How can I help you? I can assist you with general questions or help you book an appointment if needed."
)

// History holds the rolling transcript shared by every visitor of the
// widget. It is seeded with a greeting exchange so the model always has
// an opening turn, and trimmed to the newest entries once it grows past
// the limit.
type History struct {
	mu       sync.Mutex
	limit    int
	messages []ChatMessage
}

// NewHistory returns a seeded history capped at limit messages. A limit
// of zero or less disables trimming.
func NewHistory(limit int) *History {
	h := &History{limit: limit}
	h.reset()
	return h
}

func (h *History) reset() {
	h.messages = []ChatMessage{
		{Role: ChatRoleUser, Content: greetingUser},
		{Role: ChatRoleAssistant, Content: greetingAssistant},
	}
}

// Snapshot returns a copy of the current transcript.
func (h *History) Snapshot() []ChatMessage {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]ChatMessage, len(h.messages))
	copy(out, h.messages)
	return out
}

// Append records a completed user/assistant exchange, trimming the
// oldest entries when the transcript exceeds the limit.
func (h *History) Append(userMessage, assistantMessage string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.messages = append(h.messages,
		ChatMessage{Role: ChatRoleUser, Content: userMessage},
		ChatMessage{Role: ChatRoleAssistant, Content: assistantMessage},
	)
	if h.limit > 0 && len(h.messages) > h.limit {
		h.messages = h.messages[len(h.messages)-h.limit:]
	}
}
