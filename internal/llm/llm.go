package llm

import "context"

// Message is one entry in a completion request, oldest first. The provider
// interprets the sequence as chronological dialogue, so order matters.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Completer produces an assistant reply for an assembled message sequence.
type Completer interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}
