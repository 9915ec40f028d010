package domain

import (
	"context"
	"time"
)

// Conversation is a named thread grouping an ordered set of messages.
type Conversation struct {
	ID        string    `json:"id"`
	Mode      string    `json:"mode"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
}

// Store owns the conversation and message collections. No other component
// mutates them directly.
type Store interface {
	// CreateConversation generates an identifier and timestamp, applies the
	// default mode and title when empty, and returns the new record.
	CreateConversation(ctx context.Context, mode, title string) (*Conversation, error)

	// ListConversations returns all conversations, most recently created first.
	ListConversations(ctx context.Context) ([]Conversation, error)

	// GetConversation returns ErrConversationNotFound for an unknown id.
	GetConversation(ctx context.Context, id string) (*Conversation, error)

	// DeleteConversation removes the conversation and every message that
	// belongs to it. Deleting an unknown id is not an error.
	DeleteConversation(ctx context.Context, id string) error

	// ListMessages returns all messages for a conversation in append order.
	// Unknown conversations yield an empty slice.
	ListMessages(ctx context.Context, conversationID string) ([]Message, error)

	// AppendMessage generates an identifier and timestamp, inserts, and
	// returns the new record. It does not verify the conversation exists;
	// that is the caller's responsibility.
	AppendMessage(ctx context.Context, conversationID string, role MessageRole, content string) (*Message, error)
}
