package domain

import "time"

// MessageRole represents the author of a message
type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
	RoleSystem    MessageRole = "system"
)

// Message represents one turn in a conversation
type Message struct {
	ID             string      `json:"id"`
	ConversationID string      `json:"conversationId"`
	Role           MessageRole `json:"role"`
	Content        string      `json:"content"`
	Timestamp      time.Time   `json:"timestamp"`
}

// Exchange is the result of one chat send: the persisted user message and
// the persisted assistant reply
type Exchange struct {
	UserMessage Message `json:"userMessage"`
	AIMessage   Message `json:"aiMessage"`
}
