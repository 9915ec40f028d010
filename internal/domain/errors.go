package domain

import "errors"

var (
	// ErrConversationNotFound signals an unknown conversation id.
	ErrConversationNotFound = errors.New("conversation not found")

	// ErrEmptyContent signals a chat message whose content is empty or
	// whitespace-only after trimming.
	ErrEmptyContent = errors.New("message content is empty")
)
