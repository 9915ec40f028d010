package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lumochat/lumo-api/internal/domain"
)

// Store is the volatile, process-lifetime implementation of domain.Store.
// Conversation and message order is tracked explicitly with slices so that
// listings never depend on map iteration order.
type Store struct {
	mu            sync.RWMutex
	conversations map[string]domain.Conversation
	order         []string // conversation ids in creation order
	messages      map[string][]domain.Message
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		conversations: make(map[string]domain.Conversation),
		messages:      make(map[string][]domain.Message),
	}
}

// CreateConversation inserts a new conversation with a generated id and
// timestamp. Empty mode and title fall back to their defaults.
func (s *Store) CreateConversation(_ context.Context, mode, title string) (*domain.Conversation, error) {
	now := time.Now().UTC()

	if mode == "" {
		mode = "default"
	}
	if title == "" {
		title = "Chat " + now.Format("Jan 2, 2006")
	}

	conv := domain.Conversation{
		ID:        uuid.NewString(),
		Mode:      mode,
		Title:     title,
		CreatedAt: now,
	}

	s.mu.Lock()
	s.conversations[conv.ID] = conv
	s.order = append(s.order, conv.ID)
	s.mu.Unlock()

	return &conv, nil
}

// ListConversations returns all conversations, most recently created first.
func (s *Store) ListConversations(_ context.Context) ([]domain.Conversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]domain.Conversation, 0, len(s.order))
	for i := len(s.order) - 1; i >= 0; i-- {
		list = append(list, s.conversations[s.order[i]])
	}
	return list, nil
}

// GetConversation retrieves a conversation by id.
func (s *Store) GetConversation(_ context.Context, id string) (*domain.Conversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	conv, ok := s.conversations[id]
	if !ok {
		return nil, domain.ErrConversationNotFound
	}
	return &conv, nil
}

// DeleteConversation removes the conversation and cascades to its messages.
// Unknown ids are a no-op, not an error.
func (s *Store) DeleteConversation(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.messages, id)

	if _, ok := s.conversations[id]; !ok {
		return nil
	}
	delete(s.conversations, id)

	for i, cid := range s.order {
		if cid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// ListMessages returns a copy of the conversation's messages in append order.
func (s *Store) ListMessages(_ context.Context, conversationID string) ([]domain.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	msgs := s.messages[conversationID]
	copied := make([]domain.Message, len(msgs))
	copy(copied, msgs)
	return copied, nil
}

// AppendMessage inserts a new message with a generated id and timestamp.
func (s *Store) AppendMessage(_ context.Context, conversationID string, role domain.MessageRole, content string) (*domain.Message, error) {
	msg := domain.Message{
		ID:             uuid.NewString(),
		ConversationID: conversationID,
		Role:           role,
		Content:        content,
		Timestamp:      time.Now().UTC(),
	}

	s.mu.Lock()
	s.messages[conversationID] = append(s.messages[conversationID], msg)
	s.mu.Unlock()

	return &msg, nil
}
