package service

import (
	"context"
	"strings"

	"github.com/lumochat/lumo-api/internal/domain"
	"github.com/lumochat/lumo-api/internal/llm"
	"github.com/rs/zerolog/log"
)

// ChatService coordinates conversation state with the completion provider.
type ChatService struct {
	store        domain.Store
	completer    llm.Completer
	systemPrompt string
	fallback     string
}

// NewChatService creates a new chat service.
func NewChatService(store domain.Store, completer llm.Completer, systemPrompt, fallback string) *ChatService {
	return &ChatService{
		store:        store,
		completer:    completer,
		systemPrompt: systemPrompt,
		fallback:     fallback,
	}
}

// CreateConversation starts a new conversation thread.
func (s *ChatService) CreateConversation(ctx context.Context, mode, title string) (*domain.Conversation, error) {
	return s.store.CreateConversation(ctx, mode, title)
}

// ListConversations returns all conversations, newest first.
func (s *ChatService) ListConversations(ctx context.Context) ([]domain.Conversation, error) {
	return s.store.ListConversations(ctx)
}

// ListMessages returns a conversation's transcript in send order.
func (s *ChatService) ListMessages(ctx context.Context, conversationID string) ([]domain.Message, error) {
	return s.store.ListMessages(ctx, conversationID)
}

// DeleteConversation removes a conversation and its messages. Idempotent.
func (s *ChatService) DeleteConversation(ctx context.Context, conversationID string) error {
	return s.store.DeleteConversation(ctx, conversationID)
}

// SendMessage runs one chat exchange: validate the content, check the
// conversation exists, assemble the prompt from stored history, invoke the
// provider, and persist both turns.
//
// A provider failure does not fail the exchange: the configured fallback
// text is substituted as the assistant reply and both messages are still
// persisted, so the user's utterance is never lost.
func (s *ChatService) SendMessage(ctx context.Context, conversationID, content string) (*domain.Exchange, error) {
	if strings.TrimSpace(content) == "" {
		return nil, domain.ErrEmptyContent
	}

	if _, err := s.store.GetConversation(ctx, conversationID); err != nil {
		return nil, err
	}

	history, err := s.store.ListMessages(ctx, conversationID)
	if err != nil {
		return nil, err
	}

	prompt := llm.BuildPrompt(s.systemPrompt, history, content)

	reply, err := s.completer.Complete(ctx, prompt)
	if err != nil {
		log.Warn().
			Err(err).
			Str("conversation_id", conversationID).
			Msg("completion failed, substituting fallback reply")
		reply = s.fallback
	}

	userMsg, err := s.store.AppendMessage(ctx, conversationID, domain.RoleUser, content)
	if err != nil {
		return nil, err
	}

	aiMsg, err := s.store.AppendMessage(ctx, conversationID, domain.RoleAssistant, reply)
	if err != nil {
		return nil, err
	}

	return &domain.Exchange{UserMessage: *userMsg, AIMessage: *aiMsg}, nil
}
