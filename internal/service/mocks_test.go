package service

import (
	"context"

	"github.com/lumochat/lumo-api/internal/domain"
	"github.com/lumochat/lumo-api/internal/llm"
	"github.com/stretchr/testify/mock"
)

// MockStore mocks the domain.Store interface
type MockStore struct {
	mock.Mock
}

func (m *MockStore) CreateConversation(ctx context.Context, mode, title string) (*domain.Conversation, error) {
	args := m.Called(ctx, mode, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Conversation), args.Error(1)
}

func (m *MockStore) ListConversations(ctx context.Context) ([]domain.Conversation, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Conversation), args.Error(1)
}

func (m *MockStore) GetConversation(ctx context.Context, id string) (*domain.Conversation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Conversation), args.Error(1)
}

func (m *MockStore) DeleteConversation(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStore) ListMessages(ctx context.Context, conversationID string) ([]domain.Message, error) {
	args := m.Called(ctx, conversationID)
	return args.Get(0).([]domain.Message), args.Error(1)
}

func (m *MockStore) AppendMessage(ctx context.Context, conversationID string, role domain.MessageRole, content string) (*domain.Message, error) {
	args := m.Called(ctx, conversationID, role, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Message), args.Error(1)
}

// MockCompleter mocks llm.Completer
type MockCompleter struct {
	mock.Mock
}

func (m *MockCompleter) Complete(ctx context.Context, messages []llm.Message) (string, error) {
	args := m.Called(ctx, messages)
	return args.String(0), args.Error(1)
}
