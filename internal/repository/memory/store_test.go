package memory

import (
	"context"
	"testing"

	"github.com/lumochat/lumo-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_CreateConversation(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	t.Run("defaults applied", func(t *testing.T) {
		conv, err := store.CreateConversation(ctx, "", "")
		require.NoError(t, err)
		assert.NotEmpty(t, conv.ID)
		assert.Equal(t, "default", conv.Mode)
		assert.Contains(t, conv.Title, "Chat ")
		assert.False(t, conv.CreatedAt.IsZero())
	})

	t.Run("explicit values kept", func(t *testing.T) {
		conv, err := store.CreateConversation(ctx, "roleplay", "My Chat")
		require.NoError(t, err)
		assert.Equal(t, "roleplay", conv.Mode)
		assert.Equal(t, "My Chat", conv.Title)
	})

	t.Run("listed exactly once", func(t *testing.T) {
		store := NewStore()
		conv, err := store.CreateConversation(ctx, "default", "solo")
		require.NoError(t, err)

		list, err := store.ListConversations(ctx)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, conv.ID, list[0].ID)
		assert.Equal(t, conv.Mode, list[0].Mode)
		assert.Equal(t, conv.Title, list[0].Title)
	})
}

func TestStore_ListConversations_NewestFirst(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	first, _ := store.CreateConversation(ctx, "default", "first")
	second, _ := store.CreateConversation(ctx, "default", "second")
	third, _ := store.CreateConversation(ctx, "default", "third")

	list, err := store.ListConversations(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, third.ID, list[0].ID)
	assert.Equal(t, second.ID, list[1].ID)
	assert.Equal(t, first.ID, list[2].ID)
}

func TestStore_GetConversation(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	conv, _ := store.CreateConversation(ctx, "default", "")

	got, err := store.GetConversation(ctx, conv.ID)
	require.NoError(t, err)
	assert.Equal(t, conv.ID, got.ID)

	_, err = store.GetConversation(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrConversationNotFound)
}

func TestStore_AppendAndListMessages(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	conv, _ := store.CreateConversation(ctx, "default", "")

	m1, err := store.AppendMessage(ctx, conv.ID, domain.RoleUser, "hey")
	require.NoError(t, err)
	m2, err := store.AppendMessage(ctx, conv.ID, domain.RoleAssistant, "hi bestie")
	require.NoError(t, err)

	assert.NotEqual(t, m1.ID, m2.ID)
	assert.Equal(t, conv.ID, m1.ConversationID)

	msgs, err := store.ListMessages(ctx, conv.ID)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, m1.ID, msgs[0].ID)
	assert.Equal(t, m2.ID, msgs[1].ID)
	assert.False(t, msgs[1].Timestamp.Before(msgs[0].Timestamp))
}

func TestStore_ListMessages_UnknownConversation(t *testing.T) {
	store := NewStore()

	msgs, err := store.ListMessages(context.Background(), "missing")
	require.NoError(t, err)
	assert.NotNil(t, msgs)
	assert.Empty(t, msgs)
}

func TestStore_DeleteConversation_Cascades(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	keep, _ := store.CreateConversation(ctx, "default", "keep")
	gone, _ := store.CreateConversation(ctx, "default", "gone")
	store.AppendMessage(ctx, gone.ID, domain.RoleUser, "bye")
	store.AppendMessage(ctx, keep.ID, domain.RoleUser, "stay")

	require.NoError(t, store.DeleteConversation(ctx, gone.ID))

	list, _ := store.ListConversations(ctx)
	require.Len(t, list, 1)
	assert.Equal(t, keep.ID, list[0].ID)

	msgs, _ := store.ListMessages(ctx, gone.ID)
	assert.Empty(t, msgs)

	kept, _ := store.ListMessages(ctx, keep.ID)
	assert.Len(t, kept, 1)

	// Idempotent: deleting again still succeeds
	assert.NoError(t, store.DeleteConversation(ctx, gone.ID))
}
