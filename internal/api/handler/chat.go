package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/lumochat/lumo-api/internal/api/response"
	"github.com/lumochat/lumo-api/internal/domain"
	"github.com/lumochat/lumo-api/internal/service"
	"github.com/rs/zerolog/log"
)

// ChatHandler handles the chat exchange endpoint
type ChatHandler struct {
	chatService *service.ChatService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// Send appends a user message to the conversation, obtains the assistant
// reply, and returns both persisted messages.
func (h *ChatHandler) Send(w http.ResponseWriter, r *http.Request) {
	conversationID := chi.URLParam(r, "conversationID")

	var input struct {
		Content string `json:"content" validate:"required"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, "content is required")
		return
	}

	exchange, err := h.chatService.SendMessage(r.Context(), conversationID, input.Content)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyContent):
			response.BadRequest(w, "content is required")
		case errors.Is(err, domain.ErrConversationNotFound):
			response.NotFound(w, "conversation not found")
		default:
			log.Error().Err(err).Str("conversation_id", conversationID).Msg("chat exchange failed")
			response.InternalError(w, "failed to process chat message")
		}
		return
	}

	response.OK(w, exchange)
}
