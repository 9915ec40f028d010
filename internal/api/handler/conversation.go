package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/lumochat/lumo-api/internal/api/response"
	"github.com/lumochat/lumo-api/internal/service"
	"github.com/rs/zerolog/log"
)

var validate = validator.New()

// ConversationHandler handles conversation lifecycle endpoints
type ConversationHandler struct {
	chatService *service.ChatService
}

// NewConversationHandler creates a new conversation handler
func NewConversationHandler(chatService *service.ChatService) *ConversationHandler {
	return &ConversationHandler{chatService: chatService}
}

// Create starts a new conversation
func (h *ConversationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Mode  string `json:"mode" validate:"omitempty,max=64"`
		Title string `json:"title" validate:"omitempty,max=256"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil && !errors.Is(err, io.EOF) {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	conv, err := h.chatService.CreateConversation(r.Context(), input.Mode, input.Title)
	if err != nil {
		log.Error().Err(err).Msg("failed to create conversation")
		response.InternalError(w, "failed to create conversation")
		return
	}

	response.Created(w, conv)
}

// List returns all conversations, newest first
func (h *ConversationHandler) List(w http.ResponseWriter, r *http.Request) {
	conversations, err := h.chatService.ListConversations(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to list conversations")
		response.InternalError(w, "failed to list conversations")
		return
	}

	response.OK(w, conversations)
}

// Messages returns a conversation's transcript in send order
func (h *ConversationHandler) Messages(w http.ResponseWriter, r *http.Request) {
	conversationID := chi.URLParam(r, "conversationID")

	messages, err := h.chatService.ListMessages(r.Context(), conversationID)
	if err != nil {
		log.Error().Err(err).Msg("failed to list messages")
		response.InternalError(w, "failed to list messages")
		return
	}

	response.OK(w, messages)
}

// Delete removes a conversation and all its messages. Idempotent: deleting
// an unknown id still reports success.
func (h *ConversationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	conversationID := chi.URLParam(r, "conversationID")

	if err := h.chatService.DeleteConversation(r.Context(), conversationID); err != nil {
		log.Error().Err(err).Msg("failed to delete conversation")
		response.InternalError(w, "failed to delete conversation")
		return
	}

	response.OK(w, map[string]bool{"success": true})
}
