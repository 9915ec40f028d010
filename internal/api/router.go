package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/lumochat/lumo-api/internal/api/handler"
	customMiddleware "github.com/lumochat/lumo-api/internal/api/middleware"
	"github.com/lumochat/lumo-api/internal/api/response"
	"github.com/lumochat/lumo-api/internal/config"
	"github.com/lumochat/lumo-api/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(cfg *config.Config, chatService *service.ChatService) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(customMiddleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.Server.MiddlewareTimeout))

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	conversationHandler := handler.NewConversationHandler(chatService)
	chatHandler := handler.NewChatHandler(chatService)

	r.Get("/health", handler.Health(cfg))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handler.Health(cfg))

		r.Route("/conversations", func(r chi.Router) {
			r.Post("/", conversationHandler.Create)
			r.Get("/", conversationHandler.List)
		})

		r.Get("/messages/{conversationID}", conversationHandler.Messages)
		r.Post("/chat/{conversationID}", chatHandler.Send)
		r.Delete("/conversation/{conversationID}", conversationHandler.Delete)
	})

	// Uniform error payload for unmatched paths
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "not found")
	})

	return r
}
