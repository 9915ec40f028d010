package handler

import (
	"net/http"

	"github.com/lumochat/lumo-api/internal/api/response"
	"github.com/lumochat/lumo-api/internal/config"
)

// Health reports service status and whether the completion provider
// credential is configured.
func Health(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.OK(w, map[string]any{
			"status":             "ok",
			"model":              cfg.LLM.Model,
			"providerConfigured": cfg.LLM.APIKey != "",
		})
	}
}
