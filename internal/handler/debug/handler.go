package debug

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jwhitfield/careersite/backend/internal/config"
	"github.com/jwhitfield/careersite/backend/internal/model/profile"
	"github.com/jwhitfield/careersite/backend/pkg/utils"
)

// Handler reports configuration presence for deploy troubleshooting. It only
// ever exposes booleans and counts, never secret values.
type Handler struct {
	cfg    *config.Config
	bundle *profile.Bundle
}

// New creates the debug handler.
func New(cfg *config.Config, bundle *profile.Bundle) *Handler {
	return &Handler{cfg: cfg, bundle: bundle}
}

// RegisterRoutes mounts the debug route.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/debug", h.handleDebug)
}

func (h *Handler) handleDebug(w http.ResponseWriter, r *http.Request) {
	bundleInfo := map[string]any{"loaded": h.bundle != nil}
	if h.bundle != nil {
		bundleInfo["systemSections"] = len(h.bundle.SystemSections)
		bundleInfo["developerSections"] = len(h.bundle.DeveloperSections)
		bundleInfo["rolePolicies"] = len(h.bundle.RolePolicies)
		bundleInfo["gatePromptSet"] = h.bundle.GatePrompt != ""
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"env": map[string]bool{
			"anthropicKey": h.cfg.AI.Anthropic.APIKey != "",
			"openaiKey":    h.cfg.AI.OpenAI.APIKey != "",
			"databaseUrl":  h.cfg.Database.URL != "",
			"storage":      h.cfg.Storage.Enabled(),
		},
		"bundle": bundleInfo,
	})
}
