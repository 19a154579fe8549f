package chat

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jwhitfield/careersite/backend/internal/model/session"
	chatservice "github.com/jwhitfield/careersite/backend/internal/service/chat"
	"github.com/jwhitfield/careersite/backend/pkg/utils"
)

// Handler exposes the gated conversation endpoints.
type Handler struct {
	svc *chatservice.Service
}

// New creates the chat handler.
func New(svc *chatservice.Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the chat routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat", h.handleChat)
	r.Post("/chat/session", h.handleCreateSession)
	r.Get("/chat/history", h.handleHistory)
}

func (h *Handler) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name    string `json:"name"`
		Role    string `json:"role"`
		Purpose string `json:"purpose"`
		Email   string `json:"email"`
		Company string `json:"company"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if payload.Name == "" || payload.Role == "" || payload.Purpose == "" {
		utils.RespondError(w, http.StatusBadRequest, "name, role, and purpose are required")
		return
	}

	visitor := session.Visitor{
		Name:    payload.Name,
		Role:    payload.Role,
		Purpose: payload.Purpose,
		Email:   payload.Email,
		Company: payload.Company,
	}

	sess, err := h.svc.StartSession(r.Context(), visitor)
	if err != nil {
		if errors.Is(err, session.ErrVisitorNameRequired) {
			utils.RespondError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "failed to create session")
		return
	}

	utils.RespondJSON(w, http.StatusCreated, map[string]string{
		"sessionId": sess.ID,
		"status":    sess.Status,
	})
}

func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Message   string `json:"message"`
		SessionID string `json:"session_id"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if payload.Message == "" {
		utils.RespondError(w, http.StatusBadRequest, "message is required")
		return
	}

	reply, err := h.svc.Respond(r.Context(), payload.SessionID, payload.Message)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			utils.RespondError(w, http.StatusBadRequest, "invalid session, please restart the conversation")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "chat failed")
		return
	}

	if reply.Fallback {
		utils.RespondJSON(w, http.StatusOK, map[string]string{
			"error":    "assistant temporarily unavailable",
			"response": reply.Text,
		})
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{"response": reply.Text})
}

func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session_id")
	if sessionID == "" {
		utils.RespondError(w, http.StatusBadRequest, "session_id query parameter is required")
		return
	}

	messages, err := h.svc.Transcript(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			utils.RespondError(w, http.StatusBadRequest, "invalid session, please restart the conversation")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "failed to load history")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{"messages": messages})
}
