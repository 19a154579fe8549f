package tailor

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	tailorservice "github.com/jwhitfield/careersite/backend/internal/service/tailor"
	"github.com/jwhitfield/careersite/backend/pkg/utils"
)

// Handler exposes the document-tailoring endpoints. All three share the same
// failure policy: the service layer substitutes same-shaped fallbacks, so
// these handlers only ever reject malformed input.
type Handler struct {
	svc *tailorservice.Service
}

// New creates the tailoring handler.
func New(svc *tailorservice.Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the tailoring routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/job-tailor", h.handleJobTailor)
	r.Post("/resume-customizer", h.handleResumeCustomizer)
	r.Post("/ai-application-package", h.handleApplicationPackage)
}

func (h *Handler) handleJobTailor(w http.ResponseWriter, r *http.Request) {
	var req tailorservice.JobTailorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.JobTitle == "" || req.Company == "" || req.JobDescription == "" {
		utils.RespondError(w, http.StatusBadRequest, "jobTitle, company, and jobDescription are required")
		return
	}

	utils.RespondJSON(w, http.StatusOK, h.svc.TailorJob(r.Context(), req))
}

func (h *Handler) handleResumeCustomizer(w http.ResponseWriter, r *http.Request) {
	var req tailorservice.ResumeCustomizerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.JobDescription == "" {
		utils.RespondError(w, http.StatusBadRequest, "jobDescription is required")
		return
	}

	utils.RespondJSON(w, http.StatusOK, h.svc.CustomizeResume(r.Context(), req))
}

func (h *Handler) handleApplicationPackage(w http.ResponseWriter, r *http.Request) {
	var req tailorservice.PackageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.JobTitle == "" || req.Company == "" || req.JobDescription == "" {
		utils.RespondError(w, http.StatusBadRequest, "jobTitle, company, and jobDescription are required")
		return
	}

	utils.RespondJSON(w, http.StatusOK, h.svc.BuildPackage(r.Context(), req))
}
