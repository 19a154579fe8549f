package jobs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jwhitfield/careersite/backend/internal/model/profile"
	"github.com/jwhitfield/careersite/backend/internal/render"
	jobsservice "github.com/jwhitfield/careersite/backend/internal/service/jobs"
	"github.com/jwhitfield/careersite/backend/internal/storage"
	"github.com/jwhitfield/careersite/backend/pkg/utils"
)

const maxUploadBytes = 10 << 20

// Handler exposes the AI job-search endpoints.
type Handler struct {
	matcher  *jobsservice.Matcher
	facts    profile.Facts
	renderer render.Renderer
	blobs    *storage.BlobStore
}

// New creates the jobs handler. renderer and blobs may be nil when the
// tailored-resume pipeline is not configured; its endpoint then answers 503.
func New(matcher *jobsservice.Matcher, facts profile.Facts, renderer render.Renderer, blobs *storage.BlobStore) *Handler {
	return &Handler{matcher: matcher, facts: facts, renderer: renderer, blobs: blobs}
}

// RegisterRoutes mounts the job routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/ai/jobs/search", h.handleSearch)
	r.Post("/ai/jobs/tailor-resume", h.handleTailorResume)
}

// jobResult pairs a catalog entry with its match analysis.
type jobResult struct {
	jobsservice.Job
	Match jobsservice.MatchAnalysis `json:"match"`
}

func (h *Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	rawParams := r.FormValue("searchParams")
	if rawParams == "" {
		utils.RespondError(w, http.StatusBadRequest, "searchParams field is required")
		return
	}

	var params jobsservice.SearchParams
	if err := json.Unmarshal([]byte(rawParams), &params); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "searchParams is not valid JSON")
		return
	}

	var filters jobsservice.Filters
	if rawFilters := r.FormValue("filters"); rawFilters != "" {
		if err := json.Unmarshal([]byte(rawFilters), &filters); err != nil {
			utils.RespondError(w, http.StatusBadRequest, "filters is not valid JSON")
			return
		}
	}

	resumeText := h.readResume(r)

	matched := jobsservice.Search(params, filters)
	results := make([]jobResult, 0, len(matched))
	for _, job := range matched {
		results = append(results, jobResult{
			Job:   job,
			Match: h.matcher.Analyze(r.Context(), job, resumeText),
		})
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"jobs":    results,
		"stats": jobsservice.Stats{
			TotalAvailable: len(jobsservice.Catalog()),
			Matched:        len(matched),
			ResumeParsed:   resumeText != "",
		},
		"searchId":  uuid.NewString(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// readResume extracts text from an optional resume upload. Extraction
// failures are logged, not fatal: the search proceeds without resume context.
func (h *Handler) readResume(r *http.Request) string {
	file, header, err := r.FormFile("resume")
	if err != nil {
		return ""
	}
	defer file.Close()

	text, err := jobsservice.ReadResume(header.Header.Get("Content-Type"), file)
	if err != nil {
		log.Printf("[jobs] resume extraction failed: %v", err)
		return ""
	}
	return text
}

func (h *Handler) handleTailorResume(w http.ResponseWriter, r *http.Request) {
	if h.renderer == nil || h.blobs == nil {
		utils.RespondError(w, http.StatusServiceUnavailable, "resume rendering is not configured")
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	jobID := r.FormValue("jobId")
	if jobID == "" {
		utils.RespondError(w, http.StatusBadRequest, "jobId field is required")
		return
	}
	job, ok := jobsservice.FindJob(jobID)
	if !ok {
		utils.RespondError(w, http.StatusBadRequest, "unknown jobId")
		return
	}

	html, err := render.ResumeHTML(h.facts, job)
	if err != nil {
		log.Printf("[jobs] resume render failed: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "failed to render resume")
		return
	}

	pdfBytes, err := h.renderer.RenderPDF(r.Context(), html)
	if err != nil {
		log.Printf("[jobs] pdf conversion failed: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "failed to convert resume to pdf")
		return
	}

	key := fmt.Sprintf("resumes/%s-%s.pdf", jobID, uuid.NewString())
	if err := h.blobs.Upload(r.Context(), key, "application/pdf", bytes.NewReader(pdfBytes)); err != nil {
		log.Printf("[jobs] resume upload failed: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "failed to store resume")
		return
	}

	const linkTTL = 15 * time.Minute
	url, err := h.blobs.PresignGet(r.Context(), key, linkTTL)
	if err != nil {
		log.Printf("[jobs] presign failed: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "failed to create download link")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"success":     true,
		"downloadUrl": url,
		"key":         key,
		"expiresAt":   time.Now().UTC().Add(linkTTL).Format(time.RFC3339),
	})
}
