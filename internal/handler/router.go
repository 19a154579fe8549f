package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/jwhitfield/careersite/backend/internal/config"
	chathandler "github.com/jwhitfield/careersite/backend/internal/handler/chat"
	debughandler "github.com/jwhitfield/careersite/backend/internal/handler/debug"
	jobshandler "github.com/jwhitfield/careersite/backend/internal/handler/jobs"
	tailorhandler "github.com/jwhitfield/careersite/backend/internal/handler/tailor"
	middlewarePkg "github.com/jwhitfield/careersite/backend/internal/middleware"
	"github.com/jwhitfield/careersite/backend/internal/model/profile"
	"github.com/jwhitfield/careersite/backend/internal/render"
	chatservice "github.com/jwhitfield/careersite/backend/internal/service/chat"
	jobsservice "github.com/jwhitfield/careersite/backend/internal/service/jobs"
	tailorservice "github.com/jwhitfield/careersite/backend/internal/service/tailor"
	"github.com/jwhitfield/careersite/backend/internal/storage"
)

// Deps bundles everything the router wires into handlers.
type Deps struct {
	Config   *config.Config
	Bundle   *profile.Bundle
	ChatSvc  *chatservice.Service
	Tailor   *tailorservice.Service
	Matcher  *jobsservice.Matcher
	Renderer render.Renderer
	Blobs    *storage.BlobStore
}

// NewRouter wires HTTP routes to core services.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	limiter := middlewarePkg.NewIPRateLimiter(deps.Config.RateLimit.Requests, deps.Config.RateLimit.Window)

	r.Route("/api", func(api chi.Router) {
		// Rate limiting runs before any endpoint work.
		api.Use(limiter.Middleware)

		chathandler.New(deps.ChatSvc).RegisterRoutes(api)
		tailorhandler.New(deps.Tailor).RegisterRoutes(api)
		jobshandler.New(deps.Matcher, deps.Bundle.Facts, deps.Renderer, deps.Blobs).RegisterRoutes(api)
		debughandler.New(deps.Config, deps.Bundle).RegisterRoutes(api)
	})

	return r
}
