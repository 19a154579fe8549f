package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/jwhitfield/careersite/backend/internal/config"
	"github.com/jwhitfield/careersite/backend/internal/handler"
	"github.com/jwhitfield/careersite/backend/internal/model/profile"
	"github.com/jwhitfield/careersite/backend/internal/model/session"
	"github.com/jwhitfield/careersite/backend/internal/render"
	"github.com/jwhitfield/careersite/backend/internal/service/ai"
	chatservice "github.com/jwhitfield/careersite/backend/internal/service/chat"
	jobsservice "github.com/jwhitfield/careersite/backend/internal/service/jobs"
	tailorservice "github.com/jwhitfield/careersite/backend/internal/service/tailor"
	"github.com/jwhitfield/careersite/backend/internal/storage"
	"github.com/jwhitfield/careersite/backend/internal/store/memory"
	"github.com/jwhitfield/careersite/backend/internal/store/postgres"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	bundle := profile.Seed()

	var store session.Store
	if cfg.Database.URL != "" {
		db, err := postgres.Connect(cfg.Database.URL)
		if err != nil {
			log.Fatalf("failed to connect to postgres: %v", err)
		}
		store = postgres.New(db)
		log.Println("session store: postgres")
	} else {
		store = memory.New()
		log.Println("session store: in-memory (set DB_URL for persistence)")
	}

	var aiClient *ai.Client
	if cfg.AI.Enabled() {
		aiClient, err = ai.NewClient(ctx, cfg.AI)
		if err != nil {
			log.Printf("warning: failed to initialize AI client: %v", err)
			log.Println("continuing with fallback responses only")
		} else {
			log.Println("AI provider chain initialized")
		}
	} else {
		log.Println("no AI provider credentials configured, responses will use fallbacks")
	}

	var completer chatservice.Completer
	var jsonCompleter tailorservice.JSONCompleter
	var matchCompleter jobsservice.JSONCompleter
	if aiClient != nil {
		completer = aiClient
		jsonCompleter = aiClient
		matchCompleter = aiClient
	}

	chatSvc := chatservice.NewService(bundle, store, completer)
	tailorSvc := tailorservice.NewService(bundle.Facts, jsonCompleter)
	matcher := jobsservice.NewMatcher(matchCompleter)

	var blobs *storage.BlobStore
	var renderer render.Renderer
	if cfg.Storage.Enabled() {
		blobs, err = storage.NewBlobStore(ctx, cfg.Storage)
		if err != nil {
			log.Printf("warning: failed to initialize blob storage: %v", err)
			blobs = nil
		}
		if blobs != nil {
			chromium, err := render.NewChromium()
			if err != nil {
				log.Printf("warning: failed to start chromium renderer: %v", err)
				log.Println("tailored resume downloads disabled")
			} else {
				defer chromium.Close()
				renderer = chromium
			}
		}
	} else {
		log.Println("storage credentials not configured, tailored resume downloads disabled")
	}

	router := handler.NewRouter(handler.Deps{
		Config:   cfg,
		Bundle:   bundle,
		ChatSvc:  chatSvc,
		Tailor:   tailorSvc,
		Matcher:  matcher,
		Renderer: renderer,
		Blobs:    blobs,
	})

	startServer(ctx, cfg.Server, router)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	srv := &http.Server{
		Addr:              serverCfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("careersite backend listening on %s", serverCfg.Addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
