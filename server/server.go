package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"wine_blog_writer/generator"
	"wine_blog_writer/images"
)

const defaultRequestTimeout = 5 * time.Minute

// Options are the collaborators behind the HTTP API.
type Options struct {
	Agent      *generator.Agent
	Editor     *generator.Editor
	Summarizer *generator.Summarizer
	Images     *images.Searcher
	Logger     *zap.Logger
	// Provider is the display name used in credential error messages.
	Provider       string
	RequestTimeout time.Duration
}

// Server is the JSON API in front of the generation pipeline.
type Server struct {
	router     chi.Router
	agent      *generator.Agent
	editor     *generator.Editor
	summarizer *generator.Summarizer
	images     *images.Searcher
	log        *zap.Logger
	provider   string
	timeout    time.Duration
}

func New(opts Options) (*Server, error) {
	if opts.Agent == nil {
		return nil, errors.New("generator agent required")
	}
	if opts.Editor == nil || opts.Summarizer == nil {
		return nil, errors.New("editor and summarizer required")
	}
	if opts.Images == nil {
		opts.Images = images.NewSearcher(images.Config{Logger: opts.Logger})
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Provider == "" {
		opts.Provider = "OpenAI"
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = defaultRequestTimeout
	}

	s := &Server{
		agent:      opts.Agent,
		editor:     opts.Editor,
		summarizer: opts.Summarizer,
		images:     opts.Images,
		log:        opts.Logger,
		provider:   opts.Provider,
		timeout:    opts.RequestTimeout,
	}
	s.setupRoutes()
	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(requestLogger(s.log))

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Post("/generate", s.handleGenerate)
		r.Post("/modify", s.handleModify)
		r.Post("/summarize", s.handleSummarize)
		r.Post("/preview", s.handlePreview)
		r.Get("/images/search", s.handleImageSearch)
		r.Get("/models", s.handleModels)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
