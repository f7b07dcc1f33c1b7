package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/vedanth-raj/sectionize/internal/analyzer"
	"github.com/vedanth-raj/sectionize/internal/config"
	"github.com/vedanth-raj/sectionize/internal/pipeline"
)

// Server is the HTTP API server for sectionize.
type Server struct {
	router       chi.Router
	orchestrator *pipeline.Orchestrator
	log          *slog.Logger
	cfg          config.Config
	analyzerCfg  analyzer.Config
}

// NewServer creates and configures the HTTP server. analyzerCfg carries
// the service-wide defaults plus any patterns loaded from PATTERNS_FILE.
func NewServer(orch *pipeline.Orchestrator, log *slog.Logger, cfg config.Config, analyzerCfg analyzer.Config) *Server {
	s := &Server{
		orchestrator: orch,
		log:          log,
		cfg:          cfg,
		analyzerCfg:  analyzerCfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	// Authenticated endpoints.
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(s.cfg.APIKey, s.log))

		r.Post("/api/papers", s.handleAnalyze)
		r.Post("/api/papers/batch", s.handleBatchAnalyze)
		r.Get("/api/jobs/{jobID}", s.handleJobStatus)

		r.Get("/api/papers", s.handleListPapers)
		r.Get("/api/papers/{docID}", s.handleGetPaper)
		r.Get("/api/papers/{docID}/report", s.handlePaperReport)
		r.Delete("/api/papers/{docID}", s.handleDeletePaper)

		r.Post("/api/corpus/compare", s.handleCompare)
		r.Get("/api/corpus/report", s.handleCorpusReport)

		r.Get("/api/stats/analysis", s.handleAnalysisStats)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
