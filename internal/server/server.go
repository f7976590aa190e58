package server

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"impactcast/internal/config"
	"impactcast/internal/fetchers"
	"impactcast/internal/llm"
	"impactcast/internal/logger"
	"impactcast/internal/mocks"
	"impactcast/internal/narrative"
	"impactcast/internal/observability"
	"impactcast/internal/reports"
	"impactcast/internal/simulation"
	"impactcast/internal/storage"
)

// Server wires the simulation pipeline, narrative formatter, report
// generator and storage behind the HTTP API.
type Server struct {
	Config    *config.Config
	Pipeline  *simulation.Pipeline
	Formatter *narrative.Formatter
	Generator *reports.Generator
	Storage   storage.StorageClient
	Metrics   *observability.Metrics

	log *logger.Logger
}

// NewServer creates a new server instance for the given deployment mode.
func NewServer(ctx context.Context, cfg *config.Config, deploymentMode storage.DeploymentMode, metrics *observability.Metrics) (*Server, error) {
	log := logger.GetGlobalLogger().WithComponent("server")

	store, err := storage.NewStorageClient(ctx, deploymentMode, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	var catalog simulation.CatalogResolver
	if cfg.MockupMode {
		mocksDir := filepath.Join("internal", "mocks")
		catalog = mocks.NewMockService(mocksDir)
		log.Info("Mockup mode enabled", map[string]interface{}{"mocks_dir": mocksDir})
	} else {
		catalog = fetchers.NewNEOFetcher(cfg.NEOLookupURL, cfg.NASAAPIKey, cfg.NEOLookupTimeout)
	}

	var commentary reports.CommentaryProvider
	if cfg.OpenAIAPIKey != "" {
		commentary = llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	}

	var news reports.HeadlinesProvider
	if cfg.NASANewsFeedURL != "" {
		news = fetchers.NewNewsFetcher(cfg.NASANewsFeedURL)
	}

	return &Server{
		Config:    cfg,
		Pipeline:  simulation.NewPipeline(catalog, nil),
		Formatter: narrative.NewFormatter(),
		Generator: reports.NewGenerator(store, commentary, news),
		Storage:   store,
		Metrics:   metrics,
		log:       log,
	}, nil
}

// SetupRoutes configures HTTP routes for the server
func (s *Server) SetupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/simulate", s.HandleSimulate)
	mux.HandleFunc("/story", s.HandleStory)
	mux.HandleFunc("/report", s.HandleGenerateReport)
	mux.HandleFunc("/reports", s.HandleListReports)
	mux.HandleFunc("/files/", s.HandleFileProxy)
	mux.HandleFunc("/health", s.HandleHealth)
	mux.Handle("/metrics", promhttp.Handler())

	// Root path last (catch-all)
	mux.HandleFunc("/", s.HandleRoot)

	return mux
}

// Close cleans up server resources
func (s *Server) Close() error {
	if s.Storage != nil {
		return s.Storage.Close()
	}
	return nil
}
