package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"impactcast/internal/config"
	"impactcast/internal/models"
	"impactcast/internal/narrative"
	"impactcast/internal/simulation"
	"impactcast/internal/storage"
)

const maxRequestBodyBytes = 1 << 20 // 1 MiB

// writeJSON writes a JSON response with the given status code.
func (s *Server) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.log.Error("Failed to encode response", err)
	}
}

// writeError writes a JSON error body the way the API contract promises.
func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}

// HandleSimulate runs one impact simulation and returns the full envelope.
func (s *Server) HandleSimulate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	resp, ok := s.runSimulation(w, r)
	if !ok {
		return
	}

	s.writeJSON(w, http.StatusOK, resp)
}

// runSimulation decodes a simulation request, runs the pipeline and maps
// errors to HTTP statuses. On failure the response is already written and
// ok is false.
func (s *Server) runSimulation(w http.ResponseWriter, r *http.Request) (*models.SimulationResponse, bool) {
	start := time.Now()

	var req models.SimulationRequest
	body := http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		s.Metrics.SimulationsTotal.WithLabelValues("invalid_input").Inc()
		s.writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return nil, false
	}

	resp, err := s.Pipeline.Simulate(r.Context(), req)
	s.Metrics.SimulationDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		switch {
		case errors.Is(err, simulation.ErrInvalidInput):
			s.Metrics.SimulationsTotal.WithLabelValues("invalid_input").Inc()
			s.writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, simulation.ErrCatalogLookup):
			s.Metrics.SimulationsTotal.WithLabelValues("catalog_failed").Inc()
			s.Metrics.CatalogLookups.WithLabelValues("error").Inc()
			s.writeError(w, http.StatusBadGateway, err.Error())
		default:
			s.Metrics.SimulationsTotal.WithLabelValues("error").Inc()
			s.log.Error("Simulation failed", err)
			s.writeError(w, http.StatusInternalServerError, "simulation failed")
		}
		return nil, false
	}

	if req.NEOID != "" {
		s.Metrics.CatalogLookups.WithLabelValues("hit").Inc()
	}
	s.Metrics.SimulationsTotal.WithLabelValues("ok").Inc()
	return resp, true
}

// HandleStory renders the narrative paragraph for a set of results. The
// body may be a full simulation response or a bare results object.
func (s *Server) HandleStory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	var req models.StoryRequest
	if len(body) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			s.Metrics.NarrativesTotal.WithLabelValues("missing_field").Inc()
			s.writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
			return
		}
	}

	results := req.Results
	if results == nil {
		// Bare results object: the body itself carries the fields.
		results = &models.StoryResults{}
		if len(body) > 0 {
			if err := json.Unmarshal(body, results); err != nil {
				s.Metrics.NarrativesTotal.WithLabelValues("missing_field").Inc()
				s.writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
				return
			}
		}
	}

	var lat, lon *float64
	if req.Input != nil {
		lat = req.Input.ImpactLat
		lon = req.Input.ImpactLon
	}

	story, err := s.Formatter.Describe(*results, lat, lon)
	if err != nil {
		s.Metrics.NarrativesTotal.WithLabelValues("missing_field").Inc()
		if errors.Is(err, narrative.ErrMissingField) {
			s.writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.writeError(w, http.StatusInternalServerError, "narrative generation failed")
		return
	}

	s.Metrics.NarrativesTotal.WithLabelValues("ok").Inc()
	s.writeJSON(w, http.StatusOK, models.StoryResponse{Story: story})
}

// HandleGenerateReport runs a simulation and renders a stored HTML report.
func (s *Server) HandleGenerateReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	resp, ok := s.runSimulation(w, r)
	if !ok {
		return
	}

	story, err := s.Formatter.DescribeResult(resp.Results, resp.Input.ImpactLat, resp.Input.ImpactLon)
	if err != nil {
		s.log.Error("Narrative for report failed", err)
		s.writeError(w, http.StatusInternalServerError, "report generation failed")
		return
	}

	path, err := s.Generator.Generate(r.Context(), resp, story)
	if err != nil {
		s.log.Error("Report generation failed", err)
		s.writeError(w, http.StatusInternalServerError, "report generation failed")
		return
	}

	s.Metrics.ReportsGenerated.Inc()
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"report": "/files/" + path,
	})
}

// HandleListReports lists recent reports
func (s *Server) HandleListReports(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	limit := 10
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
		if limit > 100 {
			limit = 100
		}
	}

	reportList, err := s.Storage.ListReports(r.Context(), limit)
	if err != nil {
		s.log.Error("Failed to list reports", err)
		s.writeError(w, http.StatusInternalServerError, "failed to list reports")
		return
	}

	urls := make([]string, 0, len(reportList))
	for _, p := range reportList {
		urls = append(urls, "/files/"+p)
	}

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"reports":   urls,
		"count":     len(urls),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HandleFileProxy serves stored report files from local or GCS storage.
func (s *Server) HandleFileProxy(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	filePath := strings.TrimPrefix(r.URL.Path, "/files/")
	if filePath == "" {
		s.writeError(w, http.StatusBadRequest, "file path required")
		return
	}

	// Prevent directory traversal
	if strings.Contains(filePath, "..") {
		s.writeError(w, http.StatusBadRequest, "invalid file path")
		return
	}

	fileData, err := s.Storage.GetFile(r.Context(), filePath)
	if err != nil {
		s.writeError(w, http.StatusNotFound, "file not found")
		return
	}

	w.Header().Set("Content-Type", storage.GetContentType(filePath))
	if _, err := w.Write(fileData); err != nil {
		s.log.Error("Failed to write file response", err)
	}
}

// HandleHealth provides health check endpoint
func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"version":   config.GetVersion(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HandleRoot serves the index page with the simulation form.
func (s *Server) HandleRoot(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if r.URL.Path != "/" {
		s.writeError(w, http.StatusNotFound, "not found")
		return
	}

	w.Header().Set("Content-Type", "text/html")

	templatePath := filepath.Join("internal", "templates", "index.html")
	if content, err := os.ReadFile(templatePath); err == nil {
		if _, err := w.Write(content); err != nil {
			s.log.Error("Failed to write index page", err)
		}
		return
	}

	fmt.Fprint(w, indexFallbackPage)
}
