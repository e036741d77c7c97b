package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vietddude/launchdash/internal/core/domain"
	"github.com/vietddude/launchdash/internal/metrics"
	"github.com/vietddude/launchdash/internal/render"
	"github.com/vietddude/launchdash/internal/session"
)

// Server exposes the dashboard controls and charts over HTTP.
type Server struct {
	sessions *session.Manager
	renderer render.Renderer
	step     float64
	mux      *http.ServeMux
	server   *http.Server
}

// NewServer creates a new dashboard server. step is the payload slider step.
func NewServer(sessions *session.Manager, renderer render.Renderer, port int, step float64) *Server {
	mux := http.NewServeMux()
	s := &Server{
		sessions: sessions,
		renderer: renderer,
		step:     step,
		mux:      mux,
		server: &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: mux,
		},
	}

	mux.HandleFunc("GET /api/options", s.handleOptions)
	mux.HandleFunc("POST /api/sessions", s.handleCreate)
	mux.HandleFunc("GET /api/sessions/{id}", s.handleGet)
	mux.HandleFunc("PUT /api/sessions/{id}/category", s.handleCategory)
	mux.HandleFunc("PUT /api/sessions/{id}/range", s.handleRange)
	mux.HandleFunc("DELETE /api/sessions/{id}", s.handleDelete)
	mux.HandleFunc("GET /api/sessions/{id}/charts/pie.svg", s.handlePieChart)
	mux.HandleFunc("GET /api/sessions/{id}/charts/scatter.svg", s.handleScatterChart)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.Handle("GET /metrics", promhttp.Handler())

	return s
}

// Handler returns the request router.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Start starts the HTTP server. It returns nil after a graceful Stop.
func (s *Server) Start() error {
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop stops the HTTP server.
func (s *Server) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// OptionsResponse describes the two filter controls.
type OptionsResponse struct {
	Categories   []domain.CategoryOption `json:"categories"`
	Slider       domain.SliderBounds     `json:"slider"`
	DefaultRange domain.PayloadRange     `json:"default_range"`
}

type categoryRequest struct {
	Value *string `json:"value"`
}

type rangeRequest struct {
	Low  *float64 `json:"low"`
	High *float64 `json:"high"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleOptions(w http.ResponseWriter, r *http.Request) {
	store := s.sessions.Store()
	writeJSON(w, http.StatusOK, OptionsResponse{
		Categories:   store.Categories(),
		Slider:       store.SliderBounds(s.step),
		DefaultRange: store.DefaultRange(),
	})
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	b := s.sessions.Create()
	writeJSON(w, http.StatusCreated, b.Snapshot())
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	b, ok := s.lookup(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, b.Snapshot())
}

func (s *Server) handleCategory(w http.ResponseWriter, r *http.Request) {
	b, ok := s.lookup(w, r)
	if !ok {
		return
	}

	var req categoryRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if req.Value == nil {
		writeError(w, http.StatusBadRequest, errors.New("missing field: value"))
		return
	}
	if !s.sessions.Store().HasCategory(*req.Value) {
		slog.Debug("Unknown category selected", "session", b.ID(), "category", *req.Value)
	}

	b.SetCategory(*req.Value)
	writeJSON(w, http.StatusOK, b.Snapshot())
}

func (s *Server) handleRange(w http.ResponseWriter, r *http.Request) {
	b, ok := s.lookup(w, r)
	if !ok {
		return
	}

	var req rangeRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if req.Low == nil || req.High == nil {
		writeError(w, http.StatusBadRequest, errors.New("missing field: low and high are required"))
		return
	}

	b.SetRange(*req.Low, *req.High)
	writeJSON(w, http.StatusOK, b.Snapshot())
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.sessions.Delete(r.PathValue("id")); err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handlePieChart(w http.ResponseWriter, r *http.Request) {
	b, ok := s.lookup(w, r)
	if !ok {
		return
	}
	fig := b.Snapshot().Pie
	s.writeChart(w, "pie", func(buf *bytes.Buffer) error {
		return s.renderer.RenderPie(buf, fig)
	})
}

func (s *Server) handleScatterChart(w http.ResponseWriter, r *http.Request) {
	b, ok := s.lookup(w, r)
	if !ok {
		return
	}
	fig := b.Snapshot().Scatter
	s.writeChart(w, "scatter", func(buf *bytes.Buffer) error {
		return s.renderer.RenderScatter(buf, fig)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "healthy",
		"records":  s.sessions.Store().Len(),
		"sessions": s.sessions.Len(),
	})
}

func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (*session.Binder, bool) {
	b, err := s.sessions.Get(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return nil, false
	}
	return b, true
}

// writeChart renders into a buffer first so a failed render still gets a
// proper error status.
func (s *Server) writeChart(w http.ResponseWriter, name string, draw func(*bytes.Buffer) error) {
	var buf bytes.Buffer
	if err := draw(&buf); err != nil {
		metrics.ChartRenders.WithLabelValues(name, "error").Inc()
		slog.Error("Chart render failed", "chart", name, "error", err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	metrics.ChartRenders.WithLabelValues(name, "ok").Inc()

	w.Header().Set("Content-Type", s.renderer.ContentType())
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func decodeBody(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
