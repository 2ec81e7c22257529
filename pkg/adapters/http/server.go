// Package http exposes environment check results over HTTP.
//
// The server is meant to run next to an application whose environment it
// describes: /readyz gates rollout on a passing check, /v1/report returns
// the full classification, and /metrics publishes Prometheus collectors.
package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/sill/pkg/observability"
	"github.com/aretw0/sill/pkg/schema"
)

// Server serves environment check reports for a single schema and source.
type Server struct {
	schema   *schema.Schema
	source   schema.Source
	logger   *slog.Logger
	registry *prometheus.Registry
	metrics  *observability.Metrics
}

// Option configures the server.
type Option func(*Server)

// WithLogger sets the logger for check outcomes. The default discards logs.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithRegistry sets the Prometheus registry backing /metrics. The default
// is a fresh registry private to this server.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(s *Server) {
		s.registry = reg
	}
}

// NewServer creates a report server for the given schema and source.
func NewServer(s *schema.Schema, src schema.Source, opts ...Option) *Server {
	srv := &Server{
		schema: s,
		source: src,
		logger: slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(srv)
	}
	if srv.registry == nil {
		srv.registry = prometheus.NewRegistry()
	}
	srv.metrics = observability.NewMetrics(srv.registry)
	return srv
}

// Handler returns the router serving the report endpoints.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Get("/healthz", s.handleHealth)
	r.Get("/readyz", s.handleReady)
	r.Get("/v1/report", s.handleReport)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	return r
}

// handleHealth reports process liveness only. It never touches the source.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleReady runs a full check and gates readiness on the outcome.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	rep := schema.Classify(s.schema, s.source)
	s.metrics.ObserveCheck(rep, time.Since(start))

	if rep.OK() {
		s.logger.Debug("readiness check passed", "valid", len(rep.Valid))
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
		return
	}

	failures := make([]string, 0, len(rep.Missing)+len(rep.Invalid))
	for _, name := range rep.Missing {
		failures = append(failures, name+": "+schema.ReasonMissing)
	}
	for _, fe := range rep.Invalid {
		failures = append(failures, fe.Error())
	}

	s.logger.Warn("readiness check failed",
		"missing", len(rep.Missing),
		"invalid", len(rep.Invalid),
	)
	writeJSON(w, http.StatusServiceUnavailable, map[string]any{
		"status":   "unready",
		"error":    schema.SummaryMessage,
		"failures": failures,
	})
}

// handleReport returns the full classification. Always 200: the report is
// the answer, /readyz is the gate.
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	rep := schema.Classify(s.schema, s.source)
	s.metrics.ObserveCheck(rep, time.Since(start))

	s.logger.Debug("report generated",
		"valid", len(rep.Valid),
		"missing", len(rep.Missing),
		"invalid", len(rep.Invalid),
	)
	writeJSON(w, http.StatusOK, rep)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("response encode failed", "error", err)
	}
}
