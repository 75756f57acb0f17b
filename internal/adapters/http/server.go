// Package http exposes trip planning over a JSON API.
package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/wayfarer/internal/logging"
	"github.com/aretw0/wayfarer/pkg/domain"
)

const apiVersion = "0.1.0"

// Planner is the planning surface the server depends on. The root
// wayfarer.Planner satisfies it.
type Planner interface {
	Plan(ctx context.Context, req domain.TripRequest) (*domain.TripState, error)
}

// Server routes HTTP requests to a Planner.
type Server struct {
	planner Planner
	logger  *slog.Logger
	version string
	metrics *metrics
}

type metrics struct {
	registry     *prometheus.Registry
	plansTotal   *prometheus.CounterVec
	planDuration prometheus.Histogram
	fallbacks    prometheus.Counter
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		plansTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wayfarer_plans_total",
				Help: "Planning runs by outcome.",
			},
			[]string{"outcome"},
		),
		planDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "wayfarer_plan_duration_seconds",
				Help:    "Wall time of planning runs.",
				Buckets: prometheus.DefBuckets,
			},
		),
		fallbacks: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "wayfarer_itinerary_fallbacks_total",
				Help: "Itineraries rendered from the template because the composer failed or was absent.",
			},
		),
	}
	m.registry.MustRegister(m.plansTotal, m.planDuration, m.fallbacks)
	return m
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets a structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithVersion sets the version reported by GET /info.
func WithVersion(version string) Option {
	return func(s *Server) {
		s.version = version
	}
}

// NewHandler creates an HTTP handler for the planner.
func NewHandler(planner Planner, opts ...Option) http.Handler {
	s := &Server{
		planner: planner,
		logger:  logging.NewNop(),
		version: "dev",
		metrics: newMetrics(),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.health)
	r.Get("/info", s.info)
	r.Post("/plan", s.plan)
	r.Handle("/metrics", promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{}))

	return r
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) info(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"app":         "wayfarer-http",
		"version":     s.version,
		"api_version": apiVersion,
	})
}

// planResponse is the wire shape of a finished run. The final state is
// returned whole; clients branch on outcome.
type planResponse struct {
	Outcome string            `json:"outcome"`
	State   *domain.TripState `json:"state"`
}

func (s *Server) plan(w http.ResponseWriter, r *http.Request) {
	var req domain.TripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	start := time.Now()
	state, err := s.planner.Plan(r.Context(), req)
	if err != nil {
		s.logger.Error("plan failed", "err", err)
		writeError(w, http.StatusInternalServerError, "planning failed")
		return
	}
	s.metrics.planDuration.Observe(time.Since(start).Seconds())

	outcome := state.OutcomeKind()
	s.metrics.plansTotal.WithLabelValues(outcome).Inc()
	if state.UsedFallback {
		s.metrics.fallbacks.Inc()
	}
	s.logger.Info("plan finished",
		"run_id", state.RunID, "destination", req.Destination, "outcome", outcome)

	writeJSON(w, http.StatusOK, planResponse{Outcome: outcome, State: state})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
