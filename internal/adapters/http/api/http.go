// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/pontoon/ai/internal/domain/types"
	"github.com/pontoon/ai/pkg/logger"
	"github.com/pontoon/ai/pkg/metrics"
)

// Dependencies required by HTTP handlers.
type Dependencies interface {
	Health(ctx context.Context) types.HealthStatus
	Hint(ctx context.Context) types.Hint
}

// Server wires HTTP routes for the hint API.
type Server struct {
	healthHandler  *HealthHandler
	hintHandler    *HintHandler
	logger         logger.Logger
	metricsEnabled bool
}

// Option applies a configuration option to the Server.
type Option func(*Server)

// WithLogger sets the logger used for access logs and write failures.
func WithLogger(l logger.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetricsEndpoint toggles GET /metrics.
func WithMetricsEndpoint(enabled bool) Option {
	return func(s *Server) {
		s.metricsEnabled = enabled
	}
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, opts ...Option) *Server {
	s := &Server{metricsEnabled: true}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Named("http")
	}
	s.healthHandler = NewHealthHandler(deps, s.logger)
	s.hintHandler = NewHintHandler(deps, s.logger)
	return s
}

// Register attaches all HTTP routes to mux. Method-qualified patterns let the
// mux answer 404 for unknown paths and 405 for a wrong method on a known one.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}
	mux.HandleFunc("GET /healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("GET /ai/hint", MetricsMiddleware(s.hintHandler.HandleHint, "hint"))
	if s.metricsEnabled {
		mux.Handle("GET /metrics", metrics.Handler())
	}
}

// Handler wraps mux with the request-scoped middleware chain.
func (s *Server) Handler(mux *http.ServeMux) http.Handler {
	return RequestIDMiddleware(AccessLogMiddleware(s.logger, mux))
}

func writeJSON(ctx context.Context, l logger.Logger, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		l.Debug(ctx, "write response failed", logger.Error(err))
	}
}
