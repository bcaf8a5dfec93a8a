// Package service provides the advisor that backs the HTTP API.
package service

import (
	"context"
	"sync"

	"github.com/pontoon/ai/internal/domain/types"
	"github.com/pontoon/ai/pkg/logger"
	"github.com/pontoon/ai/pkg/metrics"
)

// Service answers health checks and hint requests.
type Service struct {
	mu      sync.RWMutex
	started bool

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a Service.
func New(opts ...Option) *Service {
	s := &Service{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start marks the service ready. Calling it twice is a no-op.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.started = true
	s.logger.Info(ctx, "advisor service started", logger.String("hint", types.DefaultHint))
	return nil
}

// Stop marks the service stopped. Calling it on a stopped service is a no-op.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "advisor service stopped")
}

// Started reports whether Start has been called without a matching Stop.
func (s *Service) Started() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.started
}

// Health returns the service health. It never fails.
func (s *Service) Health(_ context.Context) types.HealthStatus {
	metrics.RecordHealthCheck()
	return types.NewHealthStatus()
}

// Hint returns the canned playing advice. It never fails.
func (s *Service) Hint(_ context.Context) types.Hint {
	metrics.RecordHintServed()
	return types.NewHint()
}
