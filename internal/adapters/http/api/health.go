package api

import (
	"context"
	"net/http"

	"github.com/pontoon/ai/internal/domain/types"
	"github.com/pontoon/ai/pkg/logger"
)

// HealthDependencies provides the health status.
type HealthDependencies interface {
	Health(ctx context.Context) types.HealthStatus
}

// HealthHandler handles health check requests.
type HealthHandler struct {
	deps   HealthDependencies
	logger logger.Logger
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(deps HealthDependencies, l logger.Logger) *HealthHandler {
	return &HealthHandler{deps: deps, logger: l}
}

// HandleHealth handles GET /healthz requests.
func (h *HealthHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), h.logger, w, http.StatusOK, h.deps.Health(r.Context()))
}
