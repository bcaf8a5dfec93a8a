package api

import (
	"context"
	"net/http"

	"github.com/pontoon/ai/internal/domain/types"
	"github.com/pontoon/ai/pkg/logger"
)

// HintDependencies provides playing advice.
type HintDependencies interface {
	Hint(ctx context.Context) types.Hint
}

// HintHandler handles hint requests.
type HintHandler struct {
	deps   HintDependencies
	logger logger.Logger
}

// NewHintHandler creates a new hint handler.
func NewHintHandler(deps HintDependencies, l logger.Logger) *HintHandler {
	return &HintHandler{deps: deps, logger: l}
}

// HandleHint handles GET /ai/hint requests. Query parameters and body are ignored.
func (h *HintHandler) HandleHint(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), h.logger, w, http.StatusOK, h.deps.Hint(r.Context()))
}
