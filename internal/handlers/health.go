package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"personalcolor-ai/internal/contextutil"
	"personalcolor-ai/internal/indexer"
)

// ModelChecker reports whether the generation model is served. *llm.Client satisfies it.
type ModelChecker interface {
	IsModelAvailable(ctx context.Context) (bool, error)
}

// HealthHandler handles HTTP requests for health checks.
type HealthHandler struct {
	indexes            []indexer.IndexStats
	models             ModelChecker
	healthCheckTimeout time.Duration
}

// NewHealthHandler creates a new HealthHandler over the knowledge indexes built at startup.
func NewHealthHandler(indexes []indexer.IndexStats, models ModelChecker) *HealthHandler {
	return &HealthHandler{
		indexes:            indexes,
		models:             models,
		healthCheckTimeout: 5 * time.Second,
	}
}

// HealthResponse represents the health check response.
//
// swagger:model HealthResponse
type HealthResponse struct {
	// Overall health status: "healthy", "degraded", or "unhealthy"
	Status string `json:"status"`

	// Timestamp of the health check
	Timestamp string `json:"timestamp"`

	// Individual check results
	Checks map[string]string `json:"checks"`

	// List of issues (only present if status is degraded or unhealthy)
	Issues []string `json:"issues,omitempty"`

	// Knowledge index statistics
	Indexes []indexer.IndexStats `json:"indexes"`
}

// ServeHTTP handles HTTP requests for health checks.
//
// Returns 200 OK when the generation model is reachable, with status
// "degraded" if a knowledge index is empty, and 503 Service Unavailable
// when the model cannot be reached.
//
// swagger:route GET /api/health healthCheck
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	checkCtx, cancel := context.WithTimeout(ctx, h.healthCheckTimeout)
	defer cancel()

	checks := make(map[string]string)
	var issues []string

	if h.checkModel(checkCtx, logger) {
		checks["generation_model"] = "ok"
	} else {
		checks["generation_model"] = "error"
		issues = append(issues, "generation_model_unavailable")
	}

	emptyIndex := false
	for _, ix := range h.indexes {
		if ix.Chunks == 0 {
			checks["index:"+ix.Name] = "empty"
			issues = append(issues, "knowledge_index_empty:"+ix.Name)
			emptyIndex = true
		} else {
			checks["index:"+ix.Name] = "ok"
		}
	}

	status := "healthy"
	httpStatus := http.StatusOK
	switch {
	case checks["generation_model"] != "ok":
		status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable
	case emptyIndex:
		status = "degraded"
	}

	indexes := h.indexes
	if indexes == nil {
		indexes = []indexer.IndexStats{}
	}
	writeJSON(w, ctx, httpStatus, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Issues:    issues,
		Indexes:   indexes,
	})
}

func (h *HealthHandler) checkModel(ctx context.Context, logger *slog.Logger) bool {
	if h.models == nil {
		return false
	}
	ok, err := h.models.IsModelAvailable(ctx)
	if err != nil {
		logger.WarnContext(ctx, "generation model health check failed", "error", err)
		return false
	}
	if !ok {
		logger.WarnContext(ctx, "generation model is not listed by the server")
	}
	return ok
}
