package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/mcoot/mindcare/internal/api/response"
	"github.com/mcoot/mindcare/internal/model"
	"github.com/mcoot/mindcare/internal/storage"
)

// healthProbeKey is read, never written, to check backends that cannot ping
const healthProbeKey = "mindcare_health_probe"

// HealthHandler reports server and storage health
type HealthHandler struct {
	storage storage.Storage
	logger  *slog.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(s storage.Storage, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{storage: s, logger: logger}
}

// Check handles GET /api/v1/health
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	if err := h.checkStorage(r.Context()); err != nil {
		h.logger.Error("storage health check failed", slog.Any("error", err))
		response.JSON(w, http.StatusServiceUnavailable, response.Health{Status: "degraded", Storage: "error"})
		return
	}
	response.JSON(w, http.StatusOK, response.Health{Status: "ok", Storage: "ok"})
}

func (h *HealthHandler) checkStorage(ctx context.Context) error {
	if p, ok := h.storage.(storage.Pinger); ok {
		return p.Ping(ctx)
	}
	_, err := h.storage.Get(ctx, healthProbeKey)
	if errors.Is(err, model.ErrKeyNotFound) {
		return nil
	}
	return err
}
