package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/beauty-site/internal/beauty"
)

const healthTimeout = 5 * time.Second

type HealthHandler struct {
	backend beauty.Backend
	version string
	static  bool
	logger  *zap.Logger
}

func NewHealthHandler(backend beauty.Backend, version string, static bool, logger *zap.Logger) *HealthHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HealthHandler{backend: backend, version: version, static: static, logger: logger}
}

// Check consulta a fonte do catálogo sem passar pelo cache.
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	start := time.Now()
	_, err := h.backend.ListServices(ctx)
	latency := time.Since(start)

	mode := "api"
	if h.static {
		mode = "static"
	}

	status, code := "ok", http.StatusOK
	if err != nil {
		h.logger.Warn("health check degraded", zap.Error(err))
		status, code = "degraded", http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"status":     status,
		"version":    h.version,
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
		"latency_ms": latency.Milliseconds(),
		"mode":       mode,
	})
}
