package handlers

import (
	"context"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/beauty-site/internal/httperr"
	"github.com/BruksfildServices01/beauty-site/internal/httpresp"
	"github.com/BruksfildServices01/beauty-site/internal/infra/repository"
)

type AuditLogLister interface {
	List(ctx context.Context, filter repository.AuditLogFilter) (*repository.AuditLogPage, error)
}

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	repo   AuditLogLister
	logger *zap.Logger
}

// NewAuditLogsHandler aceita repo nil quando o banco não está configurado.
func NewAuditLogsHandler(repo AuditLogLister, logger *zap.Logger) *AuditLogsHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuditLogsHandler{repo: repo, logger: logger}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	if h.repo == nil {
		httperr.ServiceUnavailable(c, "audit_disabled", "Auditoria indisponível.")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	filter := repository.AuditLogFilter{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
		From:   parseDay(c.Query("from")),
		To:     parseDay(c.Query("to")),
		Page:   page,
		Limit:  limit,
	}

	result, err := h.repo.List(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("audit list failed", zap.Error(err))
		httperr.Internal(c, "audit_list_failed", "Erro ao listar logs.")
		return
	}

	httpresp.OK(c, result)
}

func parseDay(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil
	}
	return &t
}
