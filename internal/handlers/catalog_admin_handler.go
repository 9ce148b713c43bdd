package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/beauty-site/internal/httpresp"
	"github.com/BruksfildServices01/beauty-site/internal/middleware"
	ucatalog "github.com/BruksfildServices01/beauty-site/internal/usecase/catalog"
)

type CatalogAdminHandler struct {
	list   *ucatalog.ListServices
	logger *zap.Logger
}

func NewCatalogAdminHandler(list *ucatalog.ListServices, logger *zap.Logger) *CatalogAdminHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogAdminHandler{list: list, logger: logger}
}

// Refresh descarta o cache e recarrega o catálogo na hora.
func (h *CatalogAdminHandler) Refresh(c *gin.Context) {
	services, err := h.list.Invalidate(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "catalog_refresh", err, msgCatalogUnavailable)
		return
	}

	h.logger.Info("catalog refreshed by admin",
		zap.String("admin", c.GetString(middleware.ContextAdminSubject)),
		zap.Int("services", len(services)),
	)
	httpresp.OK(c, gin.H{"services": len(services)})
}
