package catalog

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/beauty-site/internal/beauty"
	"github.com/BruksfildServices01/beauty-site/internal/cache"
	"github.com/BruksfildServices01/beauty-site/internal/models"
)

// ======================================================
// USE CASE
// ======================================================

type ListServices struct {
	backend beauty.Backend
	cache   cache.Catalog
	logger  *zap.Logger
}

func NewListServices(
	backend beauty.Backend,
	c cache.Catalog,
	logger *zap.Logger,
) *ListServices {
	if c == nil {
		c = cache.NopCatalog{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ListServices{
		backend: backend,
		cache:   c,
		logger:  logger,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *ListServices) Execute(ctx context.Context) ([]models.Service, error) {

	// --------------------------------------------------
	// 1️⃣ Cache
	// --------------------------------------------------
	services, err := uc.cache.Get(ctx)
	if err == nil {
		return services, nil
	}
	if !errors.Is(err, cache.ErrMiss) {
		uc.logger.Warn("catalog cache read failed", zap.Error(err))
	}

	// --------------------------------------------------
	// 2️⃣ Backend
	// --------------------------------------------------
	return uc.Refresh(ctx)
}

// Refresh busca o catálogo no backend e regrava o cache.
func (uc *ListServices) Refresh(ctx context.Context) ([]models.Service, error) {
	services, err := uc.backend.ListServices(ctx)
	if err != nil {
		return nil, err
	}

	if err := uc.cache.Set(ctx, services); err != nil {
		uc.logger.Warn("catalog cache write failed", zap.Error(err))
	}
	return services, nil
}

// Invalidate descarta o catálogo em cache e busca de novo no backend.
func (uc *ListServices) Invalidate(ctx context.Context) ([]models.Service, error) {
	if err := uc.cache.Invalidate(ctx); err != nil {
		uc.logger.Warn("catalog cache invalidate failed", zap.Error(err))
	}
	return uc.Refresh(ctx)
}
