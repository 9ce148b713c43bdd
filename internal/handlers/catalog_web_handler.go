package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/beauty-site/internal/catalog"
	"github.com/BruksfildServices01/beauty-site/internal/confirmation"
	"github.com/BruksfildServices01/beauty-site/internal/dto"
	"github.com/BruksfildServices01/beauty-site/internal/httperr"
)

// ======================================================
// HANDLER
// ======================================================

type CatalogWebHandler struct {
	page     *PageRenderer
	signer   *confirmation.Signer
	interval time.Duration
	logger   *zap.Logger
}

func NewCatalogWebHandler(
	page *PageRenderer,
	signer *confirmation.Signer,
	interval time.Duration,
	logger *zap.Logger,
) *CatalogWebHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogWebHandler{
		page:     page,
		signer:   signer,
		interval: interval,
		logger:   logger,
	}
}

// ======================================================
// GET /
// ======================================================

func (h *CatalogWebHandler) Home(c *gin.Context) {
	state := h.page.State(c)

	var receipt *confirmation.Receipt
	if state.Receipt != "" {
		r, err := h.signer.Parse(state.Receipt)
		if err != nil {
			h.logger.Info("discarding appointment receipt", zap.Error(err))
			state = state.WithReceipt("")
		} else {
			receipt = r
		}
	}

	h.page.Render(c, http.StatusOK, state, nil, receipt)
}

// ======================================================
// GET /servicos/:id
// ======================================================

// ServiceModal devolve só o fragmento da modal, para quem carrega sob demanda.
func (h *CatalogWebHandler) ServiceModal(c *gin.Context) {
	state := h.page.State(c)
	state = state.WithService(c.Param("id")).WithImage(state.Image)

	s, err := h.page.get.Execute(c.Request.Context(), state.ServiceID)
	if err != nil {
		status := httperr.Status(err)
		if status != http.StatusNotFound {
			h.logger.Error("service modal failed", zap.String("service_id", state.ServiceID), zap.Error(err))
		}
		c.String(status, http.StatusText(status))
		return
	}

	c.HTML(http.StatusOK, "modal.html", dto.NewModalView(state, *s))
}

// ======================================================
// GET /catalogo/carrossel/stream
// ======================================================

// CarouselStream empurra o avanço automático do carrossel via SSE.
// A conexão é o ciclo de vida do carrossel: fechou, o timer para.
func (h *CatalogWebHandler) CarouselStream(c *gin.Context) {
	ctx := c.Request.Context()
	state := h.page.State(c)

	// --------------------------------------------------
	// 1️⃣ Carrossel da categoria
	// --------------------------------------------------
	services, err := h.page.Services(c)
	if err != nil {
		c.Status(httperr.Status(err))
		return
	}

	view := catalog.NewView(services, state.Category, catalog.WithInterval(h.interval))
	car := view.Carousel
	car.GoTo(state.Slide)

	if !car.Navigable() {
		c.Status(http.StatusNoContent)
		return
	}

	// --------------------------------------------------
	// 2️⃣ Stream
	// --------------------------------------------------
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	c.SSEvent("ready", catalog.Tick{Key: car.Key(), Index: car.Index(), Image: currentImage(car)})
	c.Writer.Flush()

	ticks := make(chan catalog.Tick)
	go car.Run(ctx, func(t catalog.Tick) {
		select {
		case ticks <- t:
		case <-ctx.Done():
		}
	})

	for {
		select {
		case <-ctx.Done():
			h.logger.Debug("carousel stream closed", zap.String("key", car.Key()))
			return
		case t := <-ticks:
			c.SSEvent("tick", t)
			c.Writer.Flush()
		}
	}
}

func currentImage(c *catalog.Carousel) string {
	img, _ := c.Current()
	return img
}
