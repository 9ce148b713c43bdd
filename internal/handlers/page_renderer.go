package handlers

import (
	"net/url"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/beauty-site/internal/catalog"
	"github.com/BruksfildServices01/beauty-site/internal/config"
	"github.com/BruksfildServices01/beauty-site/internal/confirmation"
	domain "github.com/BruksfildServices01/beauty-site/internal/domain/appointment"
	"github.com/BruksfildServices01/beauty-site/internal/dto"
	"github.com/BruksfildServices01/beauty-site/internal/httperr"
	"github.com/BruksfildServices01/beauty-site/internal/models"
	"github.com/BruksfildServices01/beauty-site/internal/theme"
	"github.com/BruksfildServices01/beauty-site/internal/timezone"
	ucatalog "github.com/BruksfildServices01/beauty-site/internal/usecase/catalog"
)

const (
	msgCatalogUnavailable = "Não foi possível carregar os serviços. Tente novamente em instantes."

	CarouselStreamPath = "/catalogo/carrossel/stream"
)

// ======================================================
// RENDERER
// ======================================================

// PageRenderer monta a página única: perfil, catálogo, modal, agendamento e contato.
type PageRenderer struct {
	list     *ucatalog.ListServices
	get      *ucatalog.GetService
	profile  *config.Profile
	clock    *timezone.Clock
	interval time.Duration
	logger   *zap.Logger
}

func NewPageRenderer(
	list *ucatalog.ListServices,
	get *ucatalog.GetService,
	profile *config.Profile,
	clock *timezone.Clock,
	interval time.Duration,
	logger *zap.Logger,
) *PageRenderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PageRenderer{
		list:     list,
		get:      get,
		profile:  profile,
		clock:    clock,
		interval: interval,
		logger:   logger,
	}
}

// State lê o estado da página da query string e do tema resolvido.
func (p *PageRenderer) State(c *gin.Context) dto.PageState {
	return dto.PageStateFromQuery(c.Request.URL.Query(), theme.FromContext(c.Request.Context()))
}

// Services lista o catálogo, registrando a falha sem interromper a página.
func (p *PageRenderer) Services(c *gin.Context) ([]models.Service, error) {
	services, err := p.list.Execute(c.Request.Context())
	if err != nil {
		p.logger.Error("catalog load failed",
			zap.String("kind", string(httperr.KindOf(err))),
			zap.Error(err),
		)
	}
	return services, err
}

func (p *PageRenderer) Render(
	c *gin.Context,
	status int,
	state dto.PageState,
	form *domain.Form,
	receipt *confirmation.Receipt,
) {
	services, err := p.Services(c)

	catalogView := dto.NewCatalogView(
		state,
		catalog.NewView(services, state.Category, catalog.WithInterval(p.interval)),
		streamURL(state),
	)
	if err != nil {
		catalogView.Error = msgCatalogUnavailable
		catalogView.Carousel = nil
	}

	view := dto.PageView{
		Profile:        p.profile,
		Theme:          state.Theme,
		ThemeToggleURL: state.WithTheme(state.Theme.Toggle()).URL(""),
		Year:           p.clock.Year(),
		Catalog:        catalogView,
		Modal:          p.modal(c, state, services),
		Scheduler:      dto.NewSchedulerView(state, services, form, receipt),
		Contact:        dto.NewContactView(state),
	}

	c.HTML(status, "base.html", view)
}

func (p *PageRenderer) modal(c *gin.Context, state dto.PageState, services []models.Service) *dto.ModalView {
	if state.ServiceID == "" {
		return nil
	}
	for _, s := range services {
		if s.ID == state.ServiceID {
			return dto.NewModalView(state, s)
		}
	}

	s, err := p.get.Execute(c.Request.Context(), state.ServiceID)
	if err != nil {
		if !httperr.IsBusiness(err, httperr.CodeServiceNotFound) {
			p.logger.Warn("service lookup failed", zap.String("service_id", state.ServiceID), zap.Error(err))
		}
		return nil
	}
	return dto.NewModalView(state, *s)
}

// streamURL aponta o EventSource para o carrossel da categoria atual.
func streamURL(state dto.PageState) string {
	q := url.Values{}
	q.Set(dto.QueryCategory, string(state.Category))
	if state.Slide > 0 {
		q.Set(dto.QuerySlide, strconv.Itoa(state.Slide))
	}
	return CarouselStreamPath + "?" + q.Encode()
}
