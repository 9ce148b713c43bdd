package handlers

import (
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/beauty-site/internal/catalog"
	"github.com/BruksfildServices01/beauty-site/internal/config"
	domain "github.com/BruksfildServices01/beauty-site/internal/domain/appointment"
	"github.com/BruksfildServices01/beauty-site/internal/dto"
	"github.com/BruksfildServices01/beauty-site/internal/format"
	"github.com/BruksfildServices01/beauty-site/internal/httperr"
	"github.com/BruksfildServices01/beauty-site/internal/httpresp"
	ucAppointment "github.com/BruksfildServices01/beauty-site/internal/usecase/appointment"
	ucatalog "github.com/BruksfildServices01/beauty-site/internal/usecase/catalog"
	"github.com/BruksfildServices01/beauty-site/internal/whatsapp"
)

const catalogMaxAge = time.Minute

// ======================================================
// HANDLER
// ======================================================

// PublicHandler expõe em JSON os mesmos dados da página.
type PublicHandler struct {
	list    *ucatalog.ListServices
	get     *ucatalog.GetService
	submit  *ucAppointment.SubmitAppointment
	profile *config.Profile
	logger  *zap.Logger
}

func NewPublicHandler(
	list *ucatalog.ListServices,
	get *ucatalog.GetService,
	submit *ucAppointment.SubmitAppointment,
	profile *config.Profile,
	logger *zap.Logger,
) *PublicHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PublicHandler{
		list:    list,
		get:     get,
		submit:  submit,
		profile: profile,
		logger:  logger,
	}
}

// ======================================================
// GET /api/services
// ======================================================

func (h *PublicHandler) ListServices(c *gin.Context) {
	services, err := h.list.Execute(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "list_services", err, msgCatalogUnavailable)
		return
	}

	cat := catalog.ParseCategory(c.Query(dto.QueryCategory))
	httpresp.Cached(c, catalogMaxAge, dto.NewServiceListDTO(services, cat))
}

// ======================================================
// GET /api/services/:id
// ======================================================

func (h *PublicHandler) GetService(c *gin.Context) {
	s, err := h.get.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, "get_service", err, "Serviço não encontrado.")
		return
	}

	httpresp.Cached(c, catalogMaxAge, dto.NewServiceDetailDTO(*s))
}

// ======================================================
// POST /api/appointments
// ======================================================

func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	var fields domain.Fields
	if err := c.ShouldBindJSON(&fields); err != nil {
		httperr.BadRequest(c, "invalid_request", "JSON inválido.")
		return
	}

	serviceName := ""
	if fields.ServiceID != "" {
		if s, err := h.get.Execute(c.Request.Context(), strings.TrimSpace(fields.ServiceID)); err == nil {
			serviceName = s.Name
		}
	}

	form := domain.NewForm()
	err := h.submit.Execute(c.Request.Context(), form, ucAppointment.SubmitInput{
		Fields:      fields,
		ServiceName: serviceName,
		ClientIP:    c.ClientIP(),
	})
	if err != nil {
		var valErr *httperr.ValidationError
		switch {
		case errors.As(err, &valErr):
			httperr.UnprocessableEntity(c, string(httperr.KindValidation), domain.MsgMissingFields, strings.Join(valErr.Fields, ","))
		case httperr.KindOf(err) != "":
			httperr.BadGateway(c, string(httperr.KindOf(err)), httperr.UserMessage(err, domain.MsgSubmitFailed), format.PlainText(httperr.BackendDetail(err)))
		default:
			respondError(c, h.logger, "create_appointment", err, domain.MsgSubmitFailed)
		}
		return
	}

	httpresp.Created(c, form.Response)
}

// ======================================================
// GET /api/whatsapp
// ======================================================

func (h *PublicHandler) WhatsApp(c *gin.Context) {
	msg := strings.TrimSpace(c.Query("texto"))
	if msg == "" {
		msg = h.profile.ContactGreeting
	}
	httpresp.OK(c, gin.H{"url": whatsapp.Link(h.profile.WhatsApp, msg)})
}
