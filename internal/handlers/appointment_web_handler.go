package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/beauty-site/internal/confirmation"
	domain "github.com/BruksfildServices01/beauty-site/internal/domain/appointment"
	"github.com/BruksfildServices01/beauty-site/internal/httperr"
	ucAppointment "github.com/BruksfildServices01/beauty-site/internal/usecase/appointment"
)

const msgTooManyAttempts = "Muitas tentativas em pouco tempo. Aguarde um instante e tente novamente."

// ======================================================
// HANDLER
// ======================================================

type AppointmentWebHandler struct {
	page   *PageRenderer
	submit *ucAppointment.SubmitAppointment
	signer *confirmation.Signer
	logger *zap.Logger
}

func NewAppointmentWebHandler(
	page *PageRenderer,
	submit *ucAppointment.SubmitAppointment,
	signer *confirmation.Signer,
	logger *zap.Logger,
) *AppointmentWebHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AppointmentWebHandler{
		page:   page,
		submit: submit,
		signer: signer,
		logger: logger,
	}
}

// ======================================================
// POST /agendamento
// ======================================================

func (h *AppointmentWebHandler) Submit(c *gin.Context) {
	state := h.page.State(c)
	form := domain.NewForm()

	var fields domain.Fields
	if err := c.ShouldBind(&fields); err != nil {
		h.logger.Warn("appointment form bind failed", zap.Error(err))
	}

	// --------------------------------------------------
	// 1️⃣ Envio (state machine)
	// --------------------------------------------------
	serviceName := h.serviceName(c, fields.ServiceID)
	err := h.submit.Execute(c.Request.Context(), form, ucAppointment.SubmitInput{
		Fields:      fields,
		ServiceName: serviceName,
		ClientIP:    c.ClientIP(),
	})
	if err != nil {
		h.page.Render(c, httperr.Status(err), state, form, nil)
		return
	}

	// --------------------------------------------------
	// 2️⃣ PRG para o estado confirmado
	// --------------------------------------------------
	receipt := confirmation.Receipt{
		AppointmentID:  form.Response.AppointmentID,
		Status:         form.Response.Status,
		Message:        form.Response.Message,
		EstimatedPrice: form.Response.EstimatedPrice,
		ServiceName:    serviceName,
	}

	token, err := h.signer.Sign(*form.Response, serviceName)
	if err != nil {
		h.logger.Error("receipt signing failed", zap.String("appointment_id", receipt.AppointmentID), zap.Error(err))
		h.page.Render(c, http.StatusOK, state, form, &receipt)
		return
	}

	c.Redirect(http.StatusSeeOther, state.WithoutService().WithReceipt(token).URL("agendamento"))
}

// TooManyRequests é o retorno do rate limit para o formulário da página.
func (h *AppointmentWebHandler) TooManyRequests(c *gin.Context) {
	form := domain.NewForm()
	var fields domain.Fields
	_ = c.ShouldBind(&fields)
	form.Fields = fields.Normalize()
	form.Error = msgTooManyAttempts

	h.page.Render(c, http.StatusTooManyRequests, h.page.State(c), form, nil)
}

func (h *AppointmentWebHandler) serviceName(c *gin.Context, id string) string {
	if id == "" {
		return ""
	}
	s, err := h.page.get.Execute(c.Request.Context(), id)
	if err != nil {
		return ""
	}
	return s.Name
}
