package appointment

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/beauty-site/internal/audit"
	domain "github.com/BruksfildServices01/beauty-site/internal/domain/appointment"
	"github.com/BruksfildServices01/beauty-site/internal/httperr"
	"github.com/BruksfildServices01/beauty-site/internal/models"
	"github.com/BruksfildServices01/beauty-site/internal/notify"
)

const notifyTimeout = 10 * time.Second

// ======================================================
// INPUT / OUTPUT
// ======================================================

type SubmitInput struct {
	Fields      domain.Fields
	ServiceName string
	ClientIP    string
}

// ======================================================
// USE CASE
// ======================================================

type SubmitAppointment struct {
	backend  domain.Booker
	audit    *audit.Dispatcher
	notifier notify.Notifier
	logger   *zap.Logger
}

func NewSubmitAppointment(
	backend domain.Booker,
	audit *audit.Dispatcher,
	notifier notify.Notifier,
	logger *zap.Logger,
) *SubmitAppointment {
	if notifier == nil {
		notifier = notify.Nop{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SubmitAppointment{
		backend:  backend,
		audit:    audit,
		notifier: notifier,
		logger:   logger,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute conduz o formulário por um envio completo. O formulário volta
// sempre num estado estável: confirmed, ou editing com a mensagem de erro.
func (uc *SubmitAppointment) Execute(
	ctx context.Context,
	form *domain.Form,
	in SubmitInput,
) error {

	// --------------------------------------------------
	// 1️⃣ Validação (editing -> submitting)
	// --------------------------------------------------
	if err := form.Begin(in.Fields); err != nil {
		var valErr *httperr.ValidationError
		if errors.As(err, &valErr) {
			uc.logger.Info("appointment validation failed", zap.Strings("missing", valErr.Fields))
		}
		return err
	}

	req := in.Fields.Request()

	// --------------------------------------------------
	// 2️⃣ Backend
	// --------------------------------------------------
	resp, err := uc.backend.CreateAppointment(ctx, req)
	if err != nil {
		uc.logger.Error("appointment submission failed",
			zap.String("service_id", req.ServiceID),
			zap.String("kind", string(httperr.KindOf(err))),
			zap.Error(err),
		)
		uc.audit.Dispatch(audit.Event{
			Action: "appointment_failed",
			Entity: "appointment",
			Metadata: map[string]any{
				"service_id": req.ServiceID,
				"date":       req.Date,
				"time":       req.Time,
				"error":      err.Error(),
			},
		})
		if ferr := form.Fail(); ferr != nil {
			return ferr
		}
		return err
	}

	if err := form.Confirm(resp); err != nil {
		return err
	}

	// --------------------------------------------------
	// 3️⃣ Audit + aviso para a dona
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_confirmed",
		Entity:   "appointment",
		EntityID: resp.AppointmentID,
		Metadata: map[string]any{
			"service_id": req.ServiceID,
			"date":       req.Date,
			"time":       req.Time,
			"client_ip":  in.ClientIP,
		},
	})

	go uc.notify(req, resp, in.ServiceName)

	return nil
}

func (uc *SubmitAppointment) notify(req models.AppointmentRequest, resp models.AppointmentResponse, serviceName string) {
	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()

	if err := uc.notifier.AppointmentConfirmed(ctx, req, resp, serviceName); err != nil {
		uc.logger.Warn("owner notification failed", zap.String("appointment_id", resp.AppointmentID), zap.Error(err))
	}
}
