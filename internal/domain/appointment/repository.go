package appointment

import (
	"context"

	"github.com/BruksfildServices01/beauty-site/internal/models"
)

// Booker envia a solicitação de agendamento ao backend.
type Booker interface {
	CreateAppointment(
		ctx context.Context,
		req models.AppointmentRequest,
	) (models.AppointmentResponse, error)
}
