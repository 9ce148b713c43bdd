package beauty

import (
	"context"

	"github.com/BruksfildServices01/beauty-site/internal/models"
)

// Backend é a fonte de dados do site: catálogo e criação de agendamentos.
type Backend interface {
	ListServices(ctx context.Context) ([]models.Service, error)
	// GetService retorna nil, nil quando o serviço não existe.
	GetService(ctx context.Context, id string) (*models.Service, error)
	CreateAppointment(ctx context.Context, req models.AppointmentRequest) (models.AppointmentResponse, error)
}
