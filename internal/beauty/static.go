package beauty

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/beauty-site/internal/httperr"
	"github.com/BruksfildServices01/beauty-site/internal/models"
)

//go:embed data/services.json
var bundledServices []byte

const (
	SimulatedDelay = 1500 * time.Millisecond
	SimulatedPrice = 150.0
)

// Loader entrega o documento JSON do catálogo estático.
type Loader func(ctx context.Context) ([]byte, error)

// EmbeddedLoader devolve o catálogo empacotado no binário.
func EmbeddedLoader(context.Context) ([]byte, error) {
	return bundledServices, nil
}

// Static atende o site sem backend: catálogo de um documento JSON e
// agendamentos simulados localmente.
type Static struct {
	load  Loader
	delay time.Duration
	newID func() string
}

type StaticOption func(*Static)

func WithDelay(d time.Duration) StaticOption {
	return func(s *Static) {
		if d >= 0 {
			s.delay = d
		}
	}
}

func WithIDGenerator(fn func() string) StaticOption {
	return func(s *Static) {
		if fn != nil {
			s.newID = fn
		}
	}
}

func NewStatic(load Loader, opts ...StaticOption) *Static {
	if load == nil {
		load = EmbeddedLoader
	}
	s := &Static{
		load:  load,
		delay: SimulatedDelay,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Static) ListServices(ctx context.Context) ([]models.Service, error) {
	const op = "list_services"

	data, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	services, err := DecodeServices(data)
	if err != nil {
		return nil, &httperr.SchemaError{Op: op, Err: err}
	}
	return services, nil
}

func (s *Static) GetService(ctx context.Context, id string) (*models.Service, error) {
	services, err := s.ListServices(ctx)
	if err != nil {
		return nil, err
	}
	for i := range services {
		if services[i].ID == id {
			return &services[i], nil
		}
	}
	return nil, nil
}

func (s *Static) CreateAppointment(ctx context.Context, req models.AppointmentRequest) (models.AppointmentResponse, error) {
	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return models.AppointmentResponse{}, ctx.Err()
		case <-timer.C:
		}
	}

	price := SimulatedPrice
	return models.AppointmentResponse{
		Status:         "confirmed",
		Message:        fmt.Sprintf("Agendamento confirmado para %s às %s", req.Date, req.Time),
		AppointmentID:  s.newID(),
		EstimatedPrice: &price,
	}, nil
}
