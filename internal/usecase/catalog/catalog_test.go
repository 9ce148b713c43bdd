package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/beauty-site/internal/cache"
	"github.com/BruksfildServices01/beauty-site/internal/httperr"
	"github.com/BruksfildServices01/beauty-site/internal/models"
)

type fakeBackend struct {
	services []models.Service
	err      error
	lists    int
	gets     int
}

func (f *fakeBackend) ListServices(context.Context) ([]models.Service, error) {
	f.lists++
	return f.services, f.err
}

func (f *fakeBackend) GetService(_ context.Context, id string) (*models.Service, error) {
	f.gets++
	if id == "remoto" {
		return &models.Service{ID: "remoto"}, nil
	}
	return nil, nil
}

func (f *fakeBackend) CreateAppointment(context.Context, models.AppointmentRequest) (models.AppointmentResponse, error) {
	return models.AppointmentResponse{}, nil
}

type memCache struct {
	services []models.Service
	getErr   error
}

func (m *memCache) Get(context.Context) ([]models.Service, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if m.services == nil {
		return nil, cache.ErrMiss
	}
	return m.services, nil
}

func (m *memCache) Set(_ context.Context, s []models.Service) error {
	m.services = s
	return nil
}

func (m *memCache) Invalidate(context.Context) error {
	m.services = nil
	return nil
}

func TestListServicesUsesCache(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{services: []models.Service{{ID: "corte"}}}
	c := &memCache{}
	uc := NewListServices(backend, c, nil)

	got, err := uc.Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)

	_, err = uc.Execute(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, backend.lists)
}

func TestListServicesCacheFailureFallsBack(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{services: []models.Service{{ID: "corte"}}}
	uc := NewListServices(backend, &memCache{getErr: errors.New("redis down")}, nil)

	got, err := uc.Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestListServicesBackendError(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{err: &httperr.NetworkError{Op: "list_services", Status: 500}}
	_, err := NewListServices(backend, nil, nil).Execute(context.Background())
	require.Equal(t, httperr.KindNetwork, httperr.KindOf(err))
}

func TestGetService(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{services: []models.Service{{ID: "corte", Name: "Corte"}}}
	uc := NewGetService(NewListServices(backend, nil, nil), backend)

	s, err := uc.Execute(context.Background(), "corte")
	require.NoError(t, err)
	require.Equal(t, "Corte", s.Name)
	require.Equal(t, 0, backend.gets)

	s, err = uc.Execute(context.Background(), "remoto")
	require.NoError(t, err)
	require.Equal(t, "remoto", s.ID)

	_, err = uc.Execute(context.Background(), "nada")
	require.True(t, httperr.IsBusiness(err, httperr.CodeServiceNotFound))

	_, err = uc.Execute(context.Background(), "")
	require.True(t, httperr.IsBusiness(err, httperr.CodeServiceNotFound))
}

func TestListServicesInvalidateRefetches(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{services: []models.Service{{ID: "corte"}}}
	c := &memCache{services: []models.Service{{ID: "antigo"}}}
	uc := NewListServices(backend, c, nil)

	got, err := uc.Invalidate(context.Background())
	require.NoError(t, err)
	require.Equal(t, "corte", got[0].ID)
	require.Equal(t, 1, backend.lists)
	require.Equal(t, "corte", c.services[0].ID)
}
