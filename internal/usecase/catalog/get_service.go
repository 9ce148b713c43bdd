package catalog

import (
	"context"

	"github.com/BruksfildServices01/beauty-site/internal/beauty"
	"github.com/BruksfildServices01/beauty-site/internal/httperr"
	"github.com/BruksfildServices01/beauty-site/internal/models"
)

type GetService struct {
	list    *ListServices
	backend beauty.Backend
}

func NewGetService(list *ListServices, backend beauty.Backend) *GetService {
	return &GetService{list: list, backend: backend}
}

// Execute procura primeiro no catálogo já carregado; só consulta o
// backend quando o id não está na lista.
func (uc *GetService) Execute(ctx context.Context, id string) (*models.Service, error) {
	if id == "" {
		return nil, httperr.ErrBusiness(httperr.CodeServiceNotFound)
	}

	services, err := uc.list.Execute(ctx)
	if err == nil {
		for i := range services {
			if services[i].ID == id {
				s := services[i]
				return &s, nil
			}
		}
	}

	s, err := uc.backend.GetService(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, httperr.ErrBusiness(httperr.CodeServiceNotFound)
	}
	return s, nil
}
