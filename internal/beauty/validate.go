package beauty

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/BruksfildServices01/beauty-site/internal/models"
	"github.com/BruksfildServices01/beauty-site/internal/validators"
)

var errNotArray = errors.New("expected a JSON array")

// Campos como ponteiros para diferenciar ausente de zero.
type rawDetails struct {
	ProductsUsed      []string `json:"products_used"`
	Contraindications []string `json:"contraindications"`
}

type rawService struct {
	ID          *string     `json:"id" validate:"required,min=1"`
	Name        *string     `json:"name" validate:"required"`
	Category    *string     `json:"category" validate:"required"`
	Price       *float64    `json:"price"`
	Duration    *int        `json:"duration" validate:"required,gte=0"`
	Image       *string     `json:"image" validate:"required"`
	Gallery     []string    `json:"gallery"`
	Description *string     `json:"description" validate:"required"`
	Details     *rawDetails `json:"details"`
}

type rawAppointmentResponse struct {
	Status         *string  `json:"status" validate:"required"`
	Message        *string  `json:"message" validate:"required"`
	AppointmentID  *string  `json:"appointment_id" validate:"required"`
	EstimatedPrice *float64 `json:"estimated_price"`
}

func (r rawService) toModel(pos int) (models.Service, error) {
	invalid, err := validators.Struct(r)
	if err != nil {
		return models.Service{}, err
	}
	if len(invalid) > 0 {
		return models.Service{}, fmt.Errorf("service[%d]: missing or invalid %s", pos, strings.Join(invalid, ", "))
	}

	s := models.Service{
		ID:          *r.ID,
		Name:        *r.Name,
		Category:    *r.Category,
		Duration:    *r.Duration,
		Image:       *r.Image,
		Gallery:     r.Gallery,
		Description: *r.Description,
	}
	if r.Price != nil {
		s.Price = *r.Price
	}
	if r.Details != nil {
		s.Details = &models.ServiceDetails{
			ProductsUsed:      r.Details.ProductsUsed,
			Contraindications: r.Details.Contraindications,
		}
	}
	return s, nil
}

// DecodeServices valida o documento completo; qualquer divergência invalida a lista inteira.
func DecodeServices(data []byte) ([]models.Service, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, errNotArray
	}
	var raws []rawService
	if err := json.Unmarshal(trimmed, &raws); err != nil {
		return nil, err
	}
	out := make([]models.Service, 0, len(raws))
	for i, r := range raws {
		s, err := r.toModel(i)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func DecodeService(data []byte) (*models.Service, error) {
	var r rawService
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, err
	}
	s, err := r.toModel(0)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func DecodeAppointmentResponse(data []byte) (models.AppointmentResponse, error) {
	var r rawAppointmentResponse
	if err := json.Unmarshal(data, &r); err != nil {
		return models.AppointmentResponse{}, err
	}
	invalid, err := validators.Struct(r)
	if err != nil {
		return models.AppointmentResponse{}, err
	}
	if len(invalid) > 0 {
		return models.AppointmentResponse{}, fmt.Errorf("appointment: missing %s", strings.Join(invalid, ", "))
	}
	return models.AppointmentResponse{
		Status:         *r.Status,
		Message:        *r.Message,
		AppointmentID:  *r.AppointmentID,
		EstimatedPrice: r.EstimatedPrice,
	}, nil
}
