package dto

import (
	"github.com/BruksfildServices01/beauty-site/internal/catalog"
	"github.com/BruksfildServices01/beauty-site/internal/models"
)

type ServiceListDTO struct {
	Category       string           `json:"category"`
	Services       []models.Service `json:"services"`
	CarouselImages []string         `json:"carousel_images"`
	Empty          bool             `json:"empty"`
	Message        string           `json:"message,omitempty"`
}

func NewServiceListDTO(services []models.Service, cat catalog.Category) ServiceListDTO {
	g := catalog.BuildGrid(services, cat)
	return ServiceListDTO{
		Category:       string(cat),
		Services:       g.Services,
		CarouselImages: catalog.CarouselImages(services, cat),
		Empty:          g.Empty,
		Message:        g.EmptyMessage,
	}
}

type ServiceDetailDTO struct {
	models.Service
	ModalImages []string `json:"modal_images"`
}

func NewServiceDetailDTO(s models.Service) ServiceDetailDTO {
	return ServiceDetailDTO{Service: s, ModalImages: catalog.ModalImages(s)}
}
