package catalog

import "github.com/BruksfildServices01/beauty-site/internal/models"

const ModalImageCount = 3

// ModalImages monta o conjunto fixo de imagens do modal: até as três primeiras
// da galeria, completadas com a imagem principal.
func ModalImages(s models.Service) []string {
	images := make([]string, 0, ModalImageCount)
	if n := len(s.Gallery); n > 0 {
		images = append(images, s.Gallery[:min(n, ModalImageCount)]...)
	}
	for len(images) < ModalImageCount {
		images = append(images, s.Image)
	}
	return images
}

// Modal é o detalhe aberto/fechado de um serviço. O carrossel só existe
// enquanto o modal está aberto.
type Modal struct {
	service  models.Service
	carousel *Carousel
}

func NewModal(s models.Service) *Modal {
	return &Modal{service: s}
}

func (m *Modal) Service() models.Service {
	return m.service
}

func (m *Modal) Open() *Carousel {
	if m.carousel == nil {
		m.carousel = NewCarousel(m.service.ID, ModalImages(m.service))
	}
	return m.carousel
}

func (m *Modal) Close() {
	m.carousel = nil
}

func (m *Modal) IsOpen() bool {
	return m.carousel != nil
}

// Carousel devolve o carrossel do modal, ou nil quando fechado.
func (m *Modal) Carousel() *Carousel {
	return m.carousel
}
