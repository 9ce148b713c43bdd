package catalog

import "github.com/BruksfildServices01/beauty-site/internal/models"

const (
	EmptyMessage      = "Nenhum serviço encontrado nesta categoria."
	MaxCarouselImages = 5
)

// Filter devolve os serviços da categoria na ordem original.
// O slice de entrada nunca é alterado.
func Filter(services []models.Service, category Category) []models.Service {
	out := make([]models.Service, 0, len(services))
	for _, s := range services {
		if category.Matches(s.Category) {
			out = append(out, s)
		}
	}
	return out
}

// Grid é a projeção renderizada abaixo das abas de filtro.
type Grid struct {
	Category     Category
	Services     []models.Service
	Empty        bool
	EmptyMessage string
}

func BuildGrid(services []models.Service, category Category) Grid {
	filtered := Filter(services, category)
	g := Grid{
		Category: category,
		Services: filtered,
		Empty:    len(filtered) == 0,
	}
	if g.Empty {
		g.EmptyMessage = EmptyMessage
	}
	return g
}

// CarouselImages junta a imagem principal de cada serviço da categoria,
// ignorando referências vazias, até MaxCarouselImages.
func CarouselImages(services []models.Service, category Category) []string {
	images := make([]string, 0, MaxCarouselImages)
	for _, s := range Filter(services, category) {
		if s.Image == "" {
			continue
		}
		images = append(images, s.Image)
		if len(images) == MaxCarouselImages {
			break
		}
	}
	return images
}

// View é a seção do catálogo para uma categoria selecionada. Cada seleção
// gera uma View nova, então o carrossel sempre começa no índice 0.
type View struct {
	Category  Category
	Highlight Highlight
	Grid      Grid
	Carousel  *Carousel
}

func NewView(services []models.Service, category Category, opts ...CarouselOption) View {
	return View{
		Category:  category,
		Highlight: category.Highlight(),
		Grid:      BuildGrid(services, category),
		Carousel:  NewCarousel(string(category), CarouselImages(services, category), opts...),
	}
}
