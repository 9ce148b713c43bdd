package dto

import (
	"net/url"
	"strconv"

	"github.com/BruksfildServices01/beauty-site/internal/catalog"
	"github.com/BruksfildServices01/beauty-site/internal/theme"
)

// Parâmetros de query que carregam o estado da página.
const (
	QueryCategory = "categoria"
	QuerySlide    = "slide"
	QueryService  = "servico"
	QueryImage    = "imagem"
	QueryReceipt  = "agendamento"
)

// PageState é o estado da página inteira, serializado na URL.
type PageState struct {
	Category  catalog.Category
	Slide     int
	ServiceID string
	Image     int
	Theme     theme.Theme
	Receipt   string
}

func PageStateFromQuery(q url.Values, t theme.Theme) PageState {
	return PageState{
		Category:  catalog.ParseCategory(q.Get(QueryCategory)),
		Slide:     atoiNonNegative(q.Get(QuerySlide)),
		ServiceID: q.Get(QueryService),
		Image:     atoiNonNegative(q.Get(QueryImage)),
		Theme:     t,
		Receipt:   q.Get(QueryReceipt),
	}
}

func atoiNonNegative(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// URL monta "/?..." com os valores não padrão e o fragmento opcional.
func (s PageState) URL(fragment string) string {
	u := "/"
	if enc := s.values().Encode(); enc != "" {
		u += "?" + enc
	}
	if fragment != "" {
		u += "#" + fragment
	}
	return u
}

// FormAction preserva categoria, slide e tema no destino de um POST.
func (s PageState) FormAction(path string) string {
	s.ServiceID = ""
	s.Receipt = ""
	if enc := s.values().Encode(); enc != "" {
		return path + "?" + enc
	}
	return path
}

func (s PageState) values() url.Values {
	q := url.Values{}
	if !s.Category.IsAll() {
		q.Set(QueryCategory, string(s.Category))
	}
	if s.Slide > 0 {
		q.Set(QuerySlide, strconv.Itoa(s.Slide))
	}
	if s.ServiceID != "" {
		q.Set(QueryService, s.ServiceID)
		if s.Image > 0 {
			q.Set(QueryImage, strconv.Itoa(s.Image))
		}
	}
	if s.Theme != "" {
		q.Set(theme.QueryParam, string(s.Theme))
	}
	if s.Receipt != "" {
		q.Set(QueryReceipt, s.Receipt)
	}
	return q
}

// WithCategory troca a categoria e re-inicia o carrossel.
func (s PageState) WithCategory(c catalog.Category) PageState {
	s.Category = c
	s.Slide = 0
	s.ServiceID = ""
	s.Image = 0
	return s
}

func (s PageState) WithSlide(i int) PageState {
	s.Slide = i
	return s
}

// WithService abre a modal de um serviço na primeira imagem.
func (s PageState) WithService(id string) PageState {
	s.ServiceID = id
	s.Image = 0
	return s
}

func (s PageState) WithImage(i int) PageState {
	s.Image = i
	return s
}

func (s PageState) WithoutService() PageState {
	return s.WithService("")
}

func (s PageState) WithTheme(t theme.Theme) PageState {
	s.Theme = t
	return s
}

func (s PageState) WithReceipt(token string) PageState {
	s.Receipt = token
	return s
}
