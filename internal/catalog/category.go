package catalog

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type Category string

const (
	CategoryAll        Category = "todos"
	CategoryHair       Category = "Cabelo"
	CategoryNails      Category = "Unhas"
	CategoryAesthetics Category = "Estética"
)

// FilterCategories lista as abas de filtro na ordem de exibição.
var FilterCategories = []Category{
	CategoryAll,
	CategoryHair,
	CategoryNails,
	CategoryAesthetics,
}

// ParseCategory converte o valor da query em categoria de filtro.
// Valor vazio ou desconhecido seleciona CategoryAll.
func ParseCategory(raw string) Category {
	raw = strings.TrimSpace(raw)
	for _, cat := range FilterCategories {
		if strings.EqualFold(raw, string(cat)) {
			return cat
		}
	}
	return CategoryAll
}

func (c Category) IsAll() bool {
	return c == CategoryAll || c == ""
}

func (c Category) Matches(serviceCategory string) bool {
	return c.IsAll() || string(c) == serviceCategory
}

// Label põe a primeira letra em maiúscula, como nas abas de filtro.
func (c Category) Label() string {
	s := string(c)
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// Highlight guarda os textos exibidos sobre o carrossel da categoria.
type Highlight struct {
	Badge string
	Title string
	Blurb string
}

func (c Category) Highlight() Highlight {
	if c.IsAll() {
		return Highlight{
			Badge: "Destaques",
			Title: "Nossos Melhores Serviços",
			Blurb: "Confira nossos serviços exclusivos de beleza e bem-estar preparados especialmente para você.",
		}
	}
	return Highlight{
		Badge: string(c),
		Title: "Especialidade em " + string(c),
		Blurb: "Confira nossos serviços exclusivos de " + strings.ToLower(string(c)) + " preparados especialmente para você.",
	}
}
