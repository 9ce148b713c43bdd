package dto

import (
	"html/template"

	"github.com/BruksfildServices01/beauty-site/internal/catalog"
	"github.com/BruksfildServices01/beauty-site/internal/config"
	"github.com/BruksfildServices01/beauty-site/internal/confirmation"
	domain "github.com/BruksfildServices01/beauty-site/internal/domain/appointment"
	"github.com/BruksfildServices01/beauty-site/internal/format"
	"github.com/BruksfildServices01/beauty-site/internal/models"
	"github.com/BruksfildServices01/beauty-site/internal/theme"
)

// ======================================================
// PAGE
// ======================================================

type PageView struct {
	Profile        *config.Profile
	Theme          theme.Theme
	ThemeToggleURL string
	Year           int

	Catalog   CatalogView
	Modal     *ModalView
	Scheduler SchedulerView
	Contact   ContactView
}

// ======================================================
// CATALOG
// ======================================================

type CategoryTab struct {
	Label  string
	URL    string
	Active bool
}

type ServiceCard struct {
	ID            string
	Name          string
	Category      string
	Image         string
	Description   template.HTML
	DurationLabel string
	PriceLabel    string
	DetailsURL    string
}

type CatalogView struct {
	Tabs         []CategoryTab
	Highlight    catalog.Highlight
	Carousel     *CarouselView
	Cards        []ServiceCard
	Empty        bool
	EmptyMessage string
	Error        string
}

type Slide struct {
	Image  string
	Alt    string
	Active bool
	URL    string
}

// CarouselView é o carrossel pronto para o template. Navigable é falso com
// uma imagem ou menos, e nesse caso não há controles nem stream.
type CarouselView struct {
	Key        string
	Index      int
	Current    string
	Slides     []Slide
	Navigable  bool
	PrevURL    string
	NextURL    string
	StreamURL  string
	IntervalMS int64
}

func NewCatalogView(state PageState, view catalog.View, streamURL string) CatalogView {
	tabs := make([]CategoryTab, 0, len(catalog.FilterCategories))
	for _, cat := range catalog.FilterCategories {
		tabs = append(tabs, CategoryTab{
			Label:  cat.Label(),
			URL:    state.WithCategory(cat).URL("catalogo"),
			Active: cat == view.Category,
		})
	}

	cards := make([]ServiceCard, 0, len(view.Grid.Services))
	for _, s := range view.Grid.Services {
		cards = append(cards, ServiceCard{
			ID:            s.ID,
			Name:          s.Name,
			Category:      s.Category,
			Image:         s.Image,
			Description:   format.Markdown(s.Description),
			DurationLabel: format.Duration(s.Duration),
			PriceLabel:    format.PriceToAgree,
			DetailsURL:    state.WithService(s.ID).URL("servico"),
		})
	}

	c := view.Carousel
	c.GoTo(state.Slide)

	return CatalogView{
		Tabs:         tabs,
		Highlight:    view.Highlight,
		Carousel:     NewCarouselView(c, "", func(i int) string { return state.WithSlide(i).URL("catalogo") }, streamURL),
		Cards:        cards,
		Empty:        view.Grid.Empty,
		EmptyMessage: view.Grid.EmptyMessage,
	}
}

// NewCarouselView devolve nil para carrossel vazio.
func NewCarouselView(c *catalog.Carousel, alt string, urlFor func(int) string, streamURL string) *CarouselView {
	images := c.Images()
	if len(images) == 0 {
		return nil
	}
	index := c.Index()
	n := len(images)

	v := &CarouselView{
		Key:        c.Key(),
		Index:      index,
		Current:    images[index],
		Navigable:  n > 1,
		IntervalMS: c.Interval().Milliseconds(),
	}
	for i, img := range images {
		v.Slides = append(v.Slides, Slide{Image: img, Alt: alt, Active: i == index, URL: urlFor(i)})
	}
	if v.Navigable {
		v.PrevURL = urlFor(catalog.Retreat(index, n))
		v.NextURL = urlFor(catalog.Advance(index, n))
		v.StreamURL = streamURL
	}
	return v
}

// ======================================================
// MODAL
// ======================================================

type ModalView struct {
	ID                string
	Name              string
	Category          string
	PriceLabel        string
	DurationLabel     string
	Description       template.HTML
	ProductsUsed      []string
	Contraindications []string
	Carousel          *CarouselView
	CloseURL          string
	ScheduleURL       string
}

func NewModalView(state PageState, s models.Service) *ModalView {
	m := catalog.NewModal(s)
	c := m.Open()
	c.GoTo(state.Image)

	return &ModalView{
		ID:                s.ID,
		Name:              s.Name,
		Category:          s.Category,
		PriceLabel:        format.PriceToAgree,
		DurationLabel:     format.Duration(s.Duration),
		Description:       format.Markdown(s.Description),
		ProductsUsed:      s.ProductsUsed(),
		Contraindications: s.Contraindications(),
		Carousel:          NewCarouselView(c, s.Name, func(i int) string { return state.WithImage(i).URL("servico") }, ""),
		CloseURL:          state.WithoutService().URL("catalogo"),
		ScheduleURL:       state.WithoutService().URL("agendamento"),
	}
}

// ======================================================
// SCHEDULER
// ======================================================

type ServiceOption struct {
	ID       string
	Label    string
	Selected bool
}

type SchedulerView struct {
	Action    string
	Status    domain.Status
	Options   []ServiceOption
	Fields    domain.Fields
	Error     string
	Receipt   *confirmation.Receipt
	PriceText string
	ResetURL  string
}

func NewSchedulerView(state PageState, services []models.Service, form *domain.Form, receipt *confirmation.Receipt) SchedulerView {
	if form == nil {
		form = domain.NewForm()
	}
	v := SchedulerView{
		Action:   state.FormAction("/agendamento"),
		Status:   form.Status,
		Fields:   form.Fields,
		Error:    form.Error,
		ResetURL: state.WithReceipt("").URL("agendamento"),
	}
	if receipt != nil {
		v.Status = domain.StatusConfirmed
		v.Receipt = receipt
		if receipt.EstimatedPrice != nil {
			v.PriceText = format.Price(*receipt.EstimatedPrice)
		}
		return v
	}

	selected := form.Fields.ServiceID
	v.Options = make([]ServiceOption, 0, len(services))
	for _, s := range services {
		v.Options = append(v.Options, ServiceOption{
			ID:       s.ID,
			Label:    format.ServiceOption(s.Name, s.Price, s.Duration),
			Selected: s.ID == selected,
		})
	}
	return v
}

// ======================================================
// CONTACT
// ======================================================

type ContactView struct {
	Action      string
	Placeholder string
}

func NewContactView(state PageState) ContactView {
	return ContactView{
		Action:      state.FormAction("/contato"),
		Placeholder: "Escreva sua dúvida aqui...",
	}
}
