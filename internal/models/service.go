package models

// Detalhes opcionais exibidos na modal do serviço
type ServiceDetails struct {
	ProductsUsed      []string `json:"products_used,omitempty"`
	Contraindications []string `json:"contraindications,omitempty"`
}

type Service struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       float64         `json:"price"`
	Duration    int             `json:"duration"` // minutos
	Image       string          `json:"image"`
	Gallery     []string        `json:"gallery,omitempty"`
	Description string          `json:"description"`
	Details     *ServiceDetails `json:"details,omitempty"`
}

func (s Service) ProductsUsed() []string {
	if s.Details == nil {
		return nil
	}
	return s.Details.ProductsUsed
}

func (s Service) Contraindications() []string {
	if s.Details == nil {
		return nil
	}
	return s.Details.Contraindications
}
