package models

// Corpo enviado para POST {base}/appointments
type AppointmentRequest struct {
	ServiceID     string `json:"service_id"`
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	Date          string `json:"date"` // YYYY-MM-DD
	Time          string `json:"time"` // HH:MM
}

type AppointmentResponse struct {
	Status         string   `json:"status"`
	Message        string   `json:"message"`
	AppointmentID  string   `json:"appointment_id"`
	EstimatedPrice *float64 `json:"estimated_price,omitempty"`
}
