// Package confirmation assina o comprovante do agendamento para o
// redirecionamento pós-envio do formulário.
package confirmation

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/beauty-site/internal/models"
)

const (
	DefaultTTL = 30 * time.Minute
	issuer     = "beauty-site/agendamento"
)

var ErrInvalidReceipt = errors.New("confirmation: invalid receipt")

// Receipt é o que a página exibe no estado confirmado.
type Receipt struct {
	AppointmentID  string   `json:"appointment_id"`
	Status         string   `json:"status"`
	Message        string   `json:"message"`
	EstimatedPrice *float64 `json:"estimated_price,omitempty"`
	ServiceName    string   `json:"service_name,omitempty"`
}

func (r Receipt) Response() models.AppointmentResponse {
	return models.AppointmentResponse{
		Status:         r.Status,
		Message:        r.Message,
		AppointmentID:  r.AppointmentID,
		EstimatedPrice: r.EstimatedPrice,
	}
}

type claims struct {
	Receipt
	jwt.RegisteredClaims
}

type Signer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewSigner(secret string, ttl time.Duration) *Signer {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Signer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (s *Signer) Sign(resp models.AppointmentResponse, serviceName string) (string, error) {
	now := s.now()
	c := claims{
		Receipt: Receipt{
			AppointmentID:  resp.AppointmentID,
			Status:         resp.Status,
			Message:        resp.Message,
			EstimatedPrice: resp.EstimatedPrice,
			ServiceName:    serviceName,
		},
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   resp.AppointmentID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(s.secret)
}

func (s *Signer) Parse(token string) (*Receipt, error) {
	var c claims
	parsed, err := jwt.ParseWithClaims(token, &c, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return s.secret, nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidReceipt
	}
	return &c.Receipt, nil
}
