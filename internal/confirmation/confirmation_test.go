package confirmation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/beauty-site/internal/models"
)

func TestSignParse(t *testing.T) {
	t.Parallel()

	price := 150.0
	s := NewSigner("segredo", time.Minute)
	token, err := s.Sign(models.AppointmentResponse{
		Status: "confirmed", Message: "ok", AppointmentID: "abc", EstimatedPrice: &price,
	}, "Corte")
	require.NoError(t, err)

	r, err := s.Parse(token)
	require.NoError(t, err)
	require.Equal(t, "abc", r.AppointmentID)
	require.Equal(t, "Corte", r.ServiceName)
	require.InDelta(t, 150.0, *r.Response().EstimatedPrice, 0.001)
}

func TestParseRejects(t *testing.T) {
	t.Parallel()

	s := NewSigner("segredo", time.Minute)
	token, err := s.Sign(models.AppointmentResponse{AppointmentID: "abc"}, "")
	require.NoError(t, err)

	_, err = NewSigner("outro", time.Minute).Parse(token)
	require.ErrorIs(t, err, ErrInvalidReceipt)

	late := NewSigner("segredo", time.Minute)
	late.now = func() time.Time { return time.Now().Add(2 * time.Minute) }
	_, err = late.Parse(token)
	require.ErrorIs(t, err, ErrInvalidReceipt)

	_, err = s.Parse("lixo")
	require.ErrorIs(t, err, ErrInvalidReceipt)
}
