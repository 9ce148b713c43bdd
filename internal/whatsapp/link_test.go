package whatsapp

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLink(t *testing.T) {
	t.Parallel()

	link := Link("+55 (86) 98903-8050", "Olá! Quero agendar & saber preços")
	require.Equal(t, "https://wa.me/5586989038050?text=Ol%C3%A1%21%20Quero%20agendar%20%26%20saber%20pre%C3%A7os", link)

	u, err := url.Parse(link)
	require.NoError(t, err)
	require.Equal(t, "Olá! Quero agendar & saber preços", u.Query().Get("text"))
}

func TestLinkWithoutMessage(t *testing.T) {
	t.Parallel()

	require.Equal(t, "https://wa.me/5586989038050", Link("5586989038050", ""))
}
