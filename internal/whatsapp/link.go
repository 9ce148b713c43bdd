// Package whatsapp monta links wa.me para conversa direta.
package whatsapp

import (
	"net/url"
	"strings"

	"github.com/BruksfildServices01/beauty-site/internal/validators"
)

const baseURL = "https://wa.me/"

// Link retorna https://wa.me/{digits}?text={mensagem codificada}.
func Link(phone, message string) string {
	link := baseURL + validators.DigitsOnly(phone)
	if message == "" {
		return link
	}
	return link + "?text=" + strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
}
