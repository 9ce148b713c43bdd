package format

import (
	"bytes"
	"fmt"
	"html"
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

const PriceToAgree = "Valor a combinar"

var (
	md = goldmark.New(
		goldmark.WithExtensions(extension.Linkify, extension.Strikethrough),
	)
	ugcPolicy   = newDescriptionPolicy()
	plainPolicy = bluemonday.StrictPolicy()
)

func newDescriptionPolicy() *bluemonday.Policy {
	policy := bluemonday.UGCPolicy()
	policy.RequireNoFollowOnLinks(true)
	policy.AddTargetBlankToFullyQualifiedLinks(true)
	return policy
}

// Markdown converte a descrição do serviço em HTML sanitizado.
func Markdown(src string) template.HTML {
	src = strings.TrimSpace(src)
	if src == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(ugcPolicy.SanitizeBytes(buf.Bytes()))
}

// PlainText remove qualquer marcação de texto vindo de fora.
func PlainText(s string) string {
	return strings.TrimSpace(html.UnescapeString(plainPolicy.Sanitize(s)))
}

func Price(v float64) string {
	return strings.Replace(fmt.Sprintf("R$ %.2f", v), ".", ",", 1)
}

func Duration(minutes int) string {
	return fmt.Sprintf("%d min", minutes)
}

// ServiceOption é o rótulo do select do agendamento.
func ServiceOption(name string, price float64, minutes int) string {
	return fmt.Sprintf("%s - %s (%s)", name, Price(price), Duration(minutes))
}
