// Package theme resolve o tema claro/escuro por requisição.
package theme

import (
	"context"
	"net/http"
	"strings"
)

type Theme string

const (
	Light Theme = "claro"
	Dark  Theme = "escuro"

	QueryParam = "tema"
	HintHeader = "Sec-CH-Prefers-Color-Scheme"
)

type ctxKey struct{}

func Parse(raw string) (Theme, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "claro", "light":
		return Light, true
	case "escuro", "dark":
		return Dark, true
	}
	return "", false
}

// Resolve usa ?tema= e, na falta dele, a preferência informada pelo navegador.
func Resolve(r *http.Request) Theme {
	if t, ok := Parse(r.URL.Query().Get(QueryParam)); ok {
		return t
	}
	if t, ok := Parse(strings.Trim(r.Header.Get(HintHeader), `"`)); ok {
		return t
	}
	return Light
}

func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

func (t Theme) IsDark() bool {
	return t == Dark
}

func (t Theme) String() string {
	return string(t)
}

func WithTheme(ctx context.Context, t Theme) context.Context {
	return context.WithValue(ctx, ctxKey{}, t)
}

func FromContext(ctx context.Context) Theme {
	if t, ok := ctx.Value(ctxKey{}).(Theme); ok {
		return t
	}
	return Light
}
