package httperr

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Kind classifica as falhas que o site trata na borda HTTP.
type Kind string

const (
	KindNetwork    Kind = "network_failure"
	KindSchema     Kind = "schema_validation_failure"
	KindValidation Kind = "validation_failure"
)

// NetworkError cobre requisição recusada ou resposta não-2xx do backend.
type NetworkError struct {
	Op     string
	Status int
	Detail string
	Err    error
}

func (e *NetworkError) Error() string {
	var b strings.Builder
	b.WriteString(e.Op)
	if e.Status != 0 {
		fmt.Fprintf(&b, ": status %d", e.Status)
	}
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *NetworkError) Unwrap() error { return e.Err }

// SchemaError indica payload do backend fora do formato esperado.
type SchemaError struct {
	Op  string
	Err error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: invalid payload: %v", e.Op, e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }

// ValidationError junta todos os campos faltantes numa única mensagem.
type ValidationError struct {
	Fields  []string
	Message string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (%s)", e.Message, strings.Join(e.Fields, ", "))
}

// KindOf devolve a classe de err, ou "" quando err não é classificado.
func KindOf(err error) Kind {
	var (
		netErr    *NetworkError
		schemaErr *SchemaError
		valErr    *ValidationError
	)
	switch {
	case err == nil:
		return ""
	case errors.As(err, &valErr):
		return KindValidation
	case errors.As(err, &schemaErr):
		return KindSchema
	case errors.As(err, &netErr):
		return KindNetwork
	}
	return ""
}

// UserMessage converte err no texto curto mostrado ao visitante.
// Mensagens de validação saem como estão; o resto recebe o texto padrão.
func UserMessage(err error, fallback string) string {
	var valErr *ValidationError
	if errors.As(err, &valErr) && valErr.Message != "" {
		return valErr.Message
	}
	return fallback
}

// BackendDetail devolve o detalhe enviado pelo backend na recusa, se houver.
func BackendDetail(err error) string {
	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return netErr.Detail
	}
	return ""
}

// Status escolhe o código HTTP para err na borda do site.
func Status(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusUnprocessableEntity
	case KindNetwork, KindSchema:
		return http.StatusBadGateway
	}
	switch {
	case IsBusiness(err, CodeServiceNotFound):
		return http.StatusNotFound
	case IsBusiness(err, CodeInvalidState):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
