package appointment

import "github.com/BruksfildServices01/beauty-site/internal/httperr"

// ===============================
// Form Status
// ===============================

type Status string

const (
	StatusEditing    Status = "editing"
	StatusSubmitting Status = "submitting"
	StatusConfirmed  Status = "confirmed"
)

// ===============================
// Validations
// ===============================

// CanSubmit define se o formulário aceita um novo envio
func CanSubmit(current Status) error {
	if current != StatusEditing {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	return nil
}

// CanResolve valida que existe um envio em andamento
func CanResolve(current Status) error {
	if current != StatusSubmitting {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	return nil
}

// CanReset só vale a partir da confirmação
func CanReset(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	return nil
}

func InitialStatus() Status {
	return StatusEditing
}
