package httperr

import "errors"

// Códigos de regra de negócio compartilhados entre domínio e handlers
const (
	CodeInvalidState    = "invalid_state"
	CodeServiceNotFound = "service_not_found"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
