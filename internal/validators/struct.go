package validators

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var structValidator = newStructValidator()

func newStructValidator() *validator.Validate {
	v := validator.New()
	// erros usam o nome do campo no JSON
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

// Struct aplica as tags `validate` de v e devolve os campos rejeitados,
// na ordem de declaração. err só vem preenchido quando v não é uma struct.
func Struct(v any) (fields []string, err error) {
	err = structValidator.Struct(v)
	if err == nil {
		return nil, nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, err
	}
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return fields, nil
}
