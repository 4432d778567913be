package http

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/kartheek0410/Bus-Management-API/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Reportar los campos con su nombre JSON.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// fieldsError validación fallida con la lista de campos; se resuelve como domain.ErrInvalidInput.
type fieldsError struct {
	fields []string
}

func (e *fieldsError) Error() string {
	return "campos inválidos: " + strings.Join(e.fields, ", ")
}

func (e *fieldsError) Unwrap() error { return domain.ErrInvalidInput }

// bindJSON parsea el cuerpo en out y aplica las reglas `validate`.
func bindJSON(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return errInvalidBody
	}
	if err := validate.Struct(out); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fe.Field())
			}
			return &fieldsError{fields: fields}
		}
		return domain.ErrInvalidInput
	}
	return nil
}
