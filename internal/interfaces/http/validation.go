package http

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tweakwise-api/internal/application/dto"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Los errores usan el nombre JSON (o query) del campo.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "query"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})
	return v
}

// validateStruct devuelve el cuerpo 400 VALIDATION con el detalle por campo, o nil si la entrada es válida.
func validateStruct(in any) *dto.ErrorResponse {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()}
	}
	details := make([]dto.ValidationDetail, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, dto.ValidationDetail{Field: fe.Field(), Message: validationMessage(fe)})
	}
	return &dto.ErrorResponse{Code: "VALIDATION", Message: "entrada inválida", Details: details}
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_if":
		return "campo requerido"
	case "oneof":
		return "valor no permitido, opciones: " + fe.Param()
	case "uuid":
		return "debe ser un UUID"
	case "email":
		return "email inválido"
	case "max":
		return "máximo " + fe.Param()
	case "min":
		return "mínimo " + fe.Param()
	default:
		return "valor inválido (" + fe.Tag() + ")"
	}
}

// paramUUID lee el parámetro de ruta name; devuelve el cuerpo 400 INVALID_ID si no es un UUID.
func paramUUID(c *fiber.Ctx, name string) (string, *dto.ErrorResponse) {
	id := c.Params(name)
	if err := validate.Var(id, "required,uuid"); err != nil {
		return "", &dto.ErrorResponse{Code: "INVALID_ID", Message: name + " debe ser un UUID"}
	}
	return id, nil
}
