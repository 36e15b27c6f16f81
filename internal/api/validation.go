package api

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/terraincognita07/utero/internal/models"
)

const symptomTag = "symptom"

func newValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = validate.RegisterValidation(symptomTag, func(level validator.FieldLevel) bool {
		return models.IsKnownSymptom(models.Symptom(level.Field().String()))
	})
	return validate
}

// validationMessage flattens the first failing field into a client message.
func validationMessage(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return "invalid payload"
	}

	first := validationErrors[0]
	switch first.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", first.Field())
	case "datetime":
		return fmt.Sprintf("%s must be a YYYY-MM-DD date", first.Field())
	case symptomTag:
		return fmt.Sprintf("unknown symptom %q", first.Value())
	default:
		return fmt.Sprintf("%s is invalid", first.Field())
	}
}
