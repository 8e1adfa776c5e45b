// Package validator adapts go-playground/validator to echo.
package validator

import (
	"reflect"
	"strings"

	"bootwatcher/internal/domain/entity"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// CustomValidator implements echo.Validator
type CustomValidator struct {
	validate *validator.Validate
}

// New creates a validator with the relay's custom tags registered:
//
//	phone10  exactly ten ASCII digits
func New() *CustomValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}

		return name
	})

	// Registration only fails for empty tags or nil functions.
	_ = validate.RegisterValidation("phone10", func(fl validator.FieldLevel) bool {
		return entity.ValidPhoneNumber(fl.Field().String())
	})

	return &CustomValidator{validate: validate}
}

// Validate validates a request struct and returns one readable message per failed field
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return errors.WithStack(err)
	}

	messages := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		messages = append(messages, fieldMessage(fe))
	}

	return errors.New(strings.Join(messages, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "min":
		return fe.Field() + " must contain at least " + fe.Param() + " item(s)"
	case "phone10":
		return fe.Field() + " must be exactly 10 digits"
	case "latitude", "longitude":
		return fe.Field() + " is out of range"
	default:
		return fe.Field() + " is invalid"
	}
}
