package checkout

import (
	"errors"

	"github.com/aaravmahajanofficial/grocery-storefront/internal/models"
	"github.com/go-playground/validator/v10"
)

// Field error codes returned per delivery field.
const (
	CodeRequired      = "required"
	CodeInvalidPhone  = "invalid_phone"
	CodeInvalidOption = "invalid_option"
)

// FieldErrors maps a delivery field name to the reason it was rejected.
type FieldErrors map[string]string

// Validate checks the delivery form. The validator must know the notblank,
// jo_phone, area and slot tags (see utils.NewValidator).
func Validate(v *validator.Validate, info models.CustomerInfo) FieldErrors {
	err := v.Struct(info)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return FieldErrors{"customer": err.Error()}
	}

	fields := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required", "notblank":
			fields[fe.Field()] = CodeRequired
		case "jo_phone":
			fields[fe.Field()] = CodeInvalidPhone
		default:
			fields[fe.Field()] = CodeInvalidOption
		}
	}

	return fields
}
