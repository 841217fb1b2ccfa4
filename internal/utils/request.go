package utils

import (
	"errors"
	"log/slog"
	"net/http"

	appErrors "github.com/aaravmahajanofficial/grocery-storefront/internal/errors"
	"github.com/aaravmahajanofficial/grocery-storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

// ParseAndValidate decodes the JSON body into dest and validates it. On failure
// it writes the error response itself and returns false.
func ParseAndValidate(r *http.Request, w http.ResponseWriter, dest any, validate *validator.Validate) bool {
	if err := DecodeJSONBody(r, dest); err != nil {
		slog.Warn("Invalid request", slog.String("error", err.Error()))
		response.Error(w, appErrors.BadRequestError("Invalid request body").WithError(err))

		return false
	}

	if err := ValidateStruct(validate, dest); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			response.ValidationError(w, verrs)

			return false
		}

		response.Error(w, appErrors.ValidationError("Invalid input data").WithError(err))

		return false
	}

	return true
}
