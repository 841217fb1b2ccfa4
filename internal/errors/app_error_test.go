package errors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	appErrors "github.com/aaravmahajanofficial/grocery-storefront/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name       string
		err        *appErrors.AppError
		code       string
		statusCode int
	}{
		{"Validation", appErrors.ValidationError("bad"), appErrors.ErrCodeValidation, http.StatusBadRequest},
		{"BadRequest", appErrors.BadRequestError("bad"), appErrors.ErrCodeBadRequest, http.StatusBadRequest},
		{"NotFound", appErrors.NotFoundError("gone"), appErrors.ErrCodeNotFound, http.StatusNotFound},
		{"Unauthorized", appErrors.UnauthorizedError("who"), appErrors.ErrCodeUnauthorized, http.StatusUnauthorized},
		{"Conflict", appErrors.ConflictError("taken"), appErrors.ErrCodeConflict, http.StatusConflict},
		{"Duplicate", appErrors.DuplicateEntryError("dup"), appErrors.ErrCodeDuplicateEntry, http.StatusConflict},
		{"Database", appErrors.DatabaseError("db"), appErrors.ErrCodeDatabaseError, http.StatusInternalServerError},
		{"TooManyRequests", appErrors.TooManyRequestsError("slow"), appErrors.ErrCodeTooManyRequests, http.StatusTooManyRequests},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.code, tc.err.Code)
			assert.Equal(t, tc.statusCode, tc.err.StatusCode)
		})
	}
}

func TestWrapping(t *testing.T) {
	cause := errors.New("connection refused")

	appErr := appErrors.DatabaseError("Failed to list products").
		WithError(cause).
		WithDetail("products").
		WithFields(map[string]string{"id": "required"})

	wrapped := fmt.Errorf("service: %w", appErr)

	found, ok := appErrors.IsAppError(wrapped)
	require.True(t, ok)
	assert.Equal(t, "Failed to list products", found.Error())
	assert.Equal(t, "products", found.Detail)
	assert.Equal(t, "required", found.Fields["id"])
	assert.ErrorIs(t, wrapped, cause)

	_, ok = appErrors.IsAppError(cause)
	assert.False(t, ok)
}
