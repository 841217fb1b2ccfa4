package utils_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/grocery-storefront/internal/models"
	"github.com/aaravmahajanofficial/grocery-storefront/internal/utils"
	"github.com/aaravmahajanofficial/grocery-storefront/internal/utils/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsJordanianMobile(t *testing.T) {
	tests := []struct {
		phone string
		valid bool
	}{
		{"0791234567", true},
		{"0781234567", true},
		{"0771234567", true},
		{"+962791234567", true},
		{"962791234567", true},
		{" 079 123 4567 ", true},
		{"0761234567", false},
		{"0691234567", false},
		{"12345", false},
		{"", false},
	}

	for _, tc := range tests {
		t.Run(tc.phone, func(t *testing.T) {
			assert.Equal(t, tc.valid, utils.IsJordanianMobile(tc.phone))
		})
	}
}

func TestParseAndValidate(t *testing.T) {
	v := utils.NewValidator()

	t.Run("Success - Valid Body", func(t *testing.T) {
		// Arrange
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(`{"email":"admin@example.com","password":"secret123"}`))

		var dest models.LoginRequest

		// Act
		ok := utils.ParseAndValidate(req, rr, &dest, v)

		// Assert
		assert.True(t, ok)
		assert.Equal(t, "admin@example.com", dest.Email)
	})

	t.Run("Failure - Malformed JSON", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(`{oops`))

		var dest models.LoginRequest

		ok := utils.ParseAndValidate(req, rr, &dest, v)

		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "BAD_REQUEST")
	})

	t.Run("Failure - Empty Body", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(""))

		var dest models.LoginRequest

		assert.False(t, utils.ParseAndValidate(req, rr, &dest, v))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Failure - Validation Error", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(`{"email":"not-an-email"}`))

		var dest models.LoginRequest

		ok := utils.ParseAndValidate(req, rr, &dest, v)

		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var resp response.APIResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		require.NotNil(t, resp.Error)
		assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
		assert.NotEmpty(t, resp.Error.Details)
	})
}

func TestWithDBTimeout(t *testing.T) {
	ctx, cancel := utils.WithDBTimeout(context.Background())
	defer cancel()

	deadline, ok := ctx.Deadline()
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(utils.DefaultDBTimeout), deadline, time.Second)
}
