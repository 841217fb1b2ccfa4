package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aaravmahajanofficial/grocery-storefront/internal/api/handlers"
	"github.com/aaravmahajanofficial/grocery-storefront/internal/models"
	"github.com/aaravmahajanofficial/grocery-storefront/internal/services/mocks"
	"github.com/aaravmahajanofficial/grocery-storefront/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPreferenceHandler(t *testing.T) {
	mockPreferenceService := new(mocks.PreferenceService)
	preferenceHandler := handlers.NewPreferenceHandler(mockPreferenceService)

	t.Run("Success - Get", func(t *testing.T) {
		mockPreferenceService.On("GetLanguage", mock.Anything, sessionID).Return(models.LanguageArabic, nil).Once()

		req := testutils.CreateTestRequestWithSession(http.MethodGet, "/preferences/language", nil, sessionID, nil)
		rr := httptest.NewRecorder()

		preferenceHandler.GetLanguage().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var got models.LanguageResponse
		decodeData(t, rr, &got)
		assert.Equal(t, models.LanguageArabic, got.Language)
	})

	t.Run("Success - Set", func(t *testing.T) {
		mockPreferenceService.On("SetLanguage", mock.Anything, sessionID, models.LanguageEnglish).Return(models.LanguageEnglish, nil).Once()

		req := testutils.CreateTestRequestWithSession(http.MethodPut, "/preferences/language", strings.NewReader(`{"language":"en"}`), sessionID, nil)
		rr := httptest.NewRecorder()

		preferenceHandler.SetLanguage().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var got models.LanguageResponse
		decodeData(t, rr, &got)
		assert.Equal(t, models.LanguageEnglish, got.Language)
	})

	t.Run("Failure - Unsupported Language", func(t *testing.T) {
		req := testutils.CreateTestRequestWithSession(http.MethodPut, "/preferences/language", strings.NewReader(`{"language":"de"}`), sessionID, nil)
		rr := httptest.NewRecorder()

		preferenceHandler.SetLanguage().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	mockPreferenceService.AssertExpectations(t)
}
