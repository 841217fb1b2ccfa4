package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/grocery-storefront/internal/models"
	service "github.com/aaravmahajanofficial/grocery-storefront/internal/services"
	"github.com/aaravmahajanofficial/grocery-storefront/internal/utils"
	"github.com/aaravmahajanofficial/grocery-storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type PreferenceHandler struct {
	preferenceService service.PreferenceService
	validator         *validator.Validate
}

func NewPreferenceHandler(preferenceService service.PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{preferenceService: preferenceService, validator: utils.NewValidator()}
}

// GetLanguage godoc
//	@Summary		Get the display language
//	@Tags			Preferences
//	@Produce		json
//	@Param			X-Session-ID	header		string					false	"Shopper session"
//	@Success		200				{object}	models.LanguageResponse	"Language, Arabic by default"
//	@Router			/preferences/language [get]
func (h *PreferenceHandler) GetLanguage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, logger, ok := requireSession(w, r)
		if !ok {
			return
		}

		lang, err := h.preferenceService.GetLanguage(r.Context(), sessionID)
		if err != nil {
			logger.Error("Failed to get language", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, models.LanguageResponse{Language: lang})
	}
}

// SetLanguage godoc
//	@Summary		Set the display language
//	@Tags			Preferences
//	@Accept			json
//	@Produce		json
//	@Param			X-Session-ID	header		string					false	"Shopper session"
//	@Param			language		body		models.LanguageRequest	true	"ar or en"
//	@Success		200				{object}	models.LanguageResponse	"Stored language"
//	@Failure		400				{object}	response.ErrorResponse	"Validation error"
//	@Router			/preferences/language [put]
func (h *PreferenceHandler) SetLanguage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, logger, ok := requireSession(w, r)
		if !ok {
			return
		}

		var req models.LanguageRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid language input")
			return
		}

		lang, err := h.preferenceService.SetLanguage(r.Context(), sessionID, req.Language)
		if err != nil {
			logger.Error("Failed to set language", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Language changed", slog.String("language", string(lang)))
		response.Success(w, http.StatusOK, models.LanguageResponse{Language: lang})
	}
}
