package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/grocery-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/grocery-storefront/internal/models"
	service "github.com/aaravmahajanofficial/grocery-storefront/internal/services"
	"github.com/aaravmahajanofficial/grocery-storefront/internal/utils"
	"github.com/aaravmahajanofficial/grocery-storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type AuthHandler struct {
	authService service.AuthService
	validator   *validator.Validate
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService, validator: utils.NewValidator()}
}

// Login godoc
//	@Summary		Admin login
//	@Description	Exchanges admin credentials for a bearer token. Repeated failures are rate limited per email.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			credentials	body		models.LoginRequest		true	"Credentials"
//	@Success		200			{object}	models.LoginResponse	"Token"
//	@Failure		400			{object}	response.ErrorResponse	"Validation error"
//	@Failure		401			{object}	response.ErrorResponse	"Invalid email or password"
//	@Failure		429			{object}	response.ErrorResponse	"Too many attempts"
//	@Router			/admin/login [post]
func (h *AuthHandler) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.LoginRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid login input")
			return
		}

		resp, err := h.authService.Login(r.Context(), &req)
		if err != nil {
			logger.Warn("Admin login failed", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Admin logged in", slog.String("adminId", resp.Admin.ID.String()))
		response.Success(w, http.StatusOK, resp)
	}
}
