package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/grocery-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/grocery-storefront/internal/errors"
	"github.com/aaravmahajanofficial/grocery-storefront/internal/utils/response"
)

// requireSession reads the shopper session set by middleware.Session and
// writes a 400 when it is missing.
func requireSession(w http.ResponseWriter, r *http.Request) (string, *slog.Logger, bool) {
	logger := middleware.LoggerFromContext(r.Context())

	sessionID, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		logger.Warn("Request without a shopper session")
		response.Error(w, errors.BadRequestError("Session required"))

		return "", logger, false
	}

	return sessionID, logger, true
}
