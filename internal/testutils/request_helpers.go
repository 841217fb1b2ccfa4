package testutils

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"

	"github.com/aaravmahajanofficial/grocery-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/grocery-storefront/internal/models"
	"github.com/google/uuid"
)

func newRequest(method, target string, body io.Reader, pathParams map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, body)

	for key, value := range pathParams {
		req.SetPathValue(key, value)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return req
}

func discardLogger(ctx context.Context) context.Context {
	return context.WithValue(ctx, middleware.LoggerKey, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// CreateTestRequestWithContext builds a request carrying admin claims, as if it
// had passed the auth middleware.
func CreateTestRequestWithContext(method, target string, body io.Reader, userID uuid.UUID, pathParams map[string]string) *http.Request {
	req := newRequest(method, target, body, pathParams)

	claims := &models.Claims{UserID: userID, Email: "admin@example.com"}

	ctx := context.WithValue(req.Context(), middleware.UserContextKey, claims)

	return req.WithContext(discardLogger(ctx))
}

// CreateTestRequestWithSession builds a shopper request, as if it had passed
// the session middleware.
func CreateTestRequestWithSession(method, target string, body io.Reader, sessionID string, pathParams map[string]string) *http.Request {
	req := newRequest(method, target, body, pathParams)

	ctx := context.WithValue(req.Context(), middleware.SessionKey, sessionID)

	return req.WithContext(discardLogger(ctx))
}

func CreateTestRequestWithoutContext(method, target string, body io.Reader, pathParams map[string]string) *http.Request {
	req := newRequest(method, target, body, pathParams)

	return req.WithContext(discardLogger(req.Context()))
}
