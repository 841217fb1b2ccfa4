package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"regexp"

	"github.com/google/uuid"
)

const SessionHeader = "X-Session-ID"

type sessionContextKey struct{}

var SessionKey = sessionContextKey{}

var validSessionID = regexp.MustCompile(`^[A-Za-z0-9_-]{8,64}$`)

// Session resolves the shopper session from the X-Session-ID header, issuing a
// fresh id when the header is missing or malformed. The id is echoed back so
// the client can keep it.
func Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := r.Header.Get(SessionHeader)
		if !validSessionID.MatchString(sessionID) {
			sessionID = uuid.NewString()
		}

		w.Header().Set(SessionHeader, sessionID)

		logger := LoggerFromContext(r.Context()).With(slog.String("session_id", sessionID))

		ctx := context.WithValue(r.Context(), SessionKey, sessionID)
		ctx = context.WithValue(ctx, LoggerKey, logger)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func SessionFromContext(ctx context.Context) (string, bool) {
	sessionID, ok := ctx.Value(SessionKey).(string)

	return sessionID, ok && sessionID != ""
}
