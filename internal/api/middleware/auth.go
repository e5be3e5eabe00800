package middleware

import (
	"context"
	"net/http"

	"github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/api/handlers"
)

type contextKey string

const sessionTokenKey contextKey = "sessionToken"

// HeaderSessionToken carries the portal session token on protected routes
const HeaderSessionToken = "X-Session-ID"

// Auth requires a session token header and stores it in the request
// context. Token existence is checked by the services against the store.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get(HeaderSessionToken)
		if token == "" {
			handlers.RespondUnauthorized(w, "missing "+HeaderSessionToken+" header")
			return
		}
		ctx := context.WithValue(r.Context(), sessionTokenKey, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionToken extracts the token stored by Auth
func SessionToken(ctx context.Context) string {
	token, _ := ctx.Value(sessionTokenKey).(string)
	return token
}
