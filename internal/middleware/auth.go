package middleware

import (
	"net/http"
	"strings"
)

// AuthMiddleware gates requests behind a single shared bearer token. An
// empty configured token disables the check entirely (open mode). A missing
// or malformed header is unauthorized; a well-formed header with the wrong
// token is forbidden.
type AuthMiddleware struct {
	token string
}

// NewAuthMiddleware creates an AuthMiddleware for the configured token.
func NewAuthMiddleware(token string) *AuthMiddleware {
	return &AuthMiddleware{token: token}
}

// Authenticate validates the bearer token before calling the next handler.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.token == "" {
			next.ServeHTTP(w, r)
			return
		}

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			http.Error(w, "missing authorization header", http.StatusUnauthorized)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			http.Error(w, "invalid authorization header format", http.StatusUnauthorized)
			return
		}

		if parts[1] != m.token {
			http.Error(w, "invalid token", http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
