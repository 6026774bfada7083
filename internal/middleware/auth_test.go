package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/missionctl/missionctl/internal/middleware"
	"github.com/stretchr/testify/require"
)

func doRequest(t *testing.T, token, authHeader string) *httptest.ResponseRecorder {
	t.Helper()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := middleware.NewAuthMiddleware(token).Authenticate(next)

	req := httptest.NewRequest(http.MethodGet, "/kanban", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func TestAuthenticate(t *testing.T) {
	tests := []struct {
		name       string
		token      string
		authHeader string
		wantStatus int
	}{
		{"open mode skips check", "", "", http.StatusOK},
		{"open mode ignores header", "", "Bearer anything", http.StatusOK},
		{"valid token", "secret", "Bearer secret", http.StatusOK},
		{"case-insensitive scheme", "secret", "bearer secret", http.StatusOK},
		{"missing header", "secret", "", http.StatusUnauthorized},
		{"wrong scheme", "secret", "Basic secret", http.StatusUnauthorized},
		{"no scheme", "secret", "secret", http.StatusUnauthorized},
		{"wrong token", "secret", "Bearer nope", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, tt.token, tt.authHeader)
			require.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
