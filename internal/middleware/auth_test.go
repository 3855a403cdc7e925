package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentity(t *testing.T) {
	validator := stubValidator{"good": "user-1"}

	tests := []struct {
		name     string
		required bool
		header   string
		status   int
		body     string
	}{
		{"valid token", true, "Bearer good", http.StatusOK, "user-1"},
		{"valid token without auth", false, "Bearer good", http.StatusOK, "user-1"},
		{"missing header", true, "", http.StatusUnauthorized, `{"error":"missing authorization header"}`},
		{"missing header falls back", false, "", http.StatusOK, "default-user"},
		{"wrong scheme", true, "Basic good", http.StatusUnauthorized, `{"error":"invalid authorization header format"}`},
		{"empty token", false, "Bearer ", http.StatusUnauthorized, `{"error":"invalid authorization header format"}`},
		{"invalid token", true, "Bearer nope", http.StatusUnauthorized, `{"error":"invalid or expired token"}`},
		{"invalid token without auth", false, "Bearer nope", http.StatusUnauthorized, `{"error":"invalid or expired token"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newEngine(Identity(validator, tt.required, "default-user"))
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			w := do(r, req)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.body, w.Body.String())
		})
	}
}

func TestIdentityWithoutDefaultUser(t *testing.T) {
	r := newEngine(Identity(stubValidator{}, false, ""))
	w := do(r, httptest.NewRequest(http.MethodGet, "/whoami", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRequiresToken(t *testing.T) {
	r := newEngine(AuthMiddleware(stubValidator{"good": "user-1"}))
	w := do(r, httptest.NewRequest(http.MethodGet, "/whoami", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
