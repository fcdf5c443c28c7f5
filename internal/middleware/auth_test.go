package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sweet-shop/backend/internal/config"
)

func testHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("success"))
	})
}

func TestRequireUser(t *testing.T) {
	cfg := config.AuthConfig{
		APIKeys:      []string{"apitest", "testkey123"},
		AdminAPIKeys: []string{"admintest"},
	}

	authHandler := RequireUser(cfg)(testHandler())

	tests := []struct {
		name           string
		apiKey         string
		expectedStatus int
	}{
		{
			name:           "valid user key",
			apiKey:         "apitest",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "second user key",
			apiKey:         "testkey123",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "admin key also allowed",
			apiKey:         "admintest",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing API key",
			apiKey:         "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid API key",
			apiKey:         "wrongkey",
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/sweets/1/purchase", nil)
			if tt.apiKey != "" {
				req.Header.Set("api_key", tt.apiKey)
			}

			w := httptest.NewRecorder()
			authHandler.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	cfg := config.AuthConfig{
		APIKeys:      []string{"apitest"},
		AdminAPIKeys: []string{"admintest"},
	}

	authHandler := RequireAdmin(cfg)(testHandler())

	tests := []struct {
		name           string
		apiKey         string
		expectedStatus int
	}{
		{
			name:           "admin key allowed",
			apiKey:         "admintest",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "user key rejected",
			apiKey:         "apitest",
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "missing API key",
			apiKey:         "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid API key",
			apiKey:         "wrongkey",
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/sweets", nil)
			if tt.apiKey != "" {
				req.Header.Set("api_key", tt.apiKey)
			}

			w := httptest.NewRecorder()
			authHandler.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}
		})
	}
}
