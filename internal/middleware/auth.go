package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/sweet-shop/backend/internal/config"
)

// API keys are passed in the "api_key" header. Two key sets exist: regular
// keys may purchase, admin keys may additionally manage the catalog.

// RequireUser allows requests carrying any configured API key
func RequireUser(cfg config.AuthConfig) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			apiKey := r.Header.Get("api_key")

			if apiKey == "" {
				writeAuthError(w, http.StatusUnauthorized, "Unauthorized: API key required")
				return
			}

			if !keyIn(apiKey, cfg.APIKeys) && !keyIn(apiKey, cfg.AdminAPIKeys) {
				writeAuthError(w, http.StatusForbidden, "Forbidden: Invalid API key")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin allows requests carrying an admin API key only
func RequireAdmin(cfg config.AuthConfig) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			apiKey := r.Header.Get("api_key")

			if apiKey == "" {
				writeAuthError(w, http.StatusUnauthorized, "Unauthorized: API key required")
				return
			}

			if !keyIn(apiKey, cfg.AdminAPIKeys) {
				writeAuthError(w, http.StatusForbidden, "Forbidden: admin access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func keyIn(key string, keys []string) bool {
	for _, k := range keys {
		if key == k {
			return true
		}
	}
	return false
}

// writeAuthError emits the same response envelope the handlers use
func writeAuthError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"message": message,
	})
}
