package middleware

import (
	"crypto/subtle"
	"net/http"

	graphgate "github.com/app-sre/graphgate/pkg"
)

// Authentication rejects any request whose API key header does not exactly
// match the configured key. Nothing further in the chain runs on failure.
func Authentication(cfg *graphgate.Config) Middleware {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.APIKeyEnv == nil || !cfg.APIKeyEnv.IsConfigured() {
				cfg.Logger.Errorf("Request cannot be authenticated: no API key configured")
				Error(w, unauthorizedMessage, http.StatusUnauthorized)
				return
			}

			key := r.Header.Get(apiKeyHeader)
			if key == "" {
				cfg.Logger.Debugf("Request without required header: %s (from: %s)", apiKeyHeader, r.RemoteAddr)
				Error(w, unauthorizedMessage, http.StatusUnauthorized)
				return
			}
			if subtle.ConstantTimeCompare([]byte(key), []byte(cfg.APIKeyEnv.Key)) != 1 {
				cfg.Logger.Warnf("Request with invalid API key (from: %s)", r.RemoteAddr)
				Error(w, unauthorizedMessage, http.StatusUnauthorized)
				return
			}

			h.ServeHTTP(w, r)
		})
	}
}
