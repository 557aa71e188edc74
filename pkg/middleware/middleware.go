package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/app-sre/graphgate/pkg/models"
)

type ctxKey string

const (
	ContextKeyRequest   ctxKey = "request"
	ContextKeyRequestID ctxKey = "request_id"
)

const (
	apiKeyHeader      = "X-Api-Key"
	contentTypeHeader = "Content-Type"
	contentTypeJSON   = "application/json"
)

const (
	unauthorizedMessage = "Unauthorized"
	internalMessage     = "An internal error has occurred"
	timeoutMessage      = "Request timed out"
)

type Middleware func(http.Handler) http.Handler

// Error replies with a JSON error body carrying detail, in the manner of
// http.Error.
func Error(w http.ResponseWriter, detail string, code int) {
	h := w.Header()
	h.Del("Content-Length")
	h.Set(contentTypeHeader, contentTypeJSON)
	h.Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(models.ErrorResponse{Detail: detail})
}
