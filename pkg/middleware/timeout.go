package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/app-sre/graphgate/pkg/models"
)

// Timeout replies 503 with a JSON error body once the handler runs past the
// given duration.
func Timeout(timeout time.Duration) Middleware {
	b, _ := json.Marshal(models.ErrorResponse{Detail: timeoutMessage})
	return func(h http.Handler) http.Handler {
		th := http.TimeoutHandler(h, timeout, string(b))
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			th.ServeHTTP(&timeoutWriter{ResponseWriter: w}, r)
		})
	}
}

// timeoutWriter labels the timeout reply, which http.TimeoutHandler writes
// without a content type, as JSON.
type timeoutWriter struct {
	http.ResponseWriter
}

func (w *timeoutWriter) WriteHeader(code int) {
	h := w.Header()
	if code == http.StatusServiceUnavailable && h.Get(contentTypeHeader) == "" {
		h.Set(contentTypeHeader, contentTypeJSON)
	}
	w.ResponseWriter.WriteHeader(code)
}
