package middleware

import (
	"bytes"
	"context"
	"io"
	"net/http"

	graphgate "github.com/app-sre/graphgate/pkg"
	"github.com/app-sre/graphgate/pkg/audit"
	"github.com/app-sre/graphgate/pkg/models"
)

// Audit records the query carried by the request body. The decoded request is
// passed on through the context, and the body is restored for handlers that
// read it themselves. Bodies that cannot be decoded are passed through
// unaudited so the handler can report the problem.
func Audit(cfg *graphgate.Config) Middleware {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			var b bytes.Buffer

			if _, err := io.Copy(&b, r.Body); err != nil {
				cfg.Logger.Errorf("Unable to copy request body: %s", err)
				Error(w, internalMessage, http.StatusInternalServerError)
				return
			}
			_ = r.Body.Close()

			r.Body = io.NopCloser(bytes.NewReader(b.Bytes()))

			request, err := models.DecodeCypherRequest(bytes.NewReader(b.Bytes()))
			if err != nil {
				cfg.Logger.Debugf("Unable to decode request body: %s", err)
				h.ServeHTTP(w, r)
				return
			}

			query := audit.NewQueryData(request.Query, r.RemoteAddr)
			if err := cfg.Audit.Write(ctx, query); err != nil {
				cfg.Logger.Errorf("Unable to write audit: %s", err)
				Error(w, internalMessage, http.StatusInternalServerError)
				return
			}

			ctx = context.WithValue(ctx, ContextKeyRequest, request)
			ctx = context.WithValue(ctx, ContextKeyRequestID, query.ID)

			h.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
