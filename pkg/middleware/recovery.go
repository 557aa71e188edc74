package middleware

import (
	"errors"
	"net/http"

	graphgate "github.com/app-sre/graphgate/pkg"
)

func Recovery(cfg *graphgate.Config) Middleware {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if r := recover(); r != nil {
					err, ok := r.(error)
					if ok && errors.Is(err, http.ErrAbortHandler) {
						panic(err)
					}

					cfg.Logger.Errorf("Recovered from an error: %s", r)
					Error(w, internalMessage, http.StatusInternalServerError)
				}
			}()
			h.ServeHTTP(w, r)
		})
	}
}
