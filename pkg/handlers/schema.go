package handlers

import (
	"encoding/json"
	"net/http"

	graphgate "github.com/app-sre/graphgate/pkg"
)

func Schema(cfg *graphgate.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(cfg.Schema); err != nil {
			cfg.Logger.Errorf("Unable to encode schema: %s", err)
		}
	})
}
