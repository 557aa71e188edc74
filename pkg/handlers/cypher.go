package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	graphgate "github.com/app-sre/graphgate/pkg"
	"github.com/app-sre/graphgate/pkg/cypher"
	"github.com/app-sre/graphgate/pkg/graph"
	"github.com/app-sre/graphgate/pkg/middleware"
	"github.com/app-sre/graphgate/pkg/models"
)

const readOnlyMessage = "Only read queries allowed"

func Cypher(cfg *graphgate.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		request, ok := ctx.Value(middleware.ContextKeyRequest).(*models.CypherRequest)
		if !ok || request == nil {
			var err error

			request, err = models.DecodeCypherRequest(r.Body)
			if errors.Is(err, models.ErrEmptyBody) {
				middleware.Error(w, "Request body cannot be empty", http.StatusBadRequest)
				return
			}
			if err != nil {
				cfg.Logger.Errorf("Unable to decode request body: %s", err)
				middleware.Error(w, "Unable to decode request body", http.StatusBadRequest)
				return
			}
		}

		if strings.TrimSpace(request.Query) == "" {
			middleware.Error(w, "Query cannot be empty", http.StatusBadRequest)
			return
		}

		maxRows := cypher.DefaultMaxRows
		if request.MaxRows != nil {
			if *request.MaxRows < 1 {
				middleware.Error(w, "Value of maxRows must be a positive integer", http.StatusBadRequest)
				return
			}
			maxRows = *request.MaxRows
		}

		if err := cypher.Check(request.Query); err != nil {
			keyword, _ := cypher.Forbidden(request.Query)
			cfg.Logger.Warnf("Rejected query containing write-like keyword: %q", keyword)
			middleware.Error(w, readOnlyMessage, http.StatusBadRequest)
			return
		}

		query := cypher.ApplyLimit(request.Query, maxRows)
		if query != request.Query {
			cfg.Logger.Debugf("Appended row limit to query (maxRows: %d)", cypher.EffectiveLimit(maxRows))
		}

		res, err := cfg.Graph.Run(ctx, query, request.Params)
		if err != nil {
			if graph.IsUnavailable(err) {
				cfg.Logger.Errorf("Unable to connect to the graph database: %s", err)
				middleware.Error(w, err.Error(), http.StatusServiceUnavailable)
				return
			}
			cfg.Logger.Errorf("Unable to query graph database: %s", err)
			middleware.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		content, err := json.Marshal(models.NewCypherResponse(res))
		if err != nil {
			cfg.Logger.Errorf("Unable to encode query results: %s", err)
			middleware.Error(w, "Unable to encode query results", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(content)
	})
}
