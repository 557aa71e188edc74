package models

import "github.com/app-sre/graphgate/pkg/graph"

type CypherRequest struct {
	Query   string         `json:"query"`
	Params  map[string]any `json:"params,omitempty"`
	MaxRows *int           `json:"maxRows,omitempty"`
}

type Summary struct {
	Keys     []string `json:"keys"`
	RowCount int      `json:"rowCount"`
}

type CypherResponse struct {
	Rows    []graph.Record `json:"rows"`
	Summary Summary        `json:"summary"`
}

// NewCypherResponse assembles a response whose row count always matches the
// rows it carries.
func NewCypherResponse(res *graph.Result) *CypherResponse {
	rows := res.Records
	if rows == nil {
		rows = []graph.Record{}
	}
	keys := res.Keys
	if keys == nil {
		keys = []string{}
	}

	return &CypherResponse{
		Rows:    rows,
		Summary: Summary{Keys: keys, RowCount: len(rows)},
	}
}
