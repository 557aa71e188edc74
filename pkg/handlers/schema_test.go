package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/app-sre/graphgate/internal/test"
	graphgate "github.com/app-sre/graphgate/pkg"
	"github.com/app-sre/graphgate/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchema(t *testing.T) {
	t.Parallel()

	cases := []struct {
		description string
		given       *schema.Schema
		labels      []string
		types       []string
	}{
		{
			"default schema",
			schema.Default(),
			[]string{"Vehicle", "Fact", "Brand", "Dealer"},
			[]string{"HAS_FACT", "MADE_BY", "SOLD_BY"},
		},
		{
			"custom schema",
			&schema.Schema{
				Nodes: []schema.Node{{Label: "Person", Properties: []string{"name"}}},
				Rels:  []schema.Relationship{{Type: "KNOWS", From: "Person", To: "Person"}},
			},
			[]string{"Person"},
			[]string{"KNOWS"},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.description, func(t *testing.T) {
			t.Parallel()

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/schema", nil)

			logger := test.DummyLogger(io.Discard).Sugar()

			expected := &graphgate.Config{Schema: tc.given, Logger: logger}
			Schema(expected).ServeHTTP(w, r)

			actual := w.Result()
			defer func() { _ = actual.Body.Close() }()

			var body schema.Schema
			require.NoError(t, json.NewDecoder(actual.Body).Decode(&body))

			assert.Equal(t, http.StatusOK, actual.StatusCode)
			assert.Equal(t, "application/json", actual.Header.Get("Content-Type"))
			assert.Equal(t, tc.given, &body)
			assert.Equal(t, tc.labels, body.Labels())
			assert.Equal(t, tc.types, body.Types())
		})
	}
}
