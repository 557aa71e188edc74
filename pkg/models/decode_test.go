package models

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeCypherRequest(t *testing.T) {
	t.Parallel()

	five := 5

	cases := []struct {
		description string
		given       string
		expected    *CypherRequest
		error       bool
		message     string
	}{
		{
			"query only",
			`{"query": "MATCH (v:Vehicle) RETURN v.vin"}`,
			&CypherRequest{Query: "MATCH (v:Vehicle) RETURN v.vin"},
			false,
			``,
		},
		{
			"query with row count",
			`{"query": "RETURN 1", "maxRows": 5}`,
			&CypherRequest{Query: "RETURN 1", MaxRows: &five},
			false,
			``,
		},
		{
			"query with nested parameters",
			`{"query": "RETURN $x", "params": {"x": {"a": [1, 2.5, "b", null, true]}, "y": 2020}}`,
			&CypherRequest{
				Query: "RETURN $x",
				Params: map[string]any{
					"x": map[string]any{"a": []any{int64(1), 2.5, "b", nil, true}},
					"y": int64(2020),
				},
			},
			false,
			``,
		},
		{
			"query with empty parameters",
			`{"query": "RETURN 1", "params": {}}`,
			&CypherRequest{Query: "RETURN 1", Params: map[string]any{}},
			false,
			``,
		},
		{
			"empty body",
			``,
			nil,
			true,
			`request body cannot be empty`,
		},
		{
			"malformed JSON",
			`{"query: "RETURN 1"}`,
			nil,
			true,
			`unable to decode request body`,
		},
		{
			"incorrect query type",
			`{"query": -1}`,
			nil,
			true,
			`unable to decode request body`,
		},
		{
			"fractional row count",
			`{"query": "RETURN 1", "maxRows": 1.5}`,
			nil,
			true,
			`unable to decode request body`,
		},
		{
			"parameters that are not an object",
			`{"query": "RETURN 1", "params": [1]}`,
			nil,
			true,
			`unable to decode request body`,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.description, func(t *testing.T) {
			t.Parallel()

			actual, err := DecodeCypherRequest(bytes.NewBufferString(tc.given))

			if tc.error {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.message)
			} else {
				require.NoError(t, err)
			}

			assert.Equal(t, tc.expected, actual)
		})
	}
}
