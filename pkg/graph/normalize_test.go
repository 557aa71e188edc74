package graph

import (
	"testing"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	vehicle := dbtype.Node{
		ElementId: "4:test:1",
		Labels:    []string{"Vehicle"},
		Props:     map[string]any{"vin": "1HGCM82633A004352", "year": int64(2020)},
	}
	brand := dbtype.Node{
		ElementId: "4:test:2",
		Labels:    []string{"Brand"},
		Props:     map[string]any{"name": "Honda"},
	}
	madeBy := dbtype.Relationship{
		ElementId: "5:test:1",
		Type:      "MADE_BY",
		Props:     map[string]any{"since": int64(1990)},
	}

	cases := []struct {
		description string
		given       any
		want        any
	}{
		{
			"nil value",
			nil,
			nil,
		},
		{
			"scalar values pass through",
			int64(42),
			int64(42),
		},
		{
			"node is reduced to its properties",
			vehicle,
			map[string]any{"vin": "1HGCM82633A004352", "year": int64(2020)},
		},
		{
			"relationship becomes its type between empty ends",
			madeBy,
			[]any{map[string]any{}, "MADE_BY", map[string]any{}},
		},
		{
			"path becomes node properties interleaved with relationship types",
			dbtype.Path{Nodes: []dbtype.Node{vehicle, brand}, Relationships: []dbtype.Relationship{madeBy}},
			[]any{
				map[string]any{"vin": "1HGCM82633A004352", "year": int64(2020)},
				"MADE_BY",
				map[string]any{"name": "Honda"},
			},
		},
		{
			"path with a single node",
			dbtype.Path{Nodes: []dbtype.Node{brand}},
			[]any{map[string]any{"name": "Honda"}},
		},
		{
			"list of relationships",
			[]any{madeBy},
			[]any{[]any{map[string]any{}, "MADE_BY", map[string]any{}}},
		},
		{
			"list of nodes",
			[]any{brand, "x"},
			[]any{map[string]any{"name": "Honda"}, "x"},
		},
		{
			"map with nested node",
			map[string]any{"brand": brand, "n": 1.5},
			map[string]any{"brand": map[string]any{"name": "Honda"}, "n": 1.5},
		},
		{
			"date",
			dbtype.Date(time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)),
			"2024-02-29",
		},
		{
			"local date time",
			dbtype.LocalDateTime(time.Date(2024, 2, 29, 13, 45, 30, 0, time.UTC)),
			"2024-02-29T13:45:30",
		},
		{
			"local time with fraction",
			dbtype.LocalTime(time.Date(0, 1, 1, 8, 30, 0, 500000000, time.UTC)),
			"08:30:00.5",
		},
		{
			"date time with offset",
			time.Date(2024, 2, 29, 13, 45, 30, 0, time.FixedZone("", 3600)),
			"2024-02-29T13:45:30+01:00",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.description, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, Normalize(tc.given))
		})
	}
}

func TestNewRecord(t *testing.T) {
	t.Parallel()

	rec := &neo4j.Record{
		Keys:   []string{"v.vin", "b"},
		Values: []any{"1HGCM82633A004352", dbtype.Node{Props: map[string]any{"name": "Honda"}}},
	}

	actual := NewRecord(rec)

	assert.Equal(t, Record{
		"v.vin": "1HGCM82633A004352",
		"b":     map[string]any{"name": "Honda"},
	}, actual)
}
