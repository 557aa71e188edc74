package graph

import (
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"
)

const (
	dateLayout          = "2006-01-02"
	localTimeLayout     = "15:04:05.999999999"
	offsetTimeLayout    = "15:04:05.999999999Z07:00"
	localDateTimeLayout = "2006-01-02T15:04:05.999999999"
)

// Normalize turns driver values into plain JSON-friendly values. A node
// becomes its properties. A relationship becomes the triple
// [start, type, end], and a path the sequence [node, type, node, ...].
func Normalize(v any) any {
	switch t := v.(type) {
	case dbtype.Node:
		return normalizeMap(t.Props)
	case dbtype.Relationship:
		return normalizeRelationship(t)
	case dbtype.Path:
		return normalizePath(t)
	case dbtype.Date:
		return t.Time().Format(dateLayout)
	case dbtype.LocalTime:
		return t.Time().Format(localTimeLayout)
	case dbtype.Time:
		return t.Time().Format(offsetTimeLayout)
	case dbtype.LocalDateTime:
		return t.Time().Format(localDateTimeLayout)
	case time.Time:
		return t.Format(time.RFC3339Nano)
	case dbtype.Duration:
		return t.String()
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = Normalize(e)
		}
		return out
	case map[string]any:
		return normalizeMap(t)
	default:
		return v
	}
}

func normalizeMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, e := range m {
		out[k] = Normalize(e)
	}
	return out
}

// A relationship record only references its end nodes by element id, so
// their properties are not available and both ends are left empty.
func normalizeRelationship(r dbtype.Relationship) []any {
	return []any{map[string]any{}, r.Type, map[string]any{}}
}

func normalizePath(p dbtype.Path) []any {
	out := make([]any, 0, len(p.Nodes)+len(p.Relationships))
	for i, n := range p.Nodes {
		out = append(out, normalizeMap(n.Props))
		if i < len(p.Relationships) {
			out = append(out, p.Relationships[i].Type)
		}
	}
	return out
}
