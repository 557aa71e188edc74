// Package cypher holds the textual checks applied to a query before it is
// sent to the graph database.
//
// Both checks work on raw query text with regular expressions. They have no
// knowledge of string literals, comments or query structure, so a keyword
// inside a literal is rejected and a write hidden by other means is not. Only
// parsing the query would give a real read-only guarantee.
package cypher

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

const (
	DefaultMaxRows = 200
	MaxRowsCeiling = 200
)

var ErrReadOnlyViolation = errors.New("only read queries allowed")

var (
	forbidden = regexp.MustCompile(`(?i)\b(create|merge|delete|set|remove|load\s+csv)\b`)
	aggregate = regexp.MustCompile(`(?i)\b(count|avg|min|max|sum)\s*\(`)
)

// Check returns ErrReadOnlyViolation when the query contains a write-like
// keyword anywhere in its text.
func Check(query string) error {
	if forbidden.MatchString(query) {
		return ErrReadOnlyViolation
	}
	return nil
}

// Forbidden returns the first write-like keyword found in the query, if any.
func Forbidden(query string) (string, bool) {
	m := forbidden.FindString(query)
	return m, m != ""
}

// EffectiveLimit clamps the requested row count to the ceiling.
func EffectiveLimit(maxRows int) int {
	return min(maxRows, MaxRowsCeiling)
}

// NeedsLimit reports whether a LIMIT clause would be appended: the text
// mentions "limit" nowhere and calls no aggregate function.
func NeedsLimit(query string) bool {
	if strings.Contains(strings.ToLower(query), "limit") {
		return false
	}
	return !aggregate.MatchString(query)
}

// ApplyLimit appends "\nLIMIT k" to the query when NeedsLimit holds, with
// k = EffectiveLimit(maxRows). The query is otherwise returned unchanged.
func ApplyLimit(query string, maxRows int) string {
	if !NeedsLimit(query) {
		return query
	}
	return query + "\nLIMIT " + strconv.Itoa(EffectiveLimit(maxRows))
}
