package graph

import "strings"

const (
	schemeBolt  = "bolt"
	schemeNeo4j = "neo4j"

	defaultBoltPort = 7687

	secureSuffix     = "+s"
	selfSignedSuffix = "+ssc"
)

// Scheme is the URI scheme of a Bolt connection string, e.g. "neo4j+s".
type Scheme string

func (s Scheme) String() string {
	return string(s)
}

// Name returns the scheme without its encryption suffix.
func (s Scheme) Name() string {
	if !s.IsValid() {
		return ""
	}
	name, _, _ := strings.Cut(strings.ToLower(string(s)), "+")
	return name
}

func (s Scheme) Port() int {
	if !s.IsValid() {
		return 0
	}
	return defaultBoltPort
}

// IsRouting reports whether the driver will use cluster routing.
func (s Scheme) IsRouting() bool {
	return s.Name() == schemeNeo4j
}

func (s Scheme) IsSecure() bool {
	if !s.IsValid() {
		return false
	}
	v := strings.ToLower(string(s))
	return strings.HasSuffix(v, secureSuffix) || strings.HasSuffix(v, selfSignedSuffix)
}

func (s Scheme) IsValid() bool {
	schemes := map[string]struct{}{
		schemeBolt:                     {},
		schemeBolt + secureSuffix:      {},
		schemeBolt + selfSignedSuffix:  {},
		schemeNeo4j:                    {},
		schemeNeo4j + secureSuffix:     {},
		schemeNeo4j + selfSignedSuffix: {},
	}
	_, ok := schemes[strings.ToLower(string(s))]

	return ok
}
