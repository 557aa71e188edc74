package graph

import (
	"context"
	"errors"
)

// Client is the contract the handlers need from the graph database.
type Client interface {
	Run(ctx context.Context, query string, params map[string]any) (*Result, error)
	VerifyConnectivity(ctx context.Context) error
	Close(ctx context.Context) error
}

// Result holds every record returned by a query along with the column
// names reported by the driver.
type Result struct {
	Keys    []string
	Records []Record
}

type Record map[string]any

type Options struct {
	URI            string
	Username       string
	Password       string
	Database       string
	MaxConnections int
	AllowWrite     bool
	UserAgent      string
}

var (
	ErrMissingURI = errors.New("graph URI is required")

	// ErrUnavailable marks failures to reach the database at all, as opposed
	// to errors reported by the database for a given query.
	ErrUnavailable = errors.New("graph database unavailable")
)

func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}
