package graph

import (
	"context"
	"sync"
)

// MemoryClient is an in-memory Client used in place of a running database.
// Results are returned in the order they were pushed.
type MemoryClient struct {
	mu           sync.Mutex
	calls        []ExecutedQuery
	results      []*Result
	err          error
	connectivity error
	closed       bool
}

var _ Client = (*MemoryClient)(nil)

// ExecutedQuery is a query text and its parameters as received by Run.
type ExecutedQuery struct {
	Query  string
	Params map[string]any
}

func NewMemoryClient() *MemoryClient {
	return &MemoryClient{}
}

// WithError makes every subsequent Run return err.
func (m *MemoryClient) WithError(err error) *MemoryClient {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
	return m
}

func (m *MemoryClient) WithConnectivityError(err error) *MemoryClient {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connectivity = err
	return m
}

func (m *MemoryClient) PushResult(res *Result) *MemoryClient {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results = append(m.results, res)
	return m
}

func (m *MemoryClient) Run(_ context.Context, query string, params map[string]any) (*Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, ExecutedQuery{
		Query:  query,
		Params: cloneMap(params),
	})

	if m.err != nil {
		return nil, m.err
	}

	if len(m.results) == 0 {
		return &Result{Keys: []string{}, Records: []Record{}}, nil
	}

	res := m.results[0]
	m.results = m.results[1:]
	return res, nil
}

func (m *MemoryClient) VerifyConnectivity(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.connectivity
}

func (m *MemoryClient) Close(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Calls returns a copy of every query received so far.
func (m *MemoryClient) Calls() []ExecutedQuery {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]ExecutedQuery, len(m.calls))
	copy(out, m.calls)
	return out
}

func (m *MemoryClient) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

func cloneMap(in map[string]any) map[string]any {
	if in == nil {
		return nil
	}
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
