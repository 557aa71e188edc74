package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Audit interface {
	Write(ctx context.Context, q *QueryData) error
}

type QueryData struct {
	ID        string
	Query     string
	Address   string
	Timestamp int64
}

func NewQueryData(query, address string) *QueryData {
	return &QueryData{
		ID:        uuid.NewString(),
		Query:     query,
		Address:   address,
		Timestamp: time.Now().Unix(),
	}
}
