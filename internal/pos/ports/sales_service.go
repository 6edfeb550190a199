package ports

import (
	"context"
	"encoding/json"
)

// StatsQuery filters the sales endpoints. Zero values mean "unbounded".
type StatsQuery struct {
	StartDate string
	EndDate   string
	StoreID   string
}

// SalesService exposes the aggregate endpoints the dashboards read. The
// terminal does not interpret the payloads; they pass through untouched.
type SalesService interface {
	Stats(ctx context.Context, q StatsQuery) (json.RawMessage, error)
	Overview(ctx context.Context, q StatsQuery) (json.RawMessage, error)
}
