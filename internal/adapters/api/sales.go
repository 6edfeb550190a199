package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"turkeypos/internal/pos/ports"
)

// Stats fetches aggregate sales figures. The payload passes through
// untouched; dashboards own its interpretation.
func (c *Client) Stats(ctx context.Context, q ports.StatsQuery) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/sales/stats", statsQuery(q), nil, &raw); err != nil {
		return nil, fmt.Errorf("sales stats: %w", err)
	}
	return raw, nil
}

// Overview fetches the per-store sales breakdown.
func (c *Client) Overview(ctx context.Context, q ports.StatsQuery) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/sales/overview", statsQuery(q), nil, &raw); err != nil {
		return nil, fmt.Errorf("sales overview: %w", err)
	}
	return raw, nil
}

func statsQuery(q ports.StatsQuery) url.Values {
	values := url.Values{}
	if q.StartDate != "" {
		values.Set("start_date", q.StartDate)
	}
	if q.EndDate != "" {
		values.Set("end_date", q.EndDate)
	}
	if q.StoreID != "" {
		values.Set("store_id", q.StoreID)
	}
	return values
}
