package api

import (
	"context"
	"fmt"
	"net/http"

	"turkeypos/internal/pos/domain"
)

// GetMenu fetches the full menu: categories with nested products and their
// customization options, already sorted by the server.
func (c *Client) GetMenu(ctx context.Context) ([]domain.Category, error) {
	var menu []domain.Category
	if err := c.do(ctx, http.MethodGet, "/menu/", nil, nil, &menu); err != nil {
		return nil, fmt.Errorf("get menu: %w", err)
	}
	return menu, nil
}
