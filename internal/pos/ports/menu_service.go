package ports

import (
	"context"

	"turkeypos/internal/pos/domain"
)

// MenuService is the read side of the restaurant API: the full menu of
// categories with nested products and options.
type MenuService interface {
	GetMenu(ctx context.Context) ([]domain.Category, error)
}
