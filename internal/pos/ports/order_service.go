package ports

import (
	"context"

	"turkeypos/internal/pos/domain"
)

// OrderService is the write side of the restaurant API plus the kitchen
// display reads.
type OrderService interface {
	CreateOrder(ctx context.Context, req domain.OrderRequest) (*domain.OrderConfirmation, error)
	ActiveOrders(ctx context.Context) ([]domain.KitchenOrder, error)
	CompleteOrder(ctx context.Context, orderID string) error
	DeleteOrder(ctx context.Context, orderID string) error
}
