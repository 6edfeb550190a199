package api

import (
	"context"
	"fmt"
	"net/http"

	"turkeypos/internal/pos/domain"
)

// CreateOrder submits a checkout. The payload carries only ids and
// quantities; the server computes the authoritative prices.
func (c *Client) CreateOrder(ctx context.Context, req domain.OrderRequest) (*domain.OrderConfirmation, error) {
	items := make([]createOrderRequestItem, 0, len(req.Items))
	for _, it := range req.Items {
		optionIDs := it.OptionIDs
		if optionIDs == nil {
			optionIDs = []string{}
		}
		items = append(items, createOrderRequestItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			OptionIDs: optionIDs,
		})
	}

	payload := createOrderRequest{
		TableNumber: req.TableNumber,
		OrderType:   req.OrderType,
		Items:       items,
	}

	var res orderResponse
	if err := c.do(ctx, http.MethodPost, "/orders/", nil, payload, &res); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	return &domain.OrderConfirmation{
		OrderID:     res.ID,
		TableNumber: res.TableNumber,
		TotalPrice:  res.TotalPrice,
		Status:      res.Status,
		CreatedAt:   res.CreatedAt,
	}, nil
}

// ActiveOrders lists the orders the kitchen still has to prepare.
func (c *Client) ActiveOrders(ctx context.Context) ([]domain.KitchenOrder, error) {
	var res []orderResponse
	if err := c.do(ctx, http.MethodGet, "/orders/active", nil, nil, &res); err != nil {
		return nil, fmt.Errorf("list active orders: %w", err)
	}

	orders := make([]domain.KitchenOrder, 0, len(res))
	for _, o := range res {
		orders = append(orders, mapKitchenOrder(o))
	}
	return orders, nil
}

// CompleteOrder marks an order done on the kitchen side.
func (c *Client) CompleteOrder(ctx context.Context, orderID string) error {
	payload := orderStatusUpdate{Status: "completed"}
	if err := c.do(ctx, http.MethodPatch, "/orders/"+orderID+"/status", nil, payload, nil); err != nil {
		return fmt.Errorf("complete order %s: %w", orderID, err)
	}
	return nil
}

// DeleteOrder removes an order entirely. Callers are expected to have
// confirmed the action with the operator first.
func (c *Client) DeleteOrder(ctx context.Context, orderID string) error {
	if err := c.do(ctx, http.MethodDelete, "/orders/"+orderID, nil, nil, nil); err != nil {
		return fmt.Errorf("delete order %s: %w", orderID, err)
	}
	return nil
}

func mapKitchenOrder(o orderResponse) domain.KitchenOrder {
	items := make([]domain.KitchenOrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		opts := make([]domain.KitchenOrderOption, 0, len(it.SelectedOptions))
		for _, opt := range it.SelectedOptions {
			opts = append(opts, domain.KitchenOrderOption{
				OptionName: opt.OptionName,
				PriceDelta: opt.PriceDelta,
			})
		}
		items = append(items, domain.KitchenOrderItem{
			ProductName:     it.ProductName,
			Quantity:        it.Quantity,
			UnitPrice:       it.UnitPrice,
			SelectedOptions: opts,
		})
	}
	return domain.KitchenOrder{
		ID:          o.ID,
		TableNumber: o.TableNumber,
		TotalPrice:  o.TotalPrice,
		Status:      o.Status,
		CreatedAt:   o.CreatedAt,
		Items:       items,
	}
}
