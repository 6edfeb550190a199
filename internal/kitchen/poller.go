// Package kitchen implements the kitchen display refresh loop: a cancellable
// scheduled task that keeps a Board in sync with the active-order endpoint.
package kitchen

import (
	"context"
	"log/slog"
	"time"

	"turkeypos/internal/pos/ports"
)

// Poller periodically refreshes a Board from the order service. Fetches are
// read-only and idempotent; a failed tick keeps the previous view and the
// next tick tries again.
type Poller struct {
	orders   ports.OrderService
	board    *Board
	interval time.Duration
}

func NewPoller(orders ports.OrderService, board *Board, interval time.Duration) *Poller {
	return &Poller{orders: orders, board: board, interval: interval}
}

// Run refreshes immediately, then on every tick until ctx is cancelled.
// Cancellation is the only way the loop ends, which ties the poller's
// lifetime to the view that owns it.
func (p *Poller) Run(ctx context.Context) error {
	p.refresh(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			p.refresh(ctx)
		}
	}
}

func (p *Poller) refresh(ctx context.Context) {
	orders, err := p.orders.ActiveOrders(ctx)
	if err != nil {
		slog.WarnContext(ctx, "kitchen poll failed, keeping previous view", "error", err)
		return
	}
	p.board.Replace(orders)
}
