package kitchen

import (
	"sync"
	"time"

	"turkeypos/internal/pos/domain"
)

// Board is the kitchen display's local copy of the pending order list.
// Every refresh replaces the whole slice, so a stale or overlapping poll can
// never leave the board half-updated.
type Board struct {
	mu        sync.RWMutex
	orders    []domain.KitchenOrder
	updatedAt time.Time
}

func NewBoard() *Board {
	return &Board{}
}

func (b *Board) Replace(orders []domain.KitchenOrder) {
	b.mu.Lock()
	b.orders = orders
	b.updatedAt = time.Now()
	b.mu.Unlock()
}

func (b *Board) Orders() []domain.KitchenOrder {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]domain.KitchenOrder, len(b.orders))
	copy(out, b.orders)
	return out
}

func (b *Board) UpdatedAt() time.Time {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.updatedAt
}
