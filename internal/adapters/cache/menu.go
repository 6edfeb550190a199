// Package cache decorates the menu port with a Redis read-through cache.
// The menu changes rarely but is fetched on every terminal page load, so a
// short TTL removes most upstream round trips.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"turkeypos/internal/pkg/cache"
	"turkeypos/internal/pos/domain"
	"turkeypos/internal/pos/ports"
)

const menuKey = "full"

var _ ports.MenuService = (*CachedMenu)(nil)

// CachedMenu serves the menu from Redis when fresh, falling back to the
// wrapped service. Cache failures are soft: they are logged and the call
// proceeds against the upstream.
type CachedMenu struct {
	next  ports.MenuService
	cache cache.Cache
	ttl   time.Duration
}

func NewCachedMenu(next ports.MenuService, c cache.Cache, ttl time.Duration) *CachedMenu {
	return &CachedMenu{next: next, cache: c, ttl: ttl}
}

func (m *CachedMenu) GetMenu(ctx context.Context) ([]domain.Category, error) {
	key := m.cache.GenerateKey("menu", menuKey)

	raw, err := m.cache.Get(ctx, key)
	if err != nil {
		slog.WarnContext(ctx, "menu cache read failed", "error", err)
	} else if raw != "" {
		var menu []domain.Category
		if err := json.Unmarshal([]byte(raw), &menu); err == nil {
			return menu, nil
		}
		// A corrupt entry falls through to a fresh fetch.
		slog.WarnContext(ctx, "menu cache entry unreadable, refetching")
	}

	menu, err := m.next.GetMenu(ctx)
	if err != nil {
		return nil, err
	}

	if buf, err := json.Marshal(menu); err == nil {
		if err := m.cache.Set(ctx, key, buf, m.ttl); err != nil {
			slog.WarnContext(ctx, "menu cache write failed", "error", err)
		}
	}
	return menu, nil
}
