package httpx

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"turkeypos/internal/pos/domain"
	"turkeypos/internal/pos/ports"
)

// KitchenOrders lists the pending orders for the kitchen display.
func (h *Handler) KitchenOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.ActiveOrders(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "active order fetch failed", "error", err)
		writeError(w, http.StatusBadGateway, "upstream_error", err.Error())
		return
	}

	views := make([]KitchenOrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, mapKitchenOrderView(o))
	}
	writeJSON(w, http.StatusOK, views)
}

// CompleteKitchenOrder marks one order done. No confirmation step; the
// action is routine.
func (h *Handler) CompleteKitchenOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderID")
	if err := h.orders.CompleteOrder(r.Context(), orderID); err != nil {
		slog.ErrorContext(r.Context(), "order completion failed", "order_id", orderID, "error", err)
		writeError(w, http.StatusBadGateway, "upstream_error", err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteKitchenOrder removes an order for good. Unlike cart-line removal it
// demands an explicit confirm flag, since the action cannot be undone.
func (h *Handler) DeleteKitchenOrder(w http.ResponseWriter, r *http.Request) {
	var req deleteOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	if !req.Confirm {
		writeError(w, http.StatusBadRequest, "confirm_required", "order deletion must be confirmed")
		return
	}

	orderID := chi.URLParam(r, "orderID")
	if err := h.orders.DeleteOrder(r.Context(), orderID); err != nil {
		slog.ErrorContext(r.Context(), "order deletion failed", "order_id", orderID, "error", err)
		writeError(w, http.StatusBadGateway, "upstream_error", err.Error())
		return
	}
	slog.InfoContext(r.Context(), "order deleted", "order_id", orderID)
	w.WriteHeader(http.StatusNoContent)
}

// SalesStats proxies the aggregate sales endpoint for dashboards.
func (h *Handler) SalesStats(w http.ResponseWriter, r *http.Request) {
	h.proxySales(w, r, h.sales.Stats)
}

// SalesOverview proxies the per-store breakdown endpoint.
func (h *Handler) SalesOverview(w http.ResponseWriter, r *http.Request) {
	h.proxySales(w, r, h.sales.Overview)
}

func (h *Handler) proxySales(w http.ResponseWriter, r *http.Request, fetch func(ctx context.Context, q ports.StatsQuery) (json.RawMessage, error)) {
	q := ports.StatsQuery{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
		StoreID:   r.URL.Query().Get("store_id"),
	}
	raw, err := fetch(r.Context(), q)
	if err != nil {
		slog.ErrorContext(r.Context(), "sales fetch failed", "error", err)
		writeError(w, http.StatusBadGateway, "upstream_error", err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(raw)
}

func mapKitchenOrderView(o domain.KitchenOrder) KitchenOrderView {
	items := make([]KitchenOrderItemView, 0, len(o.Items))
	for _, it := range o.Items {
		opts := make([]string, 0, len(it.SelectedOptions))
		for _, opt := range it.SelectedOptions {
			opts = append(opts, opt.OptionName)
		}
		items = append(items, KitchenOrderItemView{
			ProductName:     it.ProductName,
			Quantity:        it.Quantity,
			SelectedOptions: opts,
		})
	}
	return KitchenOrderView{
		ID:          o.ID,
		TableNumber: o.TableNumber,
		TotalPrice:  o.TotalPrice,
		Status:      o.Status,
		CreatedAt:   o.CreatedAt,
		Items:       items,
	}
}
