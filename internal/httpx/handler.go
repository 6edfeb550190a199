// Package httpx is the HTTP surface the POS touch UI talks to. It exposes
// the per-terminal transaction state machine plus thin passthroughs for the
// menu, kitchen display and sales dashboards.
package httpx

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"turkeypos/internal/journal"
	"turkeypos/internal/pos/domain"
	"turkeypos/internal/pos/ports"
	"turkeypos/internal/pos/session"
)

type Handler struct {
	sessions  *session.Manager
	menu      ports.MenuService
	orders    ports.OrderService
	sales     ports.SalesService
	checkouts journal.Reader // nil when journaling is disabled
}

func NewHandler(sessions *session.Manager, menu ports.MenuService, orders ports.OrderService, sales ports.SalesService, checkouts journal.Reader) *Handler {
	return &Handler{
		sessions:  sessions,
		menu:      menu,
		orders:    orders,
		sales:     sales,
		checkouts: checkouts,
	}
}

// OpenSession starts a fresh terminal session with an empty cart.
func (h *Handler) OpenSession(w http.ResponseWriter, r *http.Request) {
	s := h.sessions.Open()
	slog.InfoContext(r.Context(), "session opened", "session_id", s.ID())
	writeJSON(w, http.StatusCreated, mapSessionView(s))
}

// GetSession returns the full transaction view: cart, totals, designation
// and the derived change.
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, mapSessionView(s))
}

// CloseSession discards a session and whatever transaction it held.
func (h *Handler) CloseSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	h.sessions.Close(id)
	w.WriteHeader(http.StatusNoContent)
}

// BeginSelection opens the selection for one product, looked up in the
// current menu.
func (h *Handler) BeginSelection(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	var req beginSelectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	if req.ProductID == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "product_id is required")
		return
	}

	menu, err := h.menu.GetMenu(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "menu fetch failed", "error", err)
		writeError(w, http.StatusBadGateway, "upstream_error", err.Error())
		return
	}

	product, found := domain.FindProduct(menu, req.ProductID)
	if !found {
		writeError(w, http.StatusNotFound, "unknown_product", "product not on the menu")
		return
	}

	s.BeginSelection(product)
	writeJSON(w, http.StatusOK, mapSessionView(s))
}

// ToggleOption flips a customization on the open selection.
func (h *Handler) ToggleOption(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	if err := s.ToggleOption(chi.URLParam(r, "optionID")); err != nil {
		h.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSessionView(s))
}

// Keypad applies one key press to the quantity buffer.
func (h *Handler) Keypad(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	var req keypadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	if err := s.Keypad(req.Key); err != nil {
		h.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSessionView(s))
}

// ConfirmSelection turns the open selection into a cart line.
func (h *Handler) ConfirmSelection(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	line, err := s.ConfirmSelection()
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	slog.InfoContext(r.Context(), "cart line added",
		"session_id", s.ID(), "product_id", line.ProductID, "quantity", line.Quantity)
	writeJSON(w, http.StatusCreated, mapSessionView(s))
}

// DismissSelection drops the open selection, cart untouched.
func (h *Handler) DismissSelection(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	s.DismissSelection()
	writeJSON(w, http.StatusOK, mapSessionView(s))
}

// RemoveLine deletes one cart line by position.
func (h *Handler) RemoveLine(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "line index must be an integer")
		return
	}
	if err := s.RemoveLine(index); err != nil {
		h.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSessionView(s))
}

// SetTable stores the table designator.
func (h *Handler) SetTable(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	var req tableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	s.SetTable(req.TableNumber)
	writeJSON(w, http.StatusOK, mapSessionView(s))
}

// SetTakeout flags the transaction as takeout.
func (h *Handler) SetTakeout(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	var req takeoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	s.SetTakeout(req.Takeout)
	writeJSON(w, http.StatusOK, mapSessionView(s))
}

// SetReceived stores the received cash amount; the response carries the
// derived change.
func (h *Handler) SetReceived(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	var req receivedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	s.SetReceived(req.Amount)
	writeJSON(w, http.StatusOK, mapSessionView(s))
}

// Checkout submits the transaction upstream.
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	conf, err := s.Checkout(r.Context())
	if err != nil {
		slog.WarnContext(r.Context(), "checkout failed", "session_id", s.ID(), "error", err)
		h.writeDomainError(w, err)
		return
	}

	slog.InfoContext(r.Context(), "order submitted",
		"session_id", s.ID(), "order_id", conf.OrderID, "total", conf.TotalPrice)
	writeJSON(w, http.StatusCreated, CheckoutResponse{
		OrderID:     conf.OrderID,
		TableNumber: conf.TableNumber,
		TotalPrice:  conf.TotalPrice,
		Status:      conf.Status,
		CreatedAt:   conf.CreatedAt,
	})
}

// CheckoutStatus reports the most recent checkout attempt recorded for the
// session, read straight from the checkout journal.
func (h *Handler) CheckoutStatus(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	if h.checkouts == nil {
		writeError(w, http.StatusNotFound, "journal_disabled", "checkout journal is not configured")
		return
	}

	entry, err := h.checkouts.Latest(r.Context(), s.ID())
	if errors.Is(err, journal.ErrNoEntries) {
		writeError(w, http.StatusNotFound, "no_checkout_attempts", "")
		return
	}
	if err != nil {
		slog.ErrorContext(r.Context(), "journal read failed", "session_id", s.ID(), "error", err)
		writeError(w, http.StatusInternalServerError, "journal_error", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, mapCheckoutStatusView(entry))
}

// GetMenu serves the (possibly cached) menu.
func (h *Handler) GetMenu(w http.ResponseWriter, r *http.Request) {
	menu, err := h.menu.GetMenu(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "menu fetch failed", "error", err)
		writeError(w, http.StatusBadGateway, "upstream_error", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, menu)
}

func (h *Handler) session(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	id := chi.URLParam(r, "id")
	s, ok := h.sessions.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, "session_not_found", "")
		return nil, false
	}
	return s, true
}

// writeDomainError maps core errors onto the response taxonomy: validation
// failures get specific codes, in-flight submits conflict, everything else
// is a generic upstream failure.
func (h *Handler) writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, session.ErrSubmitInFlight):
		writeError(w, http.StatusConflict, "submit_in_flight", err.Error())
	case errors.Is(err, session.ErrEmptyCart):
		writeError(w, http.StatusUnprocessableEntity, "empty_cart", err.Error())
	case errors.Is(err, session.ErrTableRequired):
		writeError(w, http.StatusUnprocessableEntity, "table_required", err.Error())
	case errors.Is(err, domain.ErrZeroQuantity):
		writeError(w, http.StatusUnprocessableEntity, "zero_quantity", err.Error())
	case errors.Is(err, domain.ErrLineOutOfRange):
		writeError(w, http.StatusNotFound, "line_not_found", err.Error())
	case errors.Is(err, session.ErrNoSelection):
		writeError(w, http.StatusNotFound, "no_selection", err.Error())
	case errors.Is(err, session.ErrUnknownOption):
		writeError(w, http.StatusNotFound, "unknown_option", err.Error())
	default:
		writeError(w, http.StatusBadGateway, "upstream_error", err.Error())
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, ErrorResponse{Error: code, Message: msg})
}
