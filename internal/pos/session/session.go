// Package session holds the per-terminal transaction state machine: one
// cart being built, an optional open selection, the table/takeout
// designation, the received-amount buffer and the checkout transition.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"turkeypos/internal/journal"
	"turkeypos/internal/pos/domain"
	"turkeypos/internal/pos/ports"
)

// Validation errors. They are detected locally, cause no network call and
// leave all in-progress state untouched.
var (
	ErrEmptyCart     = errors.New("cart is empty")
	ErrTableRequired = errors.New("table number required for dine-in orders")
	ErrNoSelection   = errors.New("no selection in progress")
	ErrUnknownOption = errors.New("option not present on the selected product")
)

// ErrSubmitInFlight is returned when checkout is triggered while a previous
// submission has not come back yet. Prevents duplicate order creation from a
// double-tap.
var ErrSubmitInFlight = errors.New("checkout already in progress")

// State is the informal transaction state exposed to the UI.
type State string

const (
	StateEmpty      State = "empty"
	StateBuilding   State = "building"
	StateSubmitting State = "submitting"
)

// Session owns exactly one in-progress transaction. It is never shared
// across terminals; the mutex only serializes the UI's own requests and the
// in-flight submit flag.
type Session struct {
	id      string
	orders  ports.OrderService
	journal journal.Repository // nil-safe: journaling skipped if nil

	mu         sync.Mutex
	cart       domain.Cart
	selection  *domain.Selection
	table      string
	takeout    bool
	received   string
	submitting bool
}

func newSession(id string, orders ports.OrderService, jr journal.Repository) *Session {
	return &Session{id: id, orders: orders, journal: jr}
}

func (s *Session) ID() string { return s.id }

// State reports where the transaction is in its lifecycle.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch {
	case s.submitting:
		return StateSubmitting
	case s.cart.Empty():
		return StateEmpty
	default:
		return StateBuilding
	}
}

// BeginSelection opens a selection for a product, replacing any selection
// already open.
func (s *Session) BeginSelection(p domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection = domain.NewSelection(p)
}

// DismissSelection drops the open selection without touching the cart.
func (s *Session) DismissSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection = nil
}

// ToggleOption flips an option on the open selection, resolved by id against
// the selected product.
func (s *Session) ToggleOption(optionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selection == nil {
		return ErrNoSelection
	}
	opt, ok := s.selection.Product().Option(optionID)
	if !ok {
		return ErrUnknownOption
	}
	s.selection.Toggle(opt)
	return nil
}

// Keypad applies one keypad action to the open selection's quantity buffer.
// Keys are "0"–"9", "C" (clear) and "back" (delete last digit).
func (s *Session) Keypad(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selection == nil {
		return ErrNoSelection
	}
	switch key {
	case "C", "c":
		s.selection.ClearQuantity()
	case "back":
		s.selection.Backspace()
	default:
		if len(key) == 1 {
			s.selection.Press(key[0])
		}
	}
	return nil
}

// Selection returns a detached snapshot of the open selection, or
// ErrNoSelection. The snapshot is copied under the session lock; the live
// selection never escapes it.
func (s *Session) Selection() (domain.SelectionSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selection == nil {
		return domain.SelectionSnapshot{}, ErrNoSelection
	}
	return s.selection.Snapshot(), nil
}

// ConfirmSelection resolves the open selection into a cart line and appends
// it. A zero quantity fails validation and keeps the selection open for
// correction.
func (s *Session) ConfirmSelection() (domain.CartLine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selection == nil {
		return domain.CartLine{}, ErrNoSelection
	}
	line, err := s.selection.Confirm()
	if err != nil {
		return domain.CartLine{}, err
	}
	s.cart.Add(line)
	s.selection = nil
	return line, nil
}

// RemoveLine deletes one cart line by position. No confirmation step: this
// is a local edit, not a kitchen-side order deletion.
func (s *Session) RemoveLine(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Remove(index)
}

func (s *Session) SetTable(tableNumber string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.table = tableNumber
}

func (s *Session) SetTakeout(takeout bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.takeout = takeout
}

func (s *Session) SetReceived(amount string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.received = amount
}

// View is an immutable snapshot of the transaction for rendering. Selection
// is nil when no selection is open.
type View struct {
	ID          string
	State       State
	Lines       []domain.CartLine
	Total       float64
	TableNumber string
	Takeout     bool
	Received    string
	Change      domain.Change
	Selection   *domain.SelectionSnapshot
}

func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := StateBuilding
	if s.submitting {
		state = StateSubmitting
	} else if s.cart.Empty() {
		state = StateEmpty
	}

	var selection *domain.SelectionSnapshot
	if s.selection != nil {
		snap := s.selection.Snapshot()
		selection = &snap
	}

	total := s.cart.Total()
	return View{
		ID:          s.id,
		State:       state,
		Lines:       s.cart.Lines(),
		Total:       total,
		TableNumber: s.table,
		Takeout:     s.takeout,
		Received:    s.received,
		Change:      domain.CalculateChange(s.received, total),
		Selection:   selection,
	}
}

// Checkout validates the transaction, submits it upstream and on success
// resets the cart, table designator, takeout flag and received buffer in one
// step. Validation failures and upstream failures both leave every field
// untouched so the operator can correct or retry. There is no automatic
// retry, and a second checkout is refused while one is in flight.
func (s *Session) Checkout(ctx context.Context) (*domain.OrderConfirmation, error) {
	s.mu.Lock()
	if s.submitting {
		s.mu.Unlock()
		return nil, ErrSubmitInFlight
	}
	if err := s.validateLocked(); err != nil {
		table, orderType := s.designationLocked()
		s.mu.Unlock()
		s.record(ctx, journal.StatusRejected, table, orderType, "", err)
		return nil, err
	}

	req := s.buildRequestLocked()
	s.submitting = true
	s.mu.Unlock()

	s.record(ctx, journal.StatusSubmitted, req.TableNumber, req.OrderType, "", nil)
	conf, err := s.orders.CreateOrder(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitting = false

	if err != nil {
		s.record(ctx, journal.StatusFailed, req.TableNumber, req.OrderType, "", err)
		return nil, fmt.Errorf("submit order: %w", err)
	}

	s.cart.Clear()
	s.table = ""
	s.takeout = false
	s.received = ""

	s.record(ctx, journal.StatusCompleted, req.TableNumber, req.OrderType, conf.OrderID, nil)
	return conf, nil
}

func (s *Session) validateLocked() error {
	if s.cart.Empty() {
		return ErrEmptyCart
	}
	if s.table == "" && !s.takeout {
		return ErrTableRequired
	}
	return nil
}

func (s *Session) designationLocked() (table, orderType string) {
	if s.takeout {
		return domain.TakeoutTable, domain.OrderTypeTakeout
	}
	return s.table, domain.OrderTypeDineIn
}

// buildRequestLocked projects the cart into the wire shape. Prices never
// leave the terminal; the server recomputes them from the ids.
func (s *Session) buildRequestLocked() domain.OrderRequest {
	table, orderType := s.designationLocked()

	items := make([]domain.OrderRequestItem, 0, s.cart.Len())
	for _, line := range s.cart.Lines() {
		items = append(items, domain.OrderRequestItem{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			OptionIDs: line.OptionIDs,
		})
	}
	return domain.OrderRequest{TableNumber: table, OrderType: orderType, Items: items}
}

// record appends a journal row. Journal failures are logged, never surfaced:
// the audit trail must not break a sale.
func (s *Session) record(ctx context.Context, status journal.Status, table, orderType, orderID string, cause error) {
	if s.journal == nil {
		return
	}
	entry := journal.NewEntry(ctx, s.id, status)
	entry.TableNumber = table
	entry.OrderType = orderType
	entry.OrderID = orderID
	if cause != nil {
		entry.ErrorMessage = cause.Error()
	}
	if err := s.journal.Save(ctx, entry); err != nil {
		slog.WarnContext(ctx, "checkout journal write failed", "session_id", s.id, "status", status, "error", err)
	}
}
