package httpx

import (
	"time"

	"turkeypos/internal/journal"
	"turkeypos/internal/pos/session"
)

type beginSelectionRequest struct {
	ProductID string `json:"product_id"`
}

type keypadRequest struct {
	// Key is "0"–"9", "C" (clear) or "back" (delete last digit).
	Key string `json:"key"`
}

type tableRequest struct {
	TableNumber string `json:"table_number"`
}

type takeoutRequest struct {
	Takeout bool `json:"takeout"`
}

type receivedRequest struct {
	Amount string `json:"amount"`
}

type deleteOrderRequest struct {
	// Confirm must be true; kitchen-side order deletion is irreversible
	// and always goes through an explicit confirmation.
	Confirm bool `json:"confirm"`
}

type SessionView struct {
	ID             string         `json:"id"`
	State          string         `json:"state"`
	Lines          []CartLineView `json:"lines"`
	Total          float64        `json:"total"`
	TableNumber    string         `json:"table_number"`
	Takeout        bool           `json:"takeout"`
	ReceivedAmount string         `json:"received_amount"`
	Change         ChangeView     `json:"change"`
	Selection      *SelectionView `json:"selection,omitempty"`
}

type CartLineView struct {
	ID          string   `json:"id"`
	ProductID   string   `json:"product_id"`
	ProductName string   `json:"product_name"`
	BasePrice   float64  `json:"base_price"`
	UnitPrice   float64  `json:"unit_price"`
	Quantity    int      `json:"quantity"`
	OptionIDs   []string `json:"option_ids"`
	Subtotal    float64  `json:"subtotal"`
}

type ChangeView struct {
	Amount       float64 `json:"amount"`
	Insufficient bool    `json:"insufficient"`
	Neutral      bool    `json:"neutral"`
}

type SelectionView struct {
	ProductID         string   `json:"product_id"`
	ProductName       string   `json:"product_name"`
	SelectedOptionIDs []string `json:"selected_option_ids"`
	QuantityBuffer    string   `json:"quantity_buffer"`
	UnitPrice         float64  `json:"unit_price"`
}

type CheckoutResponse struct {
	OrderID     string  `json:"order_id"`
	TableNumber string  `json:"table_number"`
	TotalPrice  float64 `json:"total_price"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"created_at"`
}

type CheckoutStatusView struct {
	Status       string `json:"status"`
	TableNumber  string `json:"table_number"`
	OrderType    string `json:"order_type"`
	OrderID      string `json:"order_id,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
	TraceID      string `json:"trace_id,omitempty"`
	CreatedAt    string `json:"created_at"`
}

type KitchenOrderView struct {
	ID          string                 `json:"id"`
	TableNumber string                 `json:"table_number"`
	TotalPrice  float64                `json:"total_price"`
	Status      string                 `json:"status"`
	CreatedAt   string                 `json:"created_at"`
	Items       []KitchenOrderItemView `json:"items"`
}

type KitchenOrderItemView struct {
	ProductName     string   `json:"product_name"`
	Quantity        int      `json:"quantity"`
	SelectedOptions []string `json:"selected_options"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func mapSessionView(s *session.Session) SessionView {
	v := s.View()

	lines := make([]CartLineView, 0, len(v.Lines))
	for _, l := range v.Lines {
		lines = append(lines, CartLineView{
			ID:          l.ID,
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			BasePrice:   l.BasePrice,
			UnitPrice:   l.UnitPrice,
			Quantity:    l.Quantity,
			OptionIDs:   l.OptionIDs,
			Subtotal:    l.Subtotal(),
		})
	}

	view := SessionView{
		ID:             v.ID,
		State:          string(v.State),
		Lines:          lines,
		Total:          v.Total,
		TableNumber:    v.TableNumber,
		Takeout:        v.Takeout,
		ReceivedAmount: v.Received,
		Change: ChangeView{
			Amount:       v.Change.Amount,
			Insufficient: v.Change.Insufficient,
			Neutral:      v.Change.Neutral,
		},
	}

	if v.Selection != nil {
		view.Selection = &SelectionView{
			ProductID:         v.Selection.ProductID,
			ProductName:       v.Selection.ProductName,
			SelectedOptionIDs: v.Selection.SelectedOptionIDs,
			QuantityBuffer:    v.Selection.QuantityBuffer,
			UnitPrice:         v.Selection.UnitPrice,
		}
	}
	return view
}

func mapCheckoutStatusView(e *journal.Entry) CheckoutStatusView {
	return CheckoutStatusView{
		Status:       string(e.Status),
		TableNumber:  e.TableNumber,
		OrderType:    e.OrderType,
		OrderID:      e.OrderID,
		ErrorMessage: e.ErrorMessage,
		TraceID:      e.TraceID,
		CreatedAt:    e.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}
