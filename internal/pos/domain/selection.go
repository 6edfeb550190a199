package domain

import (
	"errors"
	"strconv"

	"github.com/google/uuid"
)

// ErrZeroQuantity is returned when a selection is confirmed with the keypad
// buffer still at zero. The selection itself is left intact for correction.
var ErrZeroQuantity = errors.New("quantity must be greater than zero")

const maxQuantityDigits = 2

// Selection tracks the operator's in-progress customization of one product
// pick: the toggled option ids plus the keypad quantity buffer. It is the
// server-side counterpart of the selection modal.
type Selection struct {
	product  Product
	selected []string
	quantity string
}

func NewSelection(p Product) *Selection {
	return &Selection{product: p, quantity: "0"}
}

func (s *Selection) Product() Product { return s.product }

// SelectedIDs returns the selected option ids in selection order.
func (s *Selection) SelectedIDs() []string {
	out := make([]string, len(s.selected))
	copy(out, s.selected)
	return out
}

func (s *Selection) IsSelected(optionID string) bool {
	for _, id := range s.selected {
		if id == optionID {
			return true
		}
	}
	return false
}

// Toggle flips an option. Required options are mutually exclusive: picking
// one drops any other required option already selected, without touching the
// optional selections. Optional options toggle independently.
func (s *Selection) Toggle(opt ProductOption) {
	if opt.IsRequired {
		kept := make([]string, 0, len(s.selected)+1)
		for _, id := range s.selected {
			other, ok := s.product.Option(id)
			if ok && other.IsRequired {
				continue
			}
			kept = append(kept, id)
		}
		s.selected = append(kept, opt.ID)
		return
	}

	for i, id := range s.selected {
		if id == opt.ID {
			s.selected = append(s.selected[:i], s.selected[i+1:]...)
			return
		}
	}
	s.selected = append(s.selected, opt.ID)
}

// Press appends a keypad digit to the quantity buffer. A leading "0" is
// replaced by the first digit typed; input is capped at two digits.
func (s *Selection) Press(digit byte) {
	if digit < '0' || digit > '9' {
		return
	}
	if s.quantity == "0" {
		s.quantity = string(digit)
		return
	}
	if len(s.quantity) >= maxQuantityDigits {
		return
	}
	s.quantity += string(digit)
}

// ClearQuantity resets the buffer to "0".
func (s *Selection) ClearQuantity() { s.quantity = "0" }

// Backspace removes the last digit, flooring at "0".
func (s *Selection) Backspace() {
	if len(s.quantity) > 1 {
		s.quantity = s.quantity[:len(s.quantity)-1]
		return
	}
	s.quantity = "0"
}

func (s *Selection) QuantityBuffer() string { return s.quantity }

// Quantity is the numeric value of the keypad buffer.
func (s *Selection) Quantity() int {
	n, err := strconv.Atoi(s.quantity)
	if err != nil {
		return 0
	}
	return n
}

// UnitPrice is the resolved unit price of the current choices: base price
// plus the deltas of every selected option still present on the product.
// Stale option ids contribute nothing.
func (s *Selection) UnitPrice() float64 {
	price := s.product.BasePrice
	for _, id := range s.selected {
		if opt, ok := s.product.Option(id); ok {
			price += opt.PriceDelta
		}
	}
	return price
}

// SelectionSnapshot is a detached copy of a selection taken for rendering.
// Mutations to the live selection after the snapshot do not show through.
type SelectionSnapshot struct {
	ProductID         string
	ProductName       string
	SelectedOptionIDs []string
	QuantityBuffer    string
	UnitPrice         float64
}

// Snapshot copies the current state into a value the caller can read without
// holding whatever lock guards the live selection.
func (s *Selection) Snapshot() SelectionSnapshot {
	return SelectionSnapshot{
		ProductID:         s.product.ID,
		ProductName:       s.product.Name,
		SelectedOptionIDs: s.SelectedIDs(),
		QuantityBuffer:    s.quantity,
		UnitPrice:         s.UnitPrice(),
	}
}

// Confirm resolves the current choices into a cart line. Option ids that no
// longer exist on the product are dropped rather than failing the price
// computation. Confirming with quantity zero fails validation and leaves
// the selection untouched.
func (s *Selection) Confirm() (CartLine, error) {
	qty := s.Quantity()
	if qty <= 0 {
		return CartLine{}, ErrZeroQuantity
	}

	price := s.product.BasePrice
	resolved := make([]string, 0, len(s.selected))
	for _, id := range s.selected {
		opt, ok := s.product.Option(id)
		if !ok {
			continue
		}
		price += opt.PriceDelta
		resolved = append(resolved, id)
	}

	return CartLine{
		ID:          uuid.NewString(),
		ProductID:   s.product.ID,
		ProductName: s.product.Name,
		BasePrice:   s.product.BasePrice,
		UnitPrice:   price,
		Quantity:    qty,
		OptionIDs:   resolved,
	}, nil
}
