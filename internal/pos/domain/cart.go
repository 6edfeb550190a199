package domain

import "errors"

var ErrLineOutOfRange = errors.New("cart line index out of range")

// CartLine is one confirmed product purchase decision. It is immutable once
// created; the only mutation the cart allows is removal.
type CartLine struct {
	ID          string
	ProductID   string
	ProductName string
	BasePrice   float64
	UnitPrice   float64
	Quantity    int
	OptionIDs   []string
}

// Subtotal is unit price times quantity.
func (l CartLine) Subtotal() float64 {
	return l.UnitPrice * float64(l.Quantity)
}

// Cart is the ordered line list of one in-progress transaction. Repeated
// picks of the same product and options produce separate lines; lines are
// never merged.
type Cart struct {
	lines []CartLine
}

func (c *Cart) Add(line CartLine) {
	c.lines = append(c.lines, line)
}

// Remove deletes exactly one line by position; subsequent indices shift down.
func (c *Cart) Remove(index int) error {
	if index < 0 || index >= len(c.lines) {
		return ErrLineOutOfRange
	}
	c.lines = append(c.lines[:index], c.lines[index+1:]...)
	return nil
}

func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Len() int { return len(c.lines) }

func (c *Cart) Empty() bool { return len(c.lines) == 0 }

// Total is the sum of all line subtotals. This is the value rendered to the
// operator and fed to the change calculation; it is never sent upstream.
func (c *Cart) Total() float64 {
	var total float64
	for _, l := range c.lines {
		total += l.Subtotal()
	}
	return total
}

func (c *Cart) Clear() { c.lines = nil }
