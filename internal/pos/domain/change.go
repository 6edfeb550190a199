package domain

import (
	"strconv"
	"strings"
)

// Change is the derived cash-back view for a transaction.
type Change struct {
	// Amount is received minus total. Meaningless when Neutral is set.
	Amount float64
	// Insufficient marks a negative amount (received cash does not cover
	// the total).
	Insufficient bool
	// Neutral means there is nothing to show yet: the received input is
	// empty or unparseable, or the cart has no total. Rendered as 0,
	// never as a negative.
	Neutral bool
}

// CalculateChange derives the change view from the raw received-amount
// string and the current cart total.
func CalculateChange(received string, total float64) Change {
	trimmed := strings.TrimSpace(received)
	if trimmed == "" || total == 0 {
		return Change{Neutral: true}
	}
	amount, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return Change{Neutral: true}
	}
	diff := amount - total
	return Change{Amount: diff, Insufficient: diff < 0}
}
