package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func classicBurger() Product {
	return Product{
		ID:        "p1",
		Name:      "Classic Burger",
		BasePrice: 120,
		Options: []ProductOption{
			{ID: "o1", Name: "No Onion", PriceDelta: 0, IsRequired: false},
			{ID: "o2", Name: "Size: Large", PriceDelta: 30, IsRequired: true},
			{ID: "o3", Name: "Size: Small", PriceDelta: 0, IsRequired: true},
		},
	}
}

func TestToggleRequiredIsExclusive(t *testing.T) {
	p := classicBurger()
	s := NewSelection(p)

	small, _ := p.Option("o3")
	large, _ := p.Option("o2")

	s.Toggle(small)
	assert.True(t, s.IsSelected("o3"))

	s.Toggle(large)
	assert.True(t, s.IsSelected("o2"))
	assert.False(t, s.IsSelected("o3"), "picking one required option must drop the other")
	assert.Len(t, s.SelectedIDs(), 1)
}

func TestToggleRequiredKeepsOptionalSelections(t *testing.T) {
	p := classicBurger()
	s := NewSelection(p)

	noOnion, _ := p.Option("o1")
	small, _ := p.Option("o3")
	large, _ := p.Option("o2")

	s.Toggle(noOnion)
	s.Toggle(small)
	s.Toggle(large)

	assert.True(t, s.IsSelected("o1"), "optional selection must survive required-group swaps")
	assert.True(t, s.IsSelected("o2"))
	assert.False(t, s.IsSelected("o3"))
}

func TestToggleOptionalIsIndependentAndReversible(t *testing.T) {
	p := classicBurger()
	s := NewSelection(p)

	noOnion, _ := p.Option("o1")
	large, _ := p.Option("o2")

	s.Toggle(large)
	s.Toggle(noOnion)
	assert.True(t, s.IsSelected("o1"))
	assert.True(t, s.IsSelected("o2"), "optional toggle must not touch required state")

	s.Toggle(noOnion)
	assert.False(t, s.IsSelected("o1"), "toggling twice restores the original state")
	assert.True(t, s.IsSelected("o2"))
}

func TestKeypadRules(t *testing.T) {
	s := NewSelection(classicBurger())
	assert.Equal(t, "0", s.QuantityBuffer())

	// Leading zero is replaced, not prefixed.
	s.Press('3')
	assert.Equal(t, "3", s.QuantityBuffer())

	// Capped at two digits.
	s.Press('7')
	s.Press('9')
	assert.Equal(t, "37", s.QuantityBuffer())

	s.Backspace()
	assert.Equal(t, "3", s.QuantityBuffer())
	s.Backspace()
	assert.Equal(t, "0", s.QuantityBuffer(), "backspace floors at zero")

	s.Press('4')
	s.Press('2')
	s.ClearQuantity()
	assert.Equal(t, "0", s.QuantityBuffer())

	// Non-digits are ignored.
	s.Press('x')
	assert.Equal(t, "0", s.QuantityBuffer())
}

func TestConfirmScenarioClassicBurger(t *testing.T) {
	p := classicBurger()
	s := NewSelection(p)

	small, _ := p.Option("o3")
	large, _ := p.Option("o2")
	s.Toggle(small)
	s.Toggle(large)
	s.Press('3')

	line, err := s.Confirm()
	require.NoError(t, err)

	assert.Equal(t, 150.0, line.UnitPrice)
	assert.Equal(t, 3, line.Quantity)
	assert.Equal(t, 450.0, line.Subtotal())
	assert.Equal(t, []string{"o2"}, line.OptionIDs)
	assert.NotEmpty(t, line.ID)
}

func TestConfirmAtZeroQuantityPreservesSelection(t *testing.T) {
	p := classicBurger()
	s := NewSelection(p)

	noOnion, _ := p.Option("o1")
	s.Toggle(noOnion)

	_, err := s.Confirm()
	require.ErrorIs(t, err, ErrZeroQuantity)

	assert.True(t, s.IsSelected("o1"), "selection must stay intact for correction")
	assert.Equal(t, "0", s.QuantityBuffer())
}

func TestConfirmFiltersStaleOptionIDs(t *testing.T) {
	p := classicBurger()
	s := NewSelection(p)

	large, _ := p.Option("o2")
	s.Toggle(large)
	s.Toggle(ProductOption{ID: "gone", Name: "Removed", PriceDelta: 99})
	s.Press('1')

	line, err := s.Confirm()
	require.NoError(t, err)

	assert.Equal(t, 150.0, line.UnitPrice, "stale option must not affect the price")
	assert.Equal(t, []string{"o2"}, line.OptionIDs)
}

func TestUnitPricePreview(t *testing.T) {
	p := classicBurger()
	s := NewSelection(p)
	assert.Equal(t, 120.0, s.UnitPrice())

	large, _ := p.Option("o2")
	s.Toggle(large)
	assert.Equal(t, 150.0, s.UnitPrice())
}
