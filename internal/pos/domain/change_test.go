package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateChange(t *testing.T) {
	tests := []struct {
		name     string
		received string
		total    float64
		want     Change
	}{
		{"sufficient payment", "500", 450, Change{Amount: 50}},
		{"exact payment", "450", 450, Change{Amount: 0}},
		{"insufficient payment", "400", 450, Change{Amount: -50, Insufficient: true}},
		{"empty input stays neutral", "", 450, Change{Neutral: true}},
		{"garbage input stays neutral", "abc", 450, Change{Neutral: true}},
		{"empty cart stays neutral even with cash entered", "500", 0, Change{Neutral: true}},
		{"whitespace tolerated", " 500 ", 450, Change{Amount: 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateChange(tt.received, tt.total))
		})
	}
}
