package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuote(t *testing.T) {
	tests := []struct {
		name     string
		rate     int64
		hours    float64
		expected Breakdown
	}{
		{"rate 400 for 1.5h", 400, 1.5, Breakdown{Subtotal: 600, Fee: 48, Total: 648}},
		{"rate 300 for 2h", 300, 2, Breakdown{Subtotal: 600, Fee: 48, Total: 648}},
		{"single hour", 250, 1, Breakdown{Subtotal: 250, Fee: 20, Total: 270}},
		// 333 * 1.5 = 499.5 rounds up to 500; fee 40 from the rounded subtotal.
		{"half-up on subtotal", 333, 1.5, Breakdown{Subtotal: 500, Fee: 40, Total: 540}},
		// subtotal 475; raw fee 38.0 stays 38.
		{"exact fee", 475, 1, Breakdown{Subtotal: 475, Fee: 38, Total: 513}},
		// subtotal 131; raw fee 10.48 rounds down to 10.
		{"fee rounds down", 131, 1, Breakdown{Subtotal: 131, Fee: 10, Total: 141}},
		// subtotal 144; raw fee 11.52 rounds up to 12.
		{"fee rounds up", 144, 1, Breakdown{Subtotal: 144, Fee: 12, Total: 156}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Quote(tt.rate, tt.hours)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, got.Subtotal+got.Fee, got.Total)
		})
	}
}

func TestMinorUnits(t *testing.T) {
	assert.Equal(t, int64(64800), MinorUnits(648))
	assert.Equal(t, int64(0), MinorUnits(0))
}
