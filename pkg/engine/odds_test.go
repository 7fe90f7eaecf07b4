package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestRoundOdds tests the display rounding table
func TestRoundOdds(t *testing.T) {
	tests := []struct {
		name     string
		raw      float64
		expected float64
	}{
		{"clamped to minimum", 1.05, 1.1},
		{"short odds one decimal", 1.73, 1.7},
		{"short odds boundary", 1.96, 2.0},
		{"mid odds two decimals", 4.567, 4.57},
		{"mid odds lower bound", 2.004, 2.0},
		{"long odds one decimal", 15.2, 15.2},
		{"long odds rounded", 12.345, 12.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, RoundOdds(tt.raw), 1e-9)
		})
	}
}
