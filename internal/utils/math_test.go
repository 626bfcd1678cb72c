package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundHalfUp(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected float64
	}{
		{"positive half rounds up", 2.5, 3},
		{"negative half rounds toward zero", -2.5, -2},
		{"below half rounds down", 42.49, 42},
		{"above half rounds up", 42.7, 43},
		{"integer unchanged", 35, 35},
		{"zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RoundHalfUp(tt.value))
		})
	}
}

func TestRoundTo(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		places   int
		expected float64
	}{
		{"two places", 1.2345, 2, 1.23},
		{"two places rounds up", 1.236, 2, 1.24},
		{"zero places", 7.5, 0, 8},
		{"already rounded", 1.5, 2, 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, RoundTo(tt.value, tt.places), 1e-9)
		})
	}
}

func TestClampMax(t *testing.T) {
	assert.Equal(t, 1.0, ClampMax(1.7, 1))
	assert.Equal(t, 0.4, ClampMax(0.4, 1))
	assert.Equal(t, -0.3, ClampMax(-0.3, 1))
}
