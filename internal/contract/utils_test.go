package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetTrendMarker(t *testing.T) {
	tests := []struct {
		name     string
		delta    float64
		expected string
	}{
		{name: "strong growth", delta: 500, expected: "↑"},
		{name: "strong decline", delta: -500, expected: "↓"},
		{name: "below threshold", delta: 50, expected: ""},
		{name: "negative below threshold", delta: -50, expected: ""},
		{name: "exactly threshold", delta: 100, expected: ""},
		{name: "zero", delta: 0, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetTrendMarker(tt.delta))
		})
	}
}

func TestGetColorTrendMarker(t *testing.T) {
	// Colored output still carries the marker glyph.
	assert.Contains(t, GetColorTrendMarker(500), "↑")
	assert.Contains(t, GetColorTrendMarker(-500), "↓")
	assert.Empty(t, GetColorTrendMarker(0))
}
