package mathutil

import "testing"

func TestRound(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{name: "Round down", input: 1.234, expected: 1.23},
		{name: "Round up", input: 1.236, expected: 1.24},
		{name: "Negative", input: -1.004, expected: -1.0},
		{name: "Already two decimals", input: 99.99, expected: 99.99},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Round(tt.input); got != tt.expected {
				t.Errorf("Round(%v) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestWithinTolerance(t *testing.T) {
	if !WithinTolerance(1.0, 1.005, 0.01) {
		t.Error("expected 1.0 and 1.005 within 0.01")
	}
	if WithinTolerance(1.0, 1.02, 0.01) {
		t.Error("expected 1.0 and 1.02 outside 0.01")
	}
}

func TestCalculatePercentage(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		total    float64
		expected float64
	}{
		{name: "Half", value: 50, total: 100, expected: 50},
		{name: "Over total", value: 150, total: 100, expected: 150},
		{name: "Zero total", value: 50, total: 0, expected: 0},
		{name: "Zero value", value: 0, total: 100, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalculatePercentage(tt.value, tt.total); got != tt.expected {
				t.Errorf("CalculatePercentage(%v, %v) = %v, expected %v",
					tt.value, tt.total, got, tt.expected)
			}
		})
	}
}
