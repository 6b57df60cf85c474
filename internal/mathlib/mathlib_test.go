package mathlib

import "testing"

func TestAdd(t *testing.T) {
	tests := []struct {
		name     string
		a, b     int
		expected int
	}{
		{name: "positive numbers", a: 5, b: 5, expected: 10},
		{name: "negative numbers", a: -5, b: -5, expected: -10},
		{name: "mixed signs", a: 5, b: -5, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Add(tt.a, tt.b); got != tt.expected {
				t.Errorf("Add(%d, %d) = %d, expected %d", tt.a, tt.b, got, tt.expected)
			}
		})
	}
}

func TestSubtract(t *testing.T) {
	tests := []struct {
		name     string
		a, b     int
		expected int
	}{
		{name: "positive result", a: 10, b: 5, expected: 5},
		{name: "negative result", a: 5, b: 10, expected: -5},
		{name: "zero result", a: 5, b: 5, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Subtract(tt.a, tt.b); got != tt.expected {
				t.Errorf("Subtract(%d, %d) = %d, expected %d", tt.a, tt.b, got, tt.expected)
			}
		})
	}
}

func TestDivide(t *testing.T) {
	tests := []struct {
		name     string
		a, b     int
		expected int
	}{
		{name: "even division", a: 10, b: 5, expected: 2},
		{name: "truncates toward zero", a: 3, b: 2, expected: 1},
		{name: "negative dividend", a: -10, b: 5, expected: -2},
		{name: "negative truncation", a: -3, b: 2, expected: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Divide(tt.a, tt.b); got != tt.expected {
				t.Errorf("Divide(%d, %d) = %d, expected %d", tt.a, tt.b, got, tt.expected)
			}
		})
	}
}
