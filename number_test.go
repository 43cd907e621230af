package main

import (
	"errors"
	"math"
	"testing"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		input string
		want  float64
		ok    bool
	}{
		// Plain numbers
		{"50", 50, true},
		{"0.25", 0.25, true},
		{"-3", -3, true},
		{".5", 0.5, true},
		{"7.", 7, true},
		{" 42 ", 42, true},

		// Invalid
		{"", 0, false},
		{"sin(30", 0, false},
		{"2+3", 0, false},
		{"1.2.3", 0, false},
		{"Inf", 0, false},
		{"NaN", 0, false},
		{"1e5", 0, false},
		{"π", 0, false},
	}

	for _, tt := range tests {
		got, err := parseNumber(tt.input)
		if (err == nil) != tt.ok {
			t.Errorf("parseNumber(%q): err=%v, want ok=%v", tt.input, err, tt.ok)
			continue
		}
		if err != nil {
			if !errors.Is(err, ErrNotANumber) {
				t.Errorf("parseNumber(%q): err=%v, want ErrNotANumber", tt.input, err)
			}
			continue
		}
		if math.Abs(got-tt.want) > 1e-10 {
			t.Errorf("parseNumber(%q) = %g, want %g", tt.input, got, tt.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		input float64
		want  string
	}{
		{14, "14"},
		{-1, "-1"},
		{0.5, "0.5"},
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{0.1 + 0.2, "0.30000000000000004"},
		{120, "120"},
		{1e21, "1e+21"},
		{2.5e25, "2.5e+25"},
		{1.5e-7, "1.5e-7"},
		{0.000001, "0.000001"},
		{123456789012, "123456789012"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
		{math.NaN(), "NaN"},
	}

	for _, tt := range tests {
		got := formatNumber(tt.input)
		if got != tt.want {
			t.Errorf("formatNumber(%g) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFormatPlain(t *testing.T) {
	tests := []struct {
		input float64
		want  string
	}{
		{0.5, "0.5"},
		{0, "0"},
		{1e21, "1000000000000000000000"},
		{2432902008176640000, "2432902008176640000"},
		{1.5e-7, "0.00000015"},
	}

	for _, tt := range tests {
		got := formatPlain(tt.input)
		if got != tt.want {
			t.Errorf("formatPlain(%g) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFactorial(t *testing.T) {
	tests := []struct {
		n    int
		want float64
	}{
		{0, 1},
		{1, 1},
		{5, 120},
		{10, 3628800},
		{20, 2432902008176640000},
	}

	for _, tt := range tests {
		if got := factorial(tt.n); got != tt.want {
			t.Errorf("factorial(%d) = %g, want %g", tt.n, got, tt.want)
		}
	}
	if math.IsInf(factorial(maxFactorial), 0) {
		t.Errorf("factorial(%d) should be finite", maxFactorial)
	}
	if !math.IsInf(factorial(maxFactorial+1), 1) {
		t.Errorf("factorial(%d) should overflow", maxFactorial+1)
	}
}
