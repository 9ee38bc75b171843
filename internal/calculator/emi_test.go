package calculator

import (
	"math"
	"testing"
)

func TestMonthlyInstallment(t *testing.T) {
	tests := []struct {
		name          string
		principal     float64
		annualRate    float64
		tenureYears   int
		expectedRange []float64 // [min, max] expected range
	}{
		{
			name:          "Project bank loan",
			principal:     10000000,
			annualRate:    10.0,
			tenureYears:   4,
			expectedRange: []float64{253500, 254000}, // Around 253,646
		},
		{
			name:          "Premium-loaded remainder",
			principal:     8000000,
			annualRate:    12.5,
			tenureYears:   4,
			expectedRange: []float64{212000, 213500}, // Around 212,640
		},
		{
			name:          "Small personal loan",
			principal:     500000,
			annualRate:    9.0,
			tenureYears:   5,
			expectedRange: []float64{10300, 10500}, // Around 10,379
		},
		{
			name:          "Zero principal",
			principal:     0,
			annualRate:    10.0,
			tenureYears:   4,
			expectedRange: []float64{0, 0},
		},
		{
			name:          "High interest loan",
			principal:     100000,
			annualRate:    24.0,
			tenureYears:   2,
			expectedRange: []float64{5250, 5350}, // Around 5,287
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MonthlyInstallment(tt.principal, tt.annualRate, tt.tenureYears)

			if result < tt.expectedRange[0] || result > tt.expectedRange[1] {
				t.Errorf("MonthlyInstallment() = %.2f, expected range [%.2f, %.2f]",
					result, tt.expectedRange[0], tt.expectedRange[1])
			}
			if result < 0 {
				t.Errorf("MonthlyInstallment() = %.2f, must never be negative", result)
			}
		})
	}
}

func TestMonthlyInstallmentZeroRate(t *testing.T) {
	tests := []struct {
		name        string
		principal   float64
		tenureYears int
		expected    float64
	}{
		{
			name:        "Even division",
			principal:   12000,
			tenureYears: 5,
			expected:    200.0, // 12000 / 60
		},
		{
			name:        "One year tenure",
			principal:   1200,
			tenureYears: 1,
			expected:    100.0,
		},
		{
			name:        "Large principal",
			principal:   9600000,
			tenureYears: 4,
			expected:    200000.0, // 9600000 / 48
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MonthlyInstallment(tt.principal, 0, tt.tenureYears)

			if result != tt.expected {
				t.Errorf("MonthlyInstallment(rate=0) = %.2f, expected exactly %.2f", result, tt.expected)
			}
		})
	}
}

func TestInstallmentFactor(t *testing.T) {
	// Zero rate degenerates to 1/n.
	factor := InstallmentFactor(0, 4)
	if math.Abs(factor-1.0/48.0) > 1e-12 {
		t.Errorf("InstallmentFactor(0, 4) = %v, expected 1/48", factor)
	}

	// A positive rate always costs more per unit principal than 1/n.
	factor = InstallmentFactor(10, 4)
	if factor <= 1.0/48.0 {
		t.Errorf("InstallmentFactor(10, 4) = %v, expected > 1/48", factor)
	}
}
