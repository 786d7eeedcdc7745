package utils

import "testing"

func TestFormatEuro(t *testing.T) {
	tests := []struct {
		name  string
		cents int64
		want  string
	}{
		{"zero", 0, "€ 0,00"},
		{"cents only", 30, "€ 0,30"},
		{"simple amount", 1230, "€ 12,30"},
		{"thousands separator", 123456, "€ 1.234,56"},
		{"millions", 123456789, "€ 1.234.567,89"},
		{"exactly one thousand", 100000, "€ 1.000,00"},
		{"negative", -1230, "-€ 12,30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatEuro(tt.cents); got != tt.want {
				t.Errorf("FormatEuro(%d) = %q, want %q", tt.cents, got, tt.want)
			}
		})
	}
}

func TestEuroString(t *testing.T) {
	tests := []struct {
		cents int64
		want  string
	}{
		{0, "0,00"},
		{1230, "12,30"},
		{650, "6,50"},
		{123456, "1234,56"},
	}

	for _, tt := range tests {
		if got := EuroString(tt.cents); got != tt.want {
			t.Errorf("EuroString(%d) = %q, want %q", tt.cents, got, tt.want)
		}
	}
}
