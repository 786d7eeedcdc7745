package utils

import (
	"testing"
	"time"
)

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2026, time.February, 28},
		{2024, time.February, 29},
		{2026, time.April, 30},
		{2026, time.December, 31},
		{2026, time.January, 31},
	}

	for _, tt := range tests {
		if got := DaysInMonth(tt.year, tt.month); got != tt.want {
			t.Errorf("DaysInMonth(%d, %v) = %d, want %d", tt.year, tt.month, got, tt.want)
		}
	}
}

func TestWeekdayISO(t *testing.T) {
	// 2026-02-02 is a Monday, 2026-02-01 a Sunday.
	monday := time.Date(2026, time.February, 2, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)

	if got := WeekdayISO(monday); got != 1 {
		t.Errorf("Expected Monday = 1, got %d", got)
	}
	if got := WeekdayISO(sunday); got != 7 {
		t.Errorf("Expected Sunday = 7, got %d", got)
	}
}

func TestISODateRoundTrip(t *testing.T) {
	dt := time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC)
	iso := FormatISODate(dt)
	if iso != "2026-03-14" {
		t.Fatalf("Expected 2026-03-14, got %s", iso)
	}

	parsed, err := ParseISODate(iso)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !parsed.Equal(dt) {
		t.Errorf("Round trip mismatch: %v vs %v", parsed, dt)
	}
}

func TestDayRowLabel(t *testing.T) {
	monday := time.Date(2026, time.February, 2, 0, 0, 0, 0, time.UTC)
	if got := DayRowLabel(monday); got != "Lun 2" {
		t.Errorf("Expected 'Lun 2', got %q", got)
	}
}

func TestMonthLabel(t *testing.T) {
	if got := MonthLabel(2026, time.March); got != "marzo 2026" {
		t.Errorf("Expected 'marzo 2026', got %q", got)
	}
}
