package service

import (
	"strings"
	"testing"
	"time"

	"brioche-tracker/compute"
)

func TestBuildMonthCSV(t *testing.T) {
	s := NewReportService("http://localhost:8080")

	rows := []compute.DayRow{
		{Date: "2026-03-01", WeekdayLabel: "Dom 1", Status: compute.StatusPreset, Pieces: 5, ValueCents: 750},
		{Date: "2026-03-02", WeekdayLabel: "Lun 2", Status: compute.StatusSaved, Pieces: 8, ValueCents: 1200},
		{Date: "2026-03-03", WeekdayLabel: "Mar 3", Status: compute.StatusClosed, Pieces: 0, ValueCents: 0},
	}

	filename, csvText, err := s.BuildMonthCSV(2026, time.March, rows)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if filename != "brioche-2026-03.csv" {
		t.Errorf("Expected filename brioche-2026-03.csv, got %s", filename)
	}

	lines := strings.Split(strings.TrimSpace(csvText), "\n")
	if len(lines) != 4 {
		t.Fatalf("Expected header + 3 rows, got %d lines", len(lines))
	}

	if lines[0] != "Data,Stato,Pezzi,Euro" {
		t.Errorf("Unexpected header: %q", lines[0])
	}
	if lines[1] != `2026-03-01,Preset,5,"7,50"` {
		t.Errorf("Unexpected preset row: %q", lines[1])
	}
	if lines[2] != `2026-03-02,Salvato,8,"12,00"` {
		t.Errorf("Unexpected saved row: %q", lines[2])
	}
	if lines[3] != `2026-03-03,Chiuso,0,"0,00"` {
		t.Errorf("Unexpected closed row: %q", lines[3])
	}
}

func TestBuildMonthCSVEmptyMonth(t *testing.T) {
	s := NewReportService("http://localhost:8080")

	_, csvText, err := s.BuildMonthCSV(2026, time.January, nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if strings.TrimSpace(csvText) != "Data,Stato,Pezzi,Euro" {
		t.Errorf("Expected header only, got %q", csvText)
	}
}
