package compute

import (
	"math"
	"time"

	"brioche-tracker/models"
	"brioche-tracker/utils"
)

// Day status classification for month rollups.
const (
	StatusPreset = "preset" // no saved delivery, quantities from weekly preset
	StatusSaved  = "saved"  // delivery saved and the day is open
	StatusClosed = "closed" // delivery saved with the closed flag set
)

// StatusLabel returns the Italian display label used in reports.
func StatusLabel(status string) string {
	switch status {
	case StatusSaved:
		return "Salvato"
	case StatusClosed:
		return "Chiuso"
	default:
		return "Preset"
	}
}

// DayRow is one day's summary in a month rollup.
type DayRow struct {
	Date         string
	WeekdayLabel string
	Status       string
	Pieces       int
	ValueCents   int64
}

// MonthInput carries the immutable snapshot a month rollup reads from.
// Maps are keyed by ISO date (YYYY-MM-DD); WeeklyByWeekday by ISO weekday.
type MonthInput struct {
	Products         []models.Product
	DeliveriesByDate map[string]models.Delivery
	ItemsByDate      map[string]map[string]int
	WeeklyByWeekday  map[int]map[string]int
	PricesByID       map[string]int64
}

// DayStatusFor classifies a single date and computes its pieces/value.
// A closed day always reports 0 pieces and 0 cents: its historical
// quantities are never surfaced in rollups.
func DayStatusFor(iso string, weekday int, in MonthInput) (string, int, int64) {
	if del, ok := in.DeliveriesByDate[iso]; ok {
		if del.IsClosed {
			return StatusClosed, 0, 0
		}
		recv := quantitiesFromSource(in.Products, in.ItemsByDate[iso])
		return StatusSaved, TotalPieces(recv), TotalValueCents(recv, in.PricesByID)
	}

	exp := quantitiesFromSource(in.Products, in.WeeklyByWeekday[weekday])
	return StatusPreset, TotalPieces(exp), TotalValueCents(exp, in.PricesByID)
}

// MonthRows computes one DayRow per calendar day of the month, in date
// order. Pure function of the snapshot: calling again with the same
// inputs reproduces the same rows.
func MonthRows(year int, month time.Month, in MonthInput) []DayRow {
	days := utils.DaysInMonth(year, month)
	rows := make([]DayRow, 0, days)

	for day := 1; day <= days; day++ {
		dt := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		iso := utils.FormatISODate(dt)
		weekday := utils.WeekdayISO(dt)

		status, pieces, cents := DayStatusFor(iso, weekday, in)
		rows = append(rows, DayRow{
			Date:         iso,
			WeekdayLabel: utils.DayRowLabel(dt),
			Status:       status,
			Pieces:       pieces,
			ValueCents:   cents,
		})
	}

	return rows
}

// SummarizeMonth derives month-level aggregates from a row sequence. When
// excludeClosed is set, closed rows are left out of the piece and value
// sums (they contribute 0 anyway, but the flag lets callers drop them from
// averages-adjacent sums explicitly). Average pieces per open day is
// rounded to one decimal and is 0 when the month has no open days.
func SummarizeMonth(rows []DayRow, excludeClosed bool) models.MonthSummary {
	var s models.MonthSummary

	for _, r := range rows {
		if r.Status == StatusClosed {
			s.ClosedDays++
			if excludeClosed {
				continue
			}
		} else {
			s.OpenDays++
		}
		s.TotalPieces += r.Pieces
		s.TotalCents += r.ValueCents
	}

	if s.OpenDays > 0 {
		s.AvgPieces = math.Round(float64(s.TotalPieces)/float64(s.OpenDays)*10) / 10
	}

	return s
}
