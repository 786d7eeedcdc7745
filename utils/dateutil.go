package utils

import (
	"fmt"
	"time"
)

// ISODateFormat is the date layout used everywhere in the DB and the API.
const ISODateFormat = "2006-01-02"

var weekdayLabels = [8]string{"", "Lun", "Mar", "Mer", "Gio", "Ven", "Sab", "Dom"}

var monthLabels = [13]string{"", "gennaio", "febbraio", "marzo", "aprile",
	"maggio", "giugno", "luglio", "agosto", "settembre", "ottobre",
	"novembre", "dicembre"}

// DaysInMonth returns the number of calendar days in the given month
// (month is 1..12).
func DaysInMonth(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// WeekdayISO returns the ISO weekday: 1=Monday .. 7=Sunday.
func WeekdayISO(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// FormatISODate formats a time as YYYY-MM-DD.
func FormatISODate(t time.Time) string {
	return t.Format(ISODateFormat)
}

// ParseISODate parses a YYYY-MM-DD string.
func ParseISODate(s string) (time.Time, error) {
	return time.Parse(ISODateFormat, s)
}

// DayRowLabel formats a date for a day-list row, e.g. "Lun 12".
func DayRowLabel(t time.Time) string {
	return fmt.Sprintf("%s %d", weekdayLabels[WeekdayISO(t)], t.Day())
}

// MonthLabel formats a month header, e.g. "marzo 2026".
func MonthLabel(year int, month time.Month) string {
	return fmt.Sprintf("%s %d", monthLabels[int(month)], year)
}
