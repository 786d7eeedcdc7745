package models

// Delivery represents a saved day in the database.
// delivery_date is unique: one row per calendar day.
type Delivery struct {
	ID           string `json:"id"`
	DeliveryDate string `json:"deliveryDate"` // YYYY-MM-DD
	IsClosed     bool   `json:"isClosed"`
	Notes        string `json:"notes"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`
}

// DeliveryItem represents one received quantity for a product on a
// delivery. Only real products get items; category-total rows never do.
type DeliveryItem struct {
	DeliveryID  string `json:"deliveryId"`
	ProductID   string `json:"productId"`
	ReceivedQty int    `json:"receivedQty"`
}

// SaveDayRequest represents the request body for saving a day
// Example: {"isClosed": false, "notes": "Festa del paese", "quantities": {"5b9f...": 12}}
type SaveDayRequest struct {
	IsClosed   bool           `json:"isClosed"`
	Notes      string         `json:"notes"`
	Quantities map[string]int `json:"quantities"`
}

// DayResponse represents the response for a single day: the editable
// draft plus its derived KPIs.
// Example response:
// {
//   "date": "2026-03-14",
//   "weekday": 6,
//   "status": "saved",
//   "isClosed": false,
//   "notes": "",
//   "quantities": {"5b9f...": 12},
//   "totalPieces": 12,
//   "totalCents": 1800,
//   "totalFormatted": "€ 18,00",
//   "categoryTotals": {"Farcite": 8}
// }
type DayResponse struct {
	Date           string         `json:"date"`
	Weekday        int            `json:"weekday"`
	Status         string         `json:"status"`
	IsClosed       bool           `json:"isClosed"`
	Notes          string         `json:"notes"`
	Quantities     map[string]int `json:"quantities"`
	TotalPieces    int            `json:"totalPieces"`
	TotalCents     int64          `json:"totalCents"`
	TotalFormatted string         `json:"totalFormatted"`
	CategoryTotals map[string]int `json:"categoryTotals"`
}

// MonthDayRow represents one day's row in a month response.
type MonthDayRow struct {
	Date         string `json:"date"`
	WeekdayLabel string `json:"weekdayLabel"`
	Status       string `json:"status"`
	Pieces       int    `json:"pieces"`
	ValueCents   int64  `json:"valueCents"`
}

// MonthResponse represents the response for a month rollup
// Example response:
// {
//   "year": 2026,
//   "month": 3,
//   "label": "marzo 2026",
//   "rows": [{"date": "2026-03-01", "weekdayLabel": "Dom 1", "status": "preset", "pieces": 42, "valueCents": 6300}],
//   "summary": {"openDays": 30, "closedDays": 1, "totalPieces": 1260, "totalCents": 189000, "avgPieces": 42.0}
// }
type MonthResponse struct {
	Year    int           `json:"year"`
	Month   int           `json:"month"`
	Label   string        `json:"label"`
	Rows    []MonthDayRow `json:"rows"`
	Summary MonthSummary  `json:"summary"`
}

// MonthSummary holds month-level aggregates derived from the day rows.
type MonthSummary struct {
	OpenDays    int     `json:"openDays"`
	ClosedDays  int     `json:"closedDays"`
	TotalPieces int     `json:"totalPieces"`
	TotalCents  int64   `json:"totalCents"`
	AvgPieces   float64 `json:"avgPieces"`
}
