package controller

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"brioche-tracker/models"
	"brioche-tracker/service"
)

// DayController handles HTTP requests for single-day drafts
type DayController struct {
	days service.DayServiceInterface
}

// NewDayController creates a new DayController
func NewDayController(days service.DayServiceInterface) *DayController {
	return &DayController{days: days}
}

// datePart extracts the YYYY-MM-DD segment from /api/days/{date}[/action].
func datePart(path string) (date string, action string) {
	trimmed := strings.TrimPrefix(path, "/api/days/")
	parts := strings.SplitN(trimmed, "/", 2)
	date = parts[0]
	if len(parts) == 2 {
		action = parts[1]
	}
	return date, action
}

// Handle routes /api/days/{date} and its action sub-paths.
func (c *DayController) Handle(w http.ResponseWriter, r *http.Request) {
	date, action := datePart(r.URL.Path)
	if date == "" {
		http.Error(w, "date parameter is required", http.StatusBadRequest)
		return
	}

	switch {
	case action == "" && r.Method == http.MethodGet:
		c.getDay(w, r, date)
	case action == "" && r.Method == http.MethodPut:
		c.saveDay(w, r, date)
	case action == "close" && r.Method == http.MethodPost:
		c.closeDay(w, r, date)
	case action == "reopen" && r.Method == http.MethodPost:
		c.reopenDay(w, r, date)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// getDay handles GET /api/days/{date}
// Example response:
// {
//   "date": "2026-03-14",
//   "weekday": 6,
//   "status": "preset",
//   "isClosed": false,
//   "notes": "",
//   "quantities": {"5b9f...": 10},
//   "totalPieces": 10,
//   "totalCents": 1500,
//   "totalFormatted": "€ 15,00",
//   "categoryTotals": {"Farcite": 6}
// }
func (c *DayController) getDay(w http.ResponseWriter, r *http.Request, date string) {
	day, err := c.days.LoadDay(r.Context(), date)
	if err != nil {
		log.Printf("❌ getDay: Error loading day %s: %v", date, err)
		writeDayError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(day)
}

// saveDay handles PUT /api/days/{date}
// Example request: {"isClosed": false, "notes": "", "quantities": {"5b9f...": 12}}
func (c *DayController) saveDay(w http.ResponseWriter, r *http.Request, date string) {
	var req models.SaveDayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ saveDay: Failed to decode request body: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	day, err := c.days.SaveDay(r.Context(), date, &req)
	if err != nil {
		log.Printf("❌ saveDay: Error saving day %s: %v", date, err)
		writeDayError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(day)
}

// closeDay handles POST /api/days/{date}/close — zeroes quantities,
// keeps notes, persists.
func (c *DayController) closeDay(w http.ResponseWriter, r *http.Request, date string) {
	day, err := c.days.CloseDay(r.Context(), date)
	if err != nil {
		log.Printf("❌ closeDay: Error closing day %s: %v", date, err)
		writeDayError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(day)
}

// reopenDay handles POST /api/days/{date}/reopen — reseeds from the
// weekday preset, discarding prior edits and notes.
func (c *DayController) reopenDay(w http.ResponseWriter, r *http.Request, date string) {
	day, err := c.days.ReopenDay(r.Context(), date)
	if err != nil {
		log.Printf("❌ reopenDay: Error reopening day %s: %v", date, err)
		writeDayError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(day)
}

// writeDayError maps service errors to HTTP statuses: bad dates are client
// errors, everything else is a backend load/save failure the client should
// surface as an explicit error state.
func writeDayError(w http.ResponseWriter, err error) {
	if strings.Contains(err.Error(), "invalid date") {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	http.Error(w, "backend unavailable", http.StatusBadGateway)
}
