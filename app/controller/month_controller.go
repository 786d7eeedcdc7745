package controller

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"brioche-tracker/service"
)

// MonthController handles HTTP requests for month rollups and exports
type MonthController struct {
	days    service.DayServiceInterface
	reports service.ReportServiceInterface
}

// NewMonthController creates a new MonthController
func NewMonthController(days service.DayServiceInterface, reports service.ReportServiceInterface) *MonthController {
	return &MonthController{days: days, reports: reports}
}

// monthPath parses /api/months/{year}/{month}[/action].
func monthPath(path string) (year int, month time.Month, action string, err error) {
	trimmed := strings.TrimPrefix(path, "/api/months/")
	parts := strings.SplitN(trimmed, "/", 3)
	if len(parts) < 2 {
		return 0, 0, "", fmt.Errorf("expected /api/months/{year}/{month}")
	}

	year, err = strconv.Atoi(parts[0])
	if err != nil || year < 2000 || year > 2200 {
		return 0, 0, "", fmt.Errorf("invalid year %q", parts[0])
	}

	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 1 || m > 12 {
		return 0, 0, "", fmt.Errorf("invalid month %q", parts[1])
	}

	if len(parts) == 3 {
		action = parts[2]
	}
	return year, time.Month(m), action, nil
}

// Handle routes /api/months/{year}/{month} and its export sub-paths.
func (c *MonthController) Handle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	year, month, action, err := monthPath(r.URL.Path)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	switch action {
	case "":
		c.getMonth(w, r, year, month)
	case "export.csv":
		c.exportCSV(w, r, year, month)
	case "render":
		c.renderHTML(w, r, year, month)
	case "export.pdf":
		c.exportPDF(w, r, year, month)
	default:
		http.Error(w, "Not found", http.StatusNotFound)
	}
}

// getMonth handles GET /api/months/{year}/{month}?excludeClosed=true
func (c *MonthController) getMonth(w http.ResponseWriter, r *http.Request, year int, month time.Month) {
	excludeClosed := r.URL.Query().Get("excludeClosed") == "true"

	resp, err := c.days.LoadMonth(r.Context(), year, month, excludeClosed)
	if err != nil {
		log.Printf("❌ getMonth: Error loading month %d-%02d: %v", year, int(month), err)
		http.Error(w, "backend unavailable", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// exportCSV handles GET /api/months/{year}/{month}/export.csv
func (c *MonthController) exportCSV(w http.ResponseWriter, r *http.Request, year int, month time.Month) {
	rows, _, err := c.days.MonthReportData(r.Context(), year, month)
	if err != nil {
		log.Printf("❌ exportCSV: Error loading month %d-%02d: %v", year, int(month), err)
		http.Error(w, "backend unavailable", http.StatusBadGateway)
		return
	}

	filename, csvText, err := c.reports.BuildMonthCSV(year, month, rows)
	if err != nil {
		log.Printf("❌ exportCSV: Error building CSV: %v", err)
		http.Error(w, "failed to build csv", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Write([]byte(csvText))
}

// renderHTML handles GET /api/months/{year}/{month}/render — the
// printable report page the PDF exporter loads in headless Chrome.
func (c *MonthController) renderHTML(w http.ResponseWriter, r *http.Request, year int, month time.Month) {
	rows, summary, err := c.days.MonthReportData(r.Context(), year, month)
	if err != nil {
		log.Printf("❌ renderHTML: Error loading month %d-%02d: %v", year, int(month), err)
		http.Error(w, "backend unavailable", http.StatusBadGateway)
		return
	}

	html, err := c.reports.RenderMonthHTML(year, month, rows, summary)
	if err != nil {
		log.Printf("❌ renderHTML: Error rendering report: %v", err)
		http.Error(w, "failed to render report", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(html))
}

// exportPDF handles GET /api/months/{year}/{month}/export.pdf
func (c *MonthController) exportPDF(w http.ResponseWriter, r *http.Request, year int, month time.Month) {
	token := bearerToken(r)

	pdf, err := c.reports.GeneratePDF(r.Context(), year, month, token)
	if err != nil {
		log.Printf("❌ exportPDF: Error generating PDF for %d-%02d: %v", year, int(month), err)
		http.Error(w, "failed to generate pdf", http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("brioche-%d-%02d.pdf", year, int(month))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Write(pdf)
}

// bearerToken extracts the session token from the Authorization header or
// the token query parameter.
func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return r.URL.Query().Get("token")
}
