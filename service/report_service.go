package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"html/template"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"brioche-tracker/compute"
	"brioche-tracker/models"
	"brioche-tracker/utils"
)

// ReportService builds month report exports: CSV, printable HTML, and PDF
// rendered through headless Chrome.
type ReportService struct {
	baseURL string // Base URL for the render endpoint (e.g., "http://localhost:8080")
}

// NewReportService creates a new ReportService
func NewReportService(baseURL string) *ReportService {
	return &ReportService{baseURL: baseURL}
}

// Ensure ReportService implements ReportServiceInterface
var _ ReportServiceInterface = (*ReportService)(nil)

// detectChromePath detects the path to Chrome/Chromium executable.
// Checks CHROME_PATH env var first, then common installation paths.
func detectChromePath() string {
	if chromePath := os.Getenv("CHROME_PATH"); chromePath != "" {
		if _, err := os.Stat(chromePath); err == nil {
			return chromePath
		}
	}

	paths := []string{
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/snap/bin/chromium",
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// BuildMonthCSV renders the month rows as CSV with the columns
// Data, Stato, Pezzi, Euro (comma decimal separator for euro values).
func (s *ReportService) BuildMonthCSV(year int, month time.Month, rows []compute.DayRow) (string, string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"Data", "Stato", "Pezzi", "Euro"}); err != nil {
		return "", "", fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, r := range rows {
		record := []string{
			r.Date,
			compute.StatusLabel(r.Status),
			strconv.Itoa(r.Pieces),
			utils.EuroString(r.ValueCents),
		}
		if err := w.Write(record); err != nil {
			return "", "", fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", "", fmt.Errorf("failed to flush csv: %w", err)
	}

	filename := fmt.Sprintf("brioche-%d-%02d.csv", year, int(month))
	return filename, buf.String(), nil
}

// reportRow is the template's view of one day.
type reportRow struct {
	Date   string
	Label  string
	Status string
	Pieces int
	Euro   string
}

// RenderMonthHTML renders the printable month report from
// templates/report.html.
func (s *ReportService) RenderMonthHTML(year int, month time.Month, rows []compute.DayRow, summary models.MonthSummary) (string, error) {
	viewRows := make([]reportRow, 0, len(rows))
	for _, r := range rows {
		viewRows = append(viewRows, reportRow{
			Date:   r.Date,
			Label:  r.WeekdayLabel,
			Status: compute.StatusLabel(r.Status),
			Pieces: r.Pieces,
			Euro:   utils.FormatEuro(r.ValueCents),
		})
	}

	templateData := struct {
		Title       string
		MonthLabel  string
		Rows        []reportRow
		OpenDays    int
		ClosedDays  int
		TotalPieces int
		TotalEuro   string
		AvgPieces   float64
	}{
		Title:       fmt.Sprintf("Brioche %s", utils.MonthLabel(year, month)),
		MonthLabel:  utils.MonthLabel(year, month),
		Rows:        viewRows,
		OpenDays:    summary.OpenDays,
		ClosedDays:  summary.ClosedDays,
		TotalPieces: summary.TotalPieces,
		TotalEuro:   utils.FormatEuro(summary.TotalCents),
		AvgPieces:   summary.AvgPieces,
	}

	templatePath := filepath.Join("templates", "report.html")
	tmpl, err := template.ParseFiles(templatePath)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, templateData); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// GeneratePDF renders the month report endpoint in headless Chrome and
// prints it to an A4 PDF. The session token is forwarded as a query
// parameter so the render page passes the auth middleware.
func (s *ReportService) GeneratePDF(ctx context.Context, year int, month time.Month, token string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	chromePath := detectChromePath()
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox, // Required for running in Docker/containers
	)
	if chromePath != "" {
		opts = append(opts, chromedp.ExecPath(chromePath))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	chromedpCtx, chromedpCancel := chromedp.NewContext(allocCtx)
	defer chromedpCancel()

	renderURL := fmt.Sprintf("%s/api/months/%d/%d/render?token=%s",
		s.baseURL, year, int(month), url.QueryEscape(token))

	log.Printf("🖨️  GeneratePDF: Rendering %d-%02d", year, int(month))

	var pdfBuf []byte
	err := chromedp.Run(chromedpCtx,
		chromedp.Navigate(renderURL),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// A4 portrait: 210mm x 297mm = 8.27" x 11.69"
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return pdfBuf, nil
}
