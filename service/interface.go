package service

import (
	"context"
	"time"

	"brioche-tracker/compute"
	"brioche-tracker/models"
)

// DayServiceInterface defines the contract for day draft and month rollup operations
type DayServiceInterface interface {
	LoadDay(ctx context.Context, date string) (*models.DayResponse, error)
	SaveDay(ctx context.Context, date string, req *models.SaveDayRequest) (*models.DayResponse, error)
	CloseDay(ctx context.Context, date string) (*models.DayResponse, error)
	ReopenDay(ctx context.Context, date string) (*models.DayResponse, error)
	LoadMonth(ctx context.Context, year int, month time.Month, excludeClosed bool) (*models.MonthResponse, error)
	MonthReportData(ctx context.Context, year int, month time.Month) ([]compute.DayRow, models.MonthSummary, error)
}

// AuthServiceInterface defines the contract for PIN authentication
type AuthServiceInterface interface {
	LoginWithPIN(ctx context.Context, pin string) (string, error)
	VerifyToken(tokenString string) error
}

// ReportServiceInterface defines the contract for month report exports
type ReportServiceInterface interface {
	BuildMonthCSV(year int, month time.Month, rows []compute.DayRow) (filename string, csvText string, err error)
	RenderMonthHTML(year int, month time.Month, rows []compute.DayRow, summary models.MonthSummary) (string, error)
	GeneratePDF(ctx context.Context, year int, month time.Month, token string) ([]byte, error)
}
