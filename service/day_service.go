package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"brioche-tracker/catalog"
	"brioche-tracker/compute"
	"brioche-tracker/events"
	"brioche-tracker/models"
	"brioche-tracker/repository"
	"brioche-tracker/utils"
)

// DayService assembles day drafts and month rollups from the repositories
// and the pure compute core, and persists edits back.
type DayService struct {
	products   repository.ProductRepositoryInterface
	prices     repository.PriceRepositoryInterface
	presets    repository.PresetRepositoryInterface
	deliveries repository.DeliveryRepositoryInterface
	bus        *events.Bus
}

// NewDayService creates a new DayService
func NewDayService(
	products repository.ProductRepositoryInterface,
	prices repository.PriceRepositoryInterface,
	presets repository.PresetRepositoryInterface,
	deliveries repository.DeliveryRepositoryInterface,
	bus *events.Bus,
) *DayService {
	return &DayService{
		products:   products,
		prices:     prices,
		presets:    presets,
		deliveries: deliveries,
		bus:        bus,
	}
}

// Ensure DayService implements DayServiceInterface
var _ DayServiceInterface = (*DayService)(nil)

// snapshot is the immutable backing data a day or month computation reads.
type snapshot struct {
	products []models.Product
	prices   map[string]int64
	weekly   map[int]map[string]int
}

// loadSnapshot fetches catalog, prices and weekly presets. Any failure
// aborts the whole load: a view must never render partial derived data.
func (s *DayService) loadSnapshot(ctx context.Context) (*snapshot, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}

	prices, err := s.prices.PriceMap(ctx, products)
	if err != nil {
		return nil, fmt.Errorf("failed to load prices: %w", err)
	}

	weekly, err := s.presets.WeeklyExpected(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load weekly presets: %w", err)
	}

	return &snapshot{products: products, prices: prices, weekly: weekly}, nil
}

func dayResponse(date string, weekday int, status string, draft compute.DayDraft, snap *snapshot) *models.DayResponse {
	totalCents := compute.TotalValueCents(draft.Quantities, snap.prices)
	return &models.DayResponse{
		Date:           date,
		Weekday:        weekday,
		Status:         status,
		IsClosed:       draft.IsClosed,
		Notes:          draft.Notes,
		Quantities:     draft.Quantities,
		TotalPieces:    compute.TotalPieces(draft.Quantities),
		TotalCents:     totalCents,
		TotalFormatted: utils.FormatEuro(totalCents),
		CategoryTotals: catalog.CategoryTotals(snap.products, draft.Quantities),
	}
}

// LoadDay builds the editable draft and KPIs for one date.
func (s *DayService) LoadDay(ctx context.Context, date string) (*models.DayResponse, error) {
	dt, err := utils.ParseISODate(date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}

	snap, err := s.loadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	delivery, received, err := s.deliveries.GetByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load delivery: %w", err)
	}

	weekday := utils.WeekdayISO(dt)
	in := compute.BuildInput{
		Products:     snap.products,
		ExpectedByID: snap.weekly[weekday],
	}
	status := compute.StatusPreset
	if delivery != nil {
		in.HasDelivery = true
		in.DeliveryIsClosed = delivery.IsClosed
		in.DeliveryNotes = delivery.Notes
		in.ReceivedByID = received
		if delivery.IsClosed {
			status = compute.StatusClosed
		} else {
			status = compute.StatusSaved
		}
	}

	draft := compute.BuildDayDraft(in)
	return dayResponse(date, weekday, status, draft, snap), nil
}

// SaveDay persists an edited draft for a date. The closed rule is applied
// server-side before anything is written, so a closed day can never
// persist non-zero quantities. On failure the caller's draft is untouched
// and the same save can be retried (idempotent upserts).
func (s *DayService) SaveDay(ctx context.Context, date string, req *models.SaveDayRequest) (*models.DayResponse, error) {
	if _, err := utils.ParseISODate(date); err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}

	snap, err := s.loadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	draft := compute.DayDraft{
		IsClosed:   req.IsClosed,
		Notes:      req.Notes,
		Quantities: req.Quantities,
	}
	payload := compute.BuildSavePayload(snap.products, date, draft)

	delivery, err := s.deliveries.SaveDay(ctx, payload)
	if err != nil {
		return nil, fmt.Errorf("failed to save day: %w", err)
	}

	s.bus.PublishRefresh("save")

	status := compute.StatusSaved
	if delivery.IsClosed {
		status = compute.StatusClosed
	}

	dt, _ := utils.ParseISODate(date)
	saved := compute.BuildDayDraft(compute.BuildInput{
		Products:         snap.products,
		HasDelivery:      true,
		DeliveryIsClosed: payload.IsClosed,
		DeliveryNotes:    payload.Notes,
		ReceivedByID:     receivedFromPayload(payload),
	})
	return dayResponse(date, utils.WeekdayISO(dt), status, saved, snap), nil
}

func receivedFromPayload(payload compute.SavePayload) map[string]int {
	out := make(map[string]int, len(payload.Items))
	for _, item := range payload.Items {
		out[item.ProductID] = item.ReceivedQty
	}
	return out
}

// CloseDay marks a date as closed and persists it: quantities zeroed,
// notes preserved.
func (s *DayService) CloseDay(ctx context.Context, date string) (*models.DayResponse, error) {
	current, err := s.LoadDay(ctx, date)
	if err != nil {
		return nil, err
	}

	closed := compute.Close(compute.DayDraft{
		IsClosed:   current.IsClosed,
		Notes:      current.Notes,
		Quantities: current.Quantities,
	})

	return s.SaveDay(ctx, date, &models.SaveDayRequest{
		IsClosed:   closed.IsClosed,
		Notes:      closed.Notes,
		Quantities: closed.Quantities,
	})
}

// ReopenDay reopens a date, reseeding quantities from the weekday preset
// and clearing notes. Prior edits are deliberately discarded.
func (s *DayService) ReopenDay(ctx context.Context, date string) (*models.DayResponse, error) {
	dt, err := utils.ParseISODate(date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}

	snap, err := s.loadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	reopened := compute.ReopenToPreset(snap.products, snap.weekly[utils.WeekdayISO(dt)])

	return s.SaveDay(ctx, date, &models.SaveDayRequest{
		IsClosed:   reopened.IsClosed,
		Notes:      reopened.Notes,
		Quantities: reopened.Quantities,
	})
}

// LoadMonth computes per-day rows and month aggregates for a calendar
// month.
func (s *DayService) LoadMonth(ctx context.Context, year int, month time.Month, excludeClosed bool) (*models.MonthResponse, error) {
	snap, err := s.loadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := s.monthRows(ctx, year, month, snap)
	if err != nil {
		return nil, err
	}

	summary := compute.SummarizeMonth(rows, excludeClosed)

	viewRows := make([]models.MonthDayRow, 0, len(rows))
	for _, r := range rows {
		viewRows = append(viewRows, models.MonthDayRow{
			Date:         r.Date,
			WeekdayLabel: r.WeekdayLabel,
			Status:       r.Status,
			Pieces:       r.Pieces,
			ValueCents:   r.ValueCents,
		})
	}

	return &models.MonthResponse{
		Year:    year,
		Month:   int(month),
		Label:   utils.MonthLabel(year, month),
		Rows:    viewRows,
		Summary: summary,
	}, nil
}

// monthRows loads the month's deliveries and produces the rollup rows.
func (s *DayService) monthRows(ctx context.Context, year int, month time.Month, snap *snapshot) ([]compute.DayRow, error) {
	from := utils.FormatISODate(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
	toExclusive := utils.FormatISODate(time.Date(year, month+1, 1, 0, 0, 0, 0, time.UTC))

	deliveries, itemsByDate, err := s.deliveries.GetRange(ctx, from, toExclusive)
	if err != nil {
		return nil, fmt.Errorf("failed to load month deliveries: %w", err)
	}

	rows := compute.MonthRows(year, month, compute.MonthInput{
		Products:         snap.products,
		DeliveriesByDate: deliveries,
		ItemsByDate:      itemsByDate,
		WeeklyByWeekday:  snap.weekly,
		PricesByID:       snap.prices,
	})

	log.Printf("📊 MonthRows: Computed %d rows for %d-%02d", len(rows), year, int(month))
	return rows, nil
}

// MonthReportData bundles what the report endpoints need: the raw rollup
// rows plus the full-month summary.
func (s *DayService) MonthReportData(ctx context.Context, year int, month time.Month) ([]compute.DayRow, models.MonthSummary, error) {
	snap, err := s.loadSnapshot(ctx)
	if err != nil {
		return nil, models.MonthSummary{}, err
	}
	rows, err := s.monthRows(ctx, year, month, snap)
	if err != nil {
		return nil, models.MonthSummary{}, err
	}
	return rows, compute.SummarizeMonth(rows, false), nil
}
