package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"brioche-tracker/compute"
	"brioche-tracker/db"
	"brioche-tracker/models"
)

// DeliveryRepository handles database operations for saved days
type DeliveryRepository struct{}

// NewDeliveryRepository creates a new DeliveryRepository
func NewDeliveryRepository() *DeliveryRepository {
	return &DeliveryRepository{}
}

// Ensure DeliveryRepository implements DeliveryRepositoryInterface
var _ DeliveryRepositoryInterface = (*DeliveryRepository)(nil)

// GetByDate returns the delivery and its item quantities for one date.
// A missing delivery is not an error: it returns (nil, nil, nil) and the
// caller falls back to the weekly preset.
func (r *DeliveryRepository) GetByDate(ctx context.Context, date string) (*models.Delivery, map[string]int, error) {
	query := `
		SELECT id, delivery_date, is_closed, COALESCE(notes, ''), created_at, updated_at
		FROM deliveries
		WHERE delivery_date = $1
	`

	var d models.Delivery
	err := db.DB.QueryRowContext(ctx, query, date).Scan(
		&d.ID, &d.DeliveryDate, &d.IsClosed, &d.Notes, &d.CreatedAt, &d.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil, nil
	}
	if err != nil {
		log.Printf("❌ GetByDate: Error fetching delivery for %s: %v", date, err)
		return nil, nil, fmt.Errorf("failed to fetch delivery: %w", err)
	}

	items, err := r.itemsForDelivery(ctx, d.ID)
	if err != nil {
		return nil, nil, err
	}

	return &d, items, nil
}

func (r *DeliveryRepository) itemsForDelivery(ctx context.Context, deliveryID string) (map[string]int, error) {
	rows, err := db.DB.QueryContext(ctx,
		`SELECT product_id, received_qty FROM delivery_items WHERE delivery_id = $1`, deliveryID)
	if err != nil {
		log.Printf("❌ itemsForDelivery: Error querying items: %v", err)
		return nil, fmt.Errorf("failed to query delivery items: %w", err)
	}
	defer rows.Close()

	items := make(map[string]int)
	for rows.Next() {
		var productID string
		var qty int
		if err := rows.Scan(&productID, &qty); err != nil {
			return nil, fmt.Errorf("failed to scan delivery item: %w", err)
		}
		items[productID] = qty
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate delivery items: %w", err)
	}

	return items, nil
}

// GetRange returns deliveries and item quantities for [from, toExclusive),
// both keyed by ISO date. Used by the month rollup.
func (r *DeliveryRepository) GetRange(ctx context.Context, from, toExclusive string) (map[string]models.Delivery, map[string]map[string]int, error) {
	query := `
		SELECT id, delivery_date, is_closed, COALESCE(notes, ''), created_at, updated_at
		FROM deliveries
		WHERE delivery_date >= $1 AND delivery_date < $2
		ORDER BY delivery_date
	`

	rows, err := db.DB.QueryContext(ctx, query, from, toExclusive)
	if err != nil {
		log.Printf("❌ GetRange: Error querying deliveries [%s, %s): %v", from, toExclusive, err)
		return nil, nil, fmt.Errorf("failed to query deliveries: %w", err)
	}
	defer rows.Close()

	deliveries := make(map[string]models.Delivery)
	idToDate := make(map[string]string)
	for rows.Next() {
		var d models.Delivery
		if err := rows.Scan(&d.ID, &d.DeliveryDate, &d.IsClosed, &d.Notes, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, nil, fmt.Errorf("failed to scan delivery: %w", err)
		}
		deliveries[d.DeliveryDate] = d
		idToDate[d.ID] = d.DeliveryDate
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to iterate deliveries: %w", err)
	}

	itemsByDate := make(map[string]map[string]int)
	if len(deliveries) == 0 {
		return deliveries, itemsByDate, nil
	}

	itemRows, err := db.DB.QueryContext(ctx, `
		SELECT di.delivery_id, di.product_id, di.received_qty
		FROM delivery_items di
		JOIN deliveries d ON d.id = di.delivery_id
		WHERE d.delivery_date >= $1 AND d.delivery_date < $2
	`, from, toExclusive)
	if err != nil {
		log.Printf("❌ GetRange: Error querying delivery items: %v", err)
		return nil, nil, fmt.Errorf("failed to query delivery items: %w", err)
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var deliveryID, productID string
		var qty int
		if err := itemRows.Scan(&deliveryID, &productID, &qty); err != nil {
			return nil, nil, fmt.Errorf("failed to scan delivery item: %w", err)
		}
		date, ok := idToDate[deliveryID]
		if !ok {
			continue
		}
		if itemsByDate[date] == nil {
			itemsByDate[date] = make(map[string]int)
		}
		itemsByDate[date][productID] = qty
	}
	if err := itemRows.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to iterate delivery items: %w", err)
	}

	return deliveries, itemsByDate, nil
}

// SaveDay persists a save payload atomically. The delivery row is
// upserted first (ON CONFLICT delivery_date), then every item references
// its id. Re-saving the same date overwrites, never duplicates.
func (r *DeliveryRepository) SaveDay(ctx context.Context, payload compute.SavePayload) (*models.Delivery, error) {
	log.Printf("📦 SaveDay: Saving day %s (closed=%v, items=%d)", payload.Date, payload.IsClosed, len(payload.Items))

	tx, err := db.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Printf("❌ SaveDay: Error starting transaction: %v", err)
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	queryDelivery := `
		INSERT INTO deliveries (delivery_date, is_closed, notes)
		VALUES ($1, $2, $3)
		ON CONFLICT (delivery_date) DO UPDATE
		SET is_closed = EXCLUDED.is_closed,
		    notes = EXCLUDED.notes,
		    updated_at = now()
		RETURNING id, delivery_date, is_closed, COALESCE(notes, ''), created_at, updated_at
	`

	var d models.Delivery
	err = tx.QueryRowContext(ctx, queryDelivery, payload.Date, payload.IsClosed, payload.Notes).Scan(
		&d.ID, &d.DeliveryDate, &d.IsClosed, &d.Notes, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		log.Printf("❌ SaveDay: Error upserting delivery: %v", err)
		return nil, fmt.Errorf("failed to upsert delivery: %w", err)
	}

	queryItem := `
		INSERT INTO delivery_items (delivery_id, product_id, received_qty)
		VALUES ($1, $2, $3)
		ON CONFLICT (delivery_id, product_id) DO UPDATE SET received_qty = EXCLUDED.received_qty
	`

	for _, item := range payload.Items {
		if _, err := tx.ExecContext(ctx, queryItem, d.ID, item.ProductID, item.ReceivedQty); err != nil {
			log.Printf("❌ SaveDay: Error upserting item (product=%s): %v", item.ProductID, err)
			return nil, fmt.Errorf("failed to upsert delivery item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Printf("❌ SaveDay: Error committing transaction: %v", err)
		return nil, fmt.Errorf("failed to commit save: %w", err)
	}

	log.Printf("✓ SaveDay: Saved day %s", payload.Date)
	return &d, nil
}
