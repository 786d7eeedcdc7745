package repository

import (
	"context"
	"fmt"
	"log"

	"brioche-tracker/db"
	"brioche-tracker/models"
)

// PresetRepository handles database operations for weekly expected quantities
type PresetRepository struct{}

// NewPresetRepository creates a new PresetRepository
func NewPresetRepository() *PresetRepository {
	return &PresetRepository{}
}

// Ensure PresetRepository implements PresetRepositoryInterface
var _ PresetRepositoryInterface = (*PresetRepository)(nil)

// WeeklyExpected returns expected quantities keyed by ISO weekday then
// product id. All seven weekdays are present even when empty, so callers
// never need a nil check.
func (r *PresetRepository) WeeklyExpected(ctx context.Context) (map[int]map[string]int, error) {
	weekly := make(map[int]map[string]int, 7)
	for w := 1; w <= 7; w++ {
		weekly[w] = make(map[string]int)
	}

	rows, err := db.DB.QueryContext(ctx, `SELECT weekday, product_id, expected_qty FROM weekly_expected`)
	if err != nil {
		log.Printf("❌ WeeklyExpected: Error querying weekly expected: %v", err)
		return nil, fmt.Errorf("failed to query weekly expected: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var weekday, qty int
		var productID string
		if err := rows.Scan(&weekday, &productID, &qty); err != nil {
			return nil, fmt.Errorf("failed to scan weekly expected: %w", err)
		}
		if weekday < 1 || weekday > 7 {
			log.Printf("⚠️  WeeklyExpected: Skipping row with invalid weekday %d", weekday)
			continue
		}
		weekly[weekday][productID] = qty
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate weekly expected: %w", err)
	}

	return weekly, nil
}

// UpsertAll writes weekly expected quantities in one transaction.
// Callers pass real products only; weekdays outside 1..7 are rejected.
func (r *PresetRepository) UpsertAll(ctx context.Context, entries []models.WeeklyExpectedEntry) error {
	tx, err := db.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO weekly_expected (weekday, product_id, expected_qty)
		VALUES ($1, $2, $3)
		ON CONFLICT (weekday, product_id) DO UPDATE SET expected_qty = EXCLUDED.expected_qty
	`

	for _, e := range entries {
		if e.Weekday < 1 || e.Weekday > 7 {
			return fmt.Errorf("invalid weekday %d (expected 1..7)", e.Weekday)
		}
		if _, err := tx.ExecContext(ctx, query, e.Weekday, e.ProductID, e.ExpectedQty); err != nil {
			log.Printf("❌ UpsertAll: Error upserting weekly expected (weekday=%d, product=%s): %v", e.Weekday, e.ProductID, err)
			return fmt.Errorf("failed to upsert weekly expected: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit weekly expected: %w", err)
	}

	log.Printf("📅 UpsertAll: Saved %d weekly expected entries", len(entries))
	return nil
}
