package repository

import (
	"context"
	"fmt"
	"log"

	"brioche-tracker/db"
	"brioche-tracker/models"
)

// PriceRepository handles database operations for price settings
type PriceRepository struct{}

// NewPriceRepository creates a new PriceRepository
func NewPriceRepository() *PriceRepository {
	return &PriceRepository{}
}

// Ensure PriceRepository implements PriceRepositoryInterface
var _ PriceRepositoryInterface = (*PriceRepository)(nil)

// PriceMap returns the effective unit price in cents per product id.
// Every product starts at its default price; price_settings rows override.
func (r *PriceRepository) PriceMap(ctx context.Context, products []models.Product) (map[string]int64, error) {
	prices := make(map[string]int64, len(products))
	for _, p := range products {
		prices[p.ID] = p.DefaultPriceCents
	}

	rows, err := db.DB.QueryContext(ctx, `SELECT product_id, price_cents FROM price_settings`)
	if err != nil {
		log.Printf("❌ PriceMap: Error querying price settings: %v", err)
		return nil, fmt.Errorf("failed to query price settings: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var productID string
		var cents int64
		if err := rows.Scan(&productID, &cents); err != nil {
			return nil, fmt.Errorf("failed to scan price setting: %w", err)
		}
		prices[productID] = cents
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate price settings: %w", err)
	}

	return prices, nil
}

// UpsertAll writes price overrides for every given product in one transaction.
func (r *PriceRepository) UpsertAll(ctx context.Context, prices []models.PriceSetting) error {
	tx, err := db.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO price_settings (product_id, price_cents)
		VALUES ($1, $2)
		ON CONFLICT (product_id) DO UPDATE SET price_cents = EXCLUDED.price_cents
	`

	for _, p := range prices {
		if _, err := tx.ExecContext(ctx, query, p.ProductID, p.PriceCents); err != nil {
			log.Printf("❌ UpsertAll: Error upserting price for product %s: %v", p.ProductID, err)
			return fmt.Errorf("failed to upsert price: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit price settings: %w", err)
	}

	log.Printf("💰 UpsertAll: Saved %d price settings", len(prices))
	return nil
}
