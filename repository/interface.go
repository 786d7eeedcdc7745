package repository

import (
	"context"

	"brioche-tracker/compute"
	"brioche-tracker/models"
)

// ProductRepositoryInterface defines the contract for product catalog reads
type ProductRepositoryInterface interface {
	List(ctx context.Context) ([]models.Product, error)
}

// PriceRepositoryInterface defines the contract for price settings operations
type PriceRepositoryInterface interface {
	// PriceMap returns the effective unit price per product id:
	// product defaults overlaid with per-product overrides.
	PriceMap(ctx context.Context, products []models.Product) (map[string]int64, error)
	UpsertAll(ctx context.Context, prices []models.PriceSetting) error
}

// PresetRepositoryInterface defines the contract for weekly expected quantities
type PresetRepositoryInterface interface {
	// WeeklyExpected returns expected quantities keyed by ISO weekday
	// (1..7, all weekdays present) then product id.
	WeeklyExpected(ctx context.Context) (map[int]map[string]int, error)
	UpsertAll(ctx context.Context, entries []models.WeeklyExpectedEntry) error
}

// DeliveryRepositoryInterface defines the contract for saved-day operations
type DeliveryRepositoryInterface interface {
	// GetByDate returns the delivery and its item quantities for one date,
	// or (nil, nil, nil) when no delivery exists.
	GetByDate(ctx context.Context, date string) (*models.Delivery, map[string]int, error)
	// GetRange returns deliveries and item quantities for [from, toExclusive),
	// both keyed by ISO date.
	GetRange(ctx context.Context, from, toExclusive string) (map[string]models.Delivery, map[string]map[string]int, error)
	// SaveDay persists a save payload atomically: the delivery upsert first,
	// then one item upsert per real product. Idempotent per date.
	SaveDay(ctx context.Context, payload compute.SavePayload) (*models.Delivery, error)
}

// SettingsRepositoryInterface defines the contract for app settings (login PIN)
type SettingsRepositoryInterface interface {
	GetPIN(ctx context.Context) (string, error)
	SetPIN(ctx context.Context, pin string) error
}
