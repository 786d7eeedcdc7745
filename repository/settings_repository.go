package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"brioche-tracker/db"
)

// DefaultPIN is used until a PIN has been stored.
const DefaultPIN = "2026"

const pinKey = "pin"

// SettingsRepository handles database operations for app settings
type SettingsRepository struct{}

// NewSettingsRepository creates a new SettingsRepository
func NewSettingsRepository() *SettingsRepository {
	return &SettingsRepository{}
}

// Ensure SettingsRepository implements SettingsRepositoryInterface
var _ SettingsRepositoryInterface = (*SettingsRepository)(nil)

// GetPIN returns the stored login PIN, falling back to the default when
// none has been set yet.
func (r *SettingsRepository) GetPIN(ctx context.Context) (string, error) {
	var pin string
	err := db.DB.QueryRowContext(ctx, `SELECT value FROM app_settings WHERE key = $1`, pinKey).Scan(&pin)
	if err == sql.ErrNoRows {
		return DefaultPIN, nil
	}
	if err != nil {
		log.Printf("❌ GetPIN: Error fetching PIN: %v", err)
		return "", fmt.Errorf("failed to fetch pin: %w", err)
	}
	return pin, nil
}

// SetPIN stores a new login PIN.
func (r *SettingsRepository) SetPIN(ctx context.Context, pin string) error {
	query := `
		INSERT INTO app_settings (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
	`
	if _, err := db.DB.ExecContext(ctx, query, pinKey, pin); err != nil {
		log.Printf("❌ SetPIN: Error storing PIN: %v", err)
		return fmt.Errorf("failed to store pin: %w", err)
	}
	log.Printf("🔑 SetPIN: PIN updated")
	return nil
}
