package controller

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"brioche-tracker/catalog"
	"brioche-tracker/compute"
	"brioche-tracker/models"
	"brioche-tracker/repository"
)

// SettingsController handles HTTP requests for prices, weekly presets and
// the login PIN
type SettingsController struct {
	products repository.ProductRepositoryInterface
	prices   repository.PriceRepositoryInterface
	presets  repository.PresetRepositoryInterface
	settings repository.SettingsRepositoryInterface
}

// NewSettingsController creates a new SettingsController
func NewSettingsController(
	products repository.ProductRepositoryInterface,
	prices repository.PriceRepositoryInterface,
	presets repository.PresetRepositoryInterface,
	settings repository.SettingsRepositoryInterface,
) *SettingsController {
	return &SettingsController{
		products: products,
		prices:   prices,
		presets:  presets,
		settings: settings,
	}
}

// GetSettings handles GET /api/settings
// Example response: {"prices": {"5b9f...": 150}, "weekly": {"1": {"5b9f...": 10}}}
func (c *SettingsController) GetSettings(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()

	products, err := c.products.List(ctx)
	if err != nil {
		log.Printf("❌ GetSettings: Error loading products: %v", err)
		http.Error(w, "backend unavailable", http.StatusBadGateway)
		return
	}

	prices, err := c.prices.PriceMap(ctx, products)
	if err != nil {
		log.Printf("❌ GetSettings: Error loading prices: %v", err)
		http.Error(w, "backend unavailable", http.StatusBadGateway)
		return
	}

	weekly, err := c.presets.WeeklyExpected(ctx)
	if err != nil {
		log.Printf("❌ GetSettings: Error loading weekly presets: %v", err)
		http.Error(w, "backend unavailable", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(models.SettingsResponse{Prices: prices, Weekly: weekly})
}

// UpdatePrices handles PUT /api/settings/prices
// Example request: {"prices": {"5b9f...": 150}}
func (c *SettingsController) UpdatePrices(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.UpdatePricesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ UpdatePrices: Failed to decode request body: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	payload := make([]models.PriceSetting, 0, len(req.Prices))
	for productID, cents := range req.Prices {
		payload = append(payload, models.PriceSetting{
			ProductID:  productID,
			PriceCents: int64(compute.NormalizeQty(float64(cents))),
		})
	}

	if err := c.prices.UpsertAll(r.Context(), payload); err != nil {
		log.Printf("❌ UpdatePrices: Error saving prices: %v", err)
		http.Error(w, "save failed", http.StatusBadGateway)
		return
	}

	writeOK(w)
}

// UpdateWeekly handles PUT /api/settings/weekly
// Example request: {"weekly": {"1": {"5b9f...": 10}}}
// Only real products are persisted; category-total rows are skipped.
func (c *SettingsController) UpdateWeekly(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.UpdateWeeklyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ UpdateWeekly: Failed to decode request body: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	entries, err := c.weeklyEntries(r.Context(), req.Weekly)
	if err != nil {
		log.Printf("❌ UpdateWeekly: Error building entries: %v", err)
		http.Error(w, "backend unavailable", http.StatusBadGateway)
		return
	}

	if err := c.presets.UpsertAll(r.Context(), entries); err != nil {
		log.Printf("❌ UpdateWeekly: Error saving weekly presets: %v", err)
		http.Error(w, "save failed", http.StatusBadGateway)
		return
	}

	writeOK(w)
}

func (c *SettingsController) weeklyEntries(ctx context.Context, weekly map[int]map[string]int) ([]models.WeeklyExpectedEntry, error) {
	products, err := c.products.List(ctx)
	if err != nil {
		return nil, err
	}

	real := make(map[string]bool, len(products))
	for _, p := range products {
		if catalog.IsRealProduct(p) {
			real[p.ID] = true
		}
	}

	var entries []models.WeeklyExpectedEntry
	for weekday, byProduct := range weekly {
		if weekday < 1 || weekday > 7 {
			continue
		}
		for productID, qty := range byProduct {
			if !real[productID] {
				continue
			}
			entries = append(entries, models.WeeklyExpectedEntry{
				Weekday:     weekday,
				ProductID:   productID,
				ExpectedQty: compute.NormalizeQty(float64(qty)),
			})
		}
	}
	return entries, nil
}

// UpdatePin handles PUT /api/settings/pin
// Example request: {"pin": "1234"}
func (c *SettingsController) UpdatePin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.UpdatePinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	pin := strings.TrimSpace(req.Pin)
	if len(pin) < 4 {
		http.Error(w, "pin must be at least 4 characters", http.StatusBadRequest)
		return
	}

	if err := c.settings.SetPIN(r.Context(), pin); err != nil {
		log.Printf("❌ UpdatePin: Error saving PIN: %v", err)
		http.Error(w, "save failed", http.StatusBadGateway)
		return
	}

	writeOK(w)
}

func writeOK(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
