package models

// SettingsResponse represents the response for GET /api/settings
// Example response:
// {
//   "prices": {"5b9f...": 150},
//   "weekly": {"1": {"5b9f...": 10}, "2": {}, ...}
// }
type SettingsResponse struct {
	Prices map[string]int64       `json:"prices"`
	Weekly map[int]map[string]int `json:"weekly"`
}

// UpdatePricesRequest represents the request body for PUT /api/settings/prices
// Example: {"prices": {"5b9f...": 150, "a01c...": 120}}
type UpdatePricesRequest struct {
	Prices map[string]int64 `json:"prices"`
}

// UpdateWeeklyRequest represents the request body for PUT /api/settings/weekly
// Example: {"weekly": {"1": {"5b9f...": 10}, "7": {"5b9f...": 0}}}
type UpdateWeeklyRequest struct {
	Weekly map[int]map[string]int `json:"weekly"`
}

// UpdatePinRequest represents the request body for PUT /api/settings/pin
type UpdatePinRequest struct {
	Pin string `json:"pin"`
}

// LoginRequest represents the request body for POST /auth/login
// Example: {"pin": "2026"}
type LoginRequest struct {
	Pin string `json:"pin"`
}

// LoginResponse represents the response for a successful login
type LoginResponse struct {
	Token string `json:"token"`
}
