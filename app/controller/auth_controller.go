package controller

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"brioche-tracker/models"
	"brioche-tracker/service"
)

// AuthController handles HTTP requests for authentication
type AuthController struct {
	auth service.AuthServiceInterface
}

// NewAuthController creates a new AuthController
func NewAuthController(auth service.AuthServiceInterface) *AuthController {
	return &AuthController{auth: auth}
}

// Login handles POST /auth/login
// Example request: {"pin": "2026"}
// Example response: {"token": "eyJhbGciOi..."}
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ Login: Failed to decode request body: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Pin) == "" {
		http.Error(w, "pin is required", http.StatusBadRequest)
		return
	}

	token, err := c.auth.LoginWithPIN(r.Context(), req.Pin)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPIN) {
			http.Error(w, "invalid pin", http.StatusUnauthorized)
			return
		}
		log.Printf("❌ Login: Error during login: %v", err)
		http.Error(w, "login failed", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(models.LoginResponse{Token: token})
}
