package router

import (
	"log"
	"net/http"
	"strings"

	"brioche-tracker/app/controller"
	"brioche-tracker/service"
)

type Controllers struct {
	Auth     *controller.AuthController
	Day      *controller.DayController
	Month    *controller.MonthController
	Product  *controller.ProductController
	Settings *controller.SettingsController
	Events   *controller.EventsController
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// requireAuth wraps a handler with session-token verification. The token
// comes from the Authorization header, or from the token query parameter
// for surfaces that cannot set headers (SSE, the PDF render page).
func requireAuth(auth service.AuthServiceInterface, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := ""
		if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
			token = strings.TrimPrefix(h, "Bearer ")
		} else {
			token = r.URL.Query().Get("token")
		}

		if token == "" {
			http.Error(w, "missing session token", http.StatusUnauthorized)
			return
		}

		if err := auth.VerifyToken(token); err != nil {
			log.Printf("❌ requireAuth: %v", err)
			http.Error(w, "invalid session token", http.StatusUnauthorized)
			return
		}

		next(w, r)
	}
}

func SetupRoutes(controllers *Controllers, auth service.AuthServiceInterface) {
	// Public endpoints
	http.HandleFunc("/ping", pingHandler)
	http.HandleFunc("/auth/login", controllers.Auth.Login)

	// Product catalog
	http.HandleFunc("/api/products", requireAuth(auth, controllers.Product.List))

	// Day drafts: GET/PUT /api/days/{date}, POST /api/days/{date}/close,
	// POST /api/days/{date}/reopen
	http.HandleFunc("/api/days/", requireAuth(auth, controllers.Day.Handle))

	// Month rollups and exports: /api/months/{year}/{month}[/export.csv|
	// /export.pdf|/render]
	http.HandleFunc("/api/months/", requireAuth(auth, controllers.Month.Handle))

	// Settings
	http.HandleFunc("/api/settings", requireAuth(auth, controllers.Settings.GetSettings))
	http.HandleFunc("/api/settings/prices", requireAuth(auth, controllers.Settings.UpdatePrices))
	http.HandleFunc("/api/settings/weekly", requireAuth(auth, controllers.Settings.UpdateWeekly))
	http.HandleFunc("/api/settings/pin", requireAuth(auth, controllers.Settings.UpdatePin))

	// Refresh event stream
	http.HandleFunc("/api/events", requireAuth(auth, controllers.Events.Stream))
}
