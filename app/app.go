package app

import (
	"fmt"
	"os"

	"brioche-tracker/app/controller"
	"brioche-tracker/app/router"
	"brioche-tracker/db"
	"brioche-tracker/events"
	"brioche-tracker/repository"
	"brioche-tracker/service"
)

// Initialize initializes the application
func Initialize() error {
	// Initialize database connection
	if err := db.InitDB(); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	// Initialize repositories
	productRepo := repository.NewProductRepository()
	priceRepo := repository.NewPriceRepository()
	presetRepo := repository.NewPresetRepository()
	deliveryRepo := repository.NewDeliveryRepository()
	settingsRepo := repository.NewSettingsRepository()

	// Refresh event bus (feeds the SSE endpoint after saves)
	bus := events.NewBus()

	// Initialize services
	authService, err := service.NewAuthService(settingsRepo, os.Getenv("SESSION_SECRET"))
	if err != nil {
		return err
	}

	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		port := os.Getenv("PORT")
		if port == "" {
			port = "8080"
		}
		baseURL = "http://localhost:" + port
	}
	reportService := service.NewReportService(baseURL)

	dayService := service.NewDayService(productRepo, priceRepo, presetRepo, deliveryRepo, bus)

	// Create controllers
	controllers := &router.Controllers{
		Auth:     controller.NewAuthController(authService),
		Day:      controller.NewDayController(dayService),
		Month:    controller.NewMonthController(dayService, reportService),
		Product:  controller.NewProductController(productRepo),
		Settings: controller.NewSettingsController(productRepo, priceRepo, presetRepo, settingsRepo),
		Events:   controller.NewEventsController(bus),
	}

	// Setup routes using standard http router
	router.SetupRoutes(controllers, authService)

	return nil
}
