package app

import (
	"fmt"
	"net/http"
	"os"

	"liveaboard-booking/app/controller"
	"liveaboard-booking/app/router"
	"liveaboard-booking/db"
	"liveaboard-booking/pricing"
	"liveaboard-booking/repository"
	"liveaboard-booking/service"
)

// Initialize initializes the application
func Initialize(port string) error {
	// Initialize database connection
	if err := db.InitDB(); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	// Load pricing configuration
	configPath := os.Getenv("PRICING_CONFIG_PATH")
	if configPath == "" {
		configPath = "config/pricing.json"
	}
	engine, err := pricing.NewEngine(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize pricing engine: %w", err)
	}

	// The PDF renderer loads the HTML invoice back from this server
	baseURL := os.Getenv("PUBLIC_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:" + port
	}

	// Initialize repositories
	quoteRepo := repository.NewQuoteRepository()
	tripRepo := repository.NewTripRepository()

	// Initialize services
	quoteService := service.NewQuoteService(engine, quoteRepo, tripRepo)
	invoiceService := service.NewInvoiceService(quoteRepo, baseURL, "templates/invoice.html")

	// Create controllers
	controllers := &router.Controllers{
		Quote:   controller.NewQuoteController(quoteService),
		Trip:    controller.NewTripController(quoteService),
		Invoice: controller.NewInvoiceController(invoiceService),
	}

	// Setup routes using standard http router
	router.SetupRoutes(http.DefaultServeMux, controllers)

	return nil
}
