package main

import (
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/tillpoint/tillpoint-api/internal/application/service"
	"github.com/tillpoint/tillpoint-api/internal/config"
	"github.com/tillpoint/tillpoint-api/internal/infrastructure/database"
	"github.com/tillpoint/tillpoint-api/internal/infrastructure/repository"
	"github.com/tillpoint/tillpoint-api/internal/presentation/http/handler"
	"github.com/tillpoint/tillpoint-api/internal/presentation/http/routes"
	"github.com/tillpoint/tillpoint-api/pkg/printer"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Console logging in development, JSON in production
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cfg.App.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	if cfg.App.Env != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.Connect(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	// Initialize repositories
	itemRepo := repository.NewItemRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	txRunner := repository.NewTxRunner(db)

	// Initialize services
	catalogService := service.NewCatalogService(itemRepo)
	importService := service.NewImportService(catalogService)
	customerService := service.NewCustomerService(customerRepo, saleRepo)
	saleService := service.NewSaleService(saleRepo, customerRepo, catalogService, txRunner)
	paymentService := service.NewPaymentService(saleRepo, customerRepo, txRunner)

	// Initialize receipt printer
	receiptPrinter, err := printer.NewPrinterFromConfig(
		cfg.Printer.Type,
		cfg.Printer.USBPath,
		cfg.Printer.Address,
	)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to initialize printer, falling back to null printer")
		receiptPrinter = printer.NewNullPrinter()
	}
	receiptService := service.NewReceiptService(saleRepo, receiptPrinter, cfg.Receipt)

	// Initialize handlers
	handlers := &routes.Handlers{
		Catalog:  handler.NewCatalogHandler(catalogService, importService),
		Customer: handler.NewCustomerHandler(customerService),
		Sale:     handler.NewSaleHandler(saleService),
		Payment:  handler.NewPaymentHandler(paymentService),
		Receipt:  handler.NewReceiptHandler(receiptService, cfg.Receipt),
	}

	// Setup routes
	router := routes.Setup(handlers, cfg)

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Info().Str("service", cfg.App.Name).Str("port", port).Str("env", cfg.App.Env).Msg("Starting server")

	if err := router.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}
