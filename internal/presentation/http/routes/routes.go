package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tillpoint/tillpoint-api/internal/config"
	"github.com/tillpoint/tillpoint-api/internal/presentation/http/handler"
	"github.com/tillpoint/tillpoint-api/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Catalog  *handler.CatalogHandler
	Customer *handler.CustomerHandler
	Sale     *handler.SaleHandler
	Payment  *handler.PaymentHandler
	Receipt  *handler.ReceiptHandler
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))

	rateLimiter := middleware.NewIPRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: float64(cfg.RateLimit.Requests) / float64(cfg.RateLimit.Duration),
		BurstSize:         cfg.RateLimit.Requests,
		CleanupInterval:   5 * time.Minute,
		EntryTTL:          10 * time.Minute,
	})

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	v1.Use(rateLimiter.Middleware())
	{
		registerItemRoutes(v1, h)
		registerCustomerRoutes(v1, h)
		registerSaleRoutes(v1, h)
		registerPaymentRoutes(v1, h)
		registerPrinterRoutes(v1, h)
	}

	return router
}

func registerItemRoutes(v1 *gin.RouterGroup, h *Handlers) {
	items := v1.Group("/items")
	{
		items.GET("", h.Catalog.List)
		items.POST("", h.Catalog.Create)
		items.PUT("", h.Catalog.Upsert)
		items.POST("/import", h.Catalog.Import)
		items.DELETE("", h.Catalog.Clear)
		items.GET("/:upc", h.Catalog.Lookup)
		items.PUT("/:upc/price", h.Catalog.UpdatePrice)
	}
}

func registerCustomerRoutes(v1 *gin.RouterGroup, h *Handlers) {
	customers := v1.Group("/customers")
	{
		customers.GET("", h.Customer.List)
		customers.POST("", h.Customer.Create)
		customers.GET("/phone/:phone", h.Customer.FindByPhone)
		customers.GET("/:id/balance", h.Customer.Balance)
		customers.GET("/:id/sales", h.Customer.SalesHistory)
	}
}

func registerSaleRoutes(v1 *gin.RouterGroup, h *Handlers) {
	sales := v1.Group("/sales")
	{
		sales.POST("", h.Sale.Finalize)
		sales.GET("/:id", h.Sale.Get)
		sales.GET("/:id/receipt", h.Receipt.Get)
		sales.POST("/:id/receipt/print", h.Receipt.Print)
	}
}

func registerPaymentRoutes(v1 *gin.RouterGroup, h *Handlers) {
	payments := v1.Group("/payments")
	{
		payments.POST("", h.Payment.Apply)
	}
}

func registerPrinterRoutes(v1 *gin.RouterGroup, h *Handlers) {
	printerGroup := v1.Group("/printer")
	{
		printerGroup.GET("/status", h.Receipt.Status)
		printerGroup.POST("/test", h.Receipt.TestPrint)
	}
}
