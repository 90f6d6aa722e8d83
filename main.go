package main

import (
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/Nardinjo/borsh/clients"
	"github.com/Nardinjo/borsh/config"
	"github.com/Nardinjo/borsh/handlers"
)

func main() {
	// .env is optional; deployments usually set the environment directly.
	_ = godotenv.Load()

	cfg := config.LoadConfig()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(cfg.LogLevel),
	})))

	// The Hotel API serializes prices as plain JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true

	// Set Gin mode
	if cfg.LogLevel == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	api := clients.NewHotelAPIClient(cfg.HotelAPIURL, time.Duration(cfg.RequestTimeout)*time.Second)

	menuHandler := handlers.NewMenuHandler(api)
	cartHandler := handlers.NewCartHandler(menuHandler)
	orderHandler := handlers.NewOrderHandler(cartHandler, api)
	bookingHandler := handlers.NewBookingHandler(api)
	adminHandler := handlers.NewAdminHandler(api, cfg.RecentLimit)
	infoHandler := handlers.NewInfoHandler()

	// Warm the catalogs once at startup; a failure here is tolerated and
	// retried on the next menu request.
	if err := menuHandler.RefreshMenus(); err != nil {
		slog.Warn("initial menu load failed", "error", err)
	}

	router := gin.Default()

	apiRoutes := router.Group("/api")
	{
		apiRoutes.GET("/info", infoHandler.Get)
		apiRoutes.GET("/menus", menuHandler.GetMenus)
		apiRoutes.GET("/qr-code/:menuType", menuHandler.GetQRCode)

		apiRoutes.POST("/carts", cartHandler.CreateCart)
		apiRoutes.GET("/carts/:cartId", cartHandler.GetCart)
		apiRoutes.POST("/carts/:cartId/items", cartHandler.AddItem)
		apiRoutes.PUT("/carts/:cartId/items/:itemId", cartHandler.UpdateItem)
		apiRoutes.DELETE("/carts/:cartId/items/:itemId", cartHandler.RemoveItem)
		apiRoutes.PUT("/carts/:cartId/customer", cartHandler.UpdateCustomer)
		apiRoutes.POST("/carts/:cartId/submit", orderHandler.Submit)

		apiRoutes.GET("/bookings/defaults", bookingHandler.Defaults)
		apiRoutes.POST("/bookings", bookingHandler.Create)

		apiRoutes.GET("/admin/bookings", adminHandler.ListBookings)
		apiRoutes.GET("/admin/bookings/:bookingId", adminHandler.GetBooking)
		apiRoutes.GET("/admin/orders", adminHandler.ListOrders)
		apiRoutes.GET("/admin/orders/:orderId", adminHandler.GetOrder)
	}

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	slog.Info("starting hotel front desk service", "port", cfg.Port, "hotel_api", cfg.HotelAPIURL)

	log.Fatal(router.Run(":" + cfg.Port))
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
