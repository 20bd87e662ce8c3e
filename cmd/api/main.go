package main

import (
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"go-inventory-admin/internal/handler"
	"go-inventory-admin/internal/model"
	"go-inventory-admin/internal/repository"
	"go-inventory-admin/internal/service"
	"go-inventory-admin/internal/ws"
	"go-inventory-admin/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	if err := db.AutoMigrate(&model.Product{}, &model.Purchase{}, &model.Sale{}, &model.Report{}); err != nil {
		log.Fatal("Migration failed: ", err)
	}

	// 3. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 4. Dependency Injection (Wiring Layers)
	productRepo := repository.NewProductRepo(db)
	purchaseRepo := repository.NewPurchaseRepo(db)
	saleRepo := repository.NewSaleRepo(db)
	reportRepo := repository.NewReportRepo(db)
	dashRepo := repository.NewDashboardRepo(db)

	purchaseCfg := service.PurchaseConfig{LegacyShrinkGuard: envBool("LEGACY_PURCHASE_GUARD")}

	productService := service.NewProductService(productRepo, wsHub)
	purchaseService := service.NewPurchaseService(purchaseRepo, purchaseCfg, wsHub)
	saleService := service.NewSaleService(saleRepo, wsHub)
	reportService := service.NewReportService(reportRepo)
	dashService := service.NewDashboardService(dashRepo)

	productHandler := handler.NewProductHandler(productService)
	purchaseHandler := handler.NewPurchaseHandler(purchaseService, productService)
	saleHandler := handler.NewSaleHandler(saleService, productService)
	reportHandler := handler.NewReportHandler(reportService)
	dashHandler := handler.NewDashboardHandler(dashService)

	// 5. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Inventory Admin v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 6. Routes. Each entity gets a page pair: GET renders the page state
	// (edit_id/delete_id/q as query params), POST submits the form with an
	// action marker (add_product, update_purchase, ...).
	api := app.Group("/api/v1")

	api.Get("/products", productHandler.Page)
	api.Post("/products", productHandler.Submit)

	api.Get("/purchases", purchaseHandler.Page)
	api.Post("/purchases", purchaseHandler.Submit)

	api.Get("/sales", saleHandler.Page)
	api.Post("/sales", saleHandler.Submit)

	api.Get("/reports", reportHandler.Page)
	api.Post("/reports", reportHandler.Submit)

	api.Get("/dashboard/stats", dashHandler.GetStats)
	api.Get("/dashboard/stock-movement", dashHandler.GetStockMovement)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 7. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

func envBool(name string) bool {
	v, err := strconv.ParseBool(os.Getenv(name))
	return err == nil && v
}
