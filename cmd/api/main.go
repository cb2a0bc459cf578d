package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-stock-sales/internal/handler"
	"go-stock-sales/internal/middleware"
	"go-stock-sales/internal/model"
	"go-stock-sales/internal/repository"
	"go-stock-sales/internal/service"
	"go-stock-sales/internal/ws"
	"go-stock-sales/pkg/database"

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
	db.AutoMigrate(&model.User{}, &model.Category{}, &model.Product{}, &model.Sale{})

	// 3. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 4. Dependency Injection (Wiring Layers)
	userRepo := repository.NewUserRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	productRepo := repository.NewProductRepo(db)
	saleRepo := repository.NewSaleRepo(db)

	authService := service.NewAuthService(userRepo)
	userService := service.NewUserService(userRepo)
	categoryService := service.NewCategoryService(categoryRepo, productRepo)
	productService := service.NewProductService(productRepo, categoryRepo)
	stockService := service.NewStockService(productRepo, wsHub)
	saleService := service.NewSaleService(saleRepo, wsHub)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	productHandler := handler.NewProductHandler(productService)
	stockHandler := handler.NewStockHandler(stockService)
	saleHandler := handler.NewSaleHandler(saleService)

	// 5. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Stock Sales API v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 6. Routes

	// ============ PUBLIC ROUTES ============
	auth := app.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Get("/logout", authHandler.Logout)

	// ============ PROTECTED ROUTES ============
	requireAuth := middleware.RequireAuth(userRepo)

	user := app.Group("/user", requireAuth)
	user.Get("/", userHandler.GetMe)
	user.Put("/update", userHandler.UpdateMe)
	user.Delete("/deactive", userHandler.DeactivateMe)
	user.Post("/approved", userHandler.Approve)
	user.Post("/disapproved", userHandler.Disapprove)

	category := app.Group("/category", requireAuth)
	category.Get("/", categoryHandler.List)
	category.Post("/create", categoryHandler.Create)
	category.Put("/update/:id", categoryHandler.Update)
	category.Delete("/delete/:id", categoryHandler.Delete)

	product := app.Group("/product", requireAuth)
	product.Get("/", productHandler.Get)
	product.Post("/register", productHandler.Register)
	product.Put("/update", productHandler.Update)
	product.Delete("/delete", productHandler.Delete)

	stock := app.Group("/stock", requireAuth)
	stock.Get("/", stockHandler.List)
	stock.Put("/add", stockHandler.Add)
	stock.Put("/remove", stockHandler.Remove)

	sale := app.Group("/sale", requireAuth)
	sale.Get("/", saleHandler.List)
	sale.Post("/add", saleHandler.Register)
	sale.Delete("/:id", saleHandler.Delete)

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
