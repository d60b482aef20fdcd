package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/shopspring/decimal"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"grocer/internal/config"
	"grocer/internal/handlers"
	"grocer/internal/middleware"
	"grocer/internal/models"
	"grocer/internal/repositories"
	"grocer/internal/services"
	"grocer/pkg/rabbitmq"
)

func main() {
	cfg := config.Load()

	// --- Storage engine ---
	userRepo, productRepo, cartRepo, orderRepo := buildRepositories(cfg)

	// --- RabbitMQ (optional) ---
	var mqClient *rabbitmq.Client
	if cfg.RabbitMQEnabled {
		client, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer client.Close()
		mqClient = client

		if err := client.ConsumeOrderEvents(func(msg amqp.Delivery) error {
			log.Printf("order event %s: %s", msg.Type, string(msg.Body))
			return nil
		}); err != nil {
			log.Printf("Failed to start RabbitMQ consumer: %v", err)
		}
	}

	// --- Seed ---
	seedProducts(productRepo)

	// --- Services ---
	authService := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.AdminEmail)
	productService := services.NewProductService(productRepo)
	cartService := services.NewCartService(cartRepo, productRepo)
	orderService := services.NewOrderService(orderRepo, productRepo, cartRepo, services.SimulatedProcessor{}, mqClient)
	userService := services.NewUserService(userRepo)

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	productHandler := handlers.NewProductHandler(productService)
	cartHandler := handlers.NewCartHandler(cartService)
	orderHandler := handlers.NewOrderHandler(orderService)
	userHandler := handlers.NewUserHandler(userService)

	// --- Fiber app ---
	app := fiber.New()
	app.Use(logger.New())
	app.Use(cors.New())

	api := app.Group("/api")

	// Public routes.
	authHandler.RegisterRoutes(api)
	productHandler.RegisterPublicRoutes(api)

	// Authenticated routes.
	authed := api.Group("", middleware.AuthRequired(authService))
	cartHandler.RegisterRoutes(authed)
	orderHandler.RegisterRoutes(authed)

	// Admin routes.
	admin := authed.Group("", middleware.AdminRequired())
	productHandler.RegisterAdminRoutes(admin)
	orderHandler.RegisterAdminRoutes(admin)
	userHandler.RegisterAdminRoutes(admin)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Start HTTP server ---
	log.Printf("Starting server on %s (storage engine: %s)", cfg.AppPort, cfg.StorageEngine)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}

// buildRepositories wires the configured storage engine behind the shared
// repository interfaces.
func buildRepositories(cfg config.Config) (
	repositories.UserRepository,
	repositories.ProductRepository,
	repositories.CartRepository,
	repositories.OrderRepository,
) {
	switch cfg.StorageEngine {
	case config.EngineGORM:
		db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		if err := db.AutoMigrate(
			&models.User{},
			&models.Product{},
			&models.Cart{},
			&models.CartItem{},
			&models.Order{},
			&models.OrderItem{},
		); err != nil {
			log.Fatalf("AutoMigrate failed: %v", err)
		}
		return repositories.NewGORMUserRepository(db),
			repositories.NewGORMProductRepository(db),
			repositories.NewGORMCartRepository(db),
			repositories.NewGORMOrderRepository(db)

	case config.EngineFile:
		store, err := repositories.NewFileStore(cfg.DataDir)
		if err != nil {
			log.Fatalf("Failed to initialize file store: %v", err)
		}
		return repositories.NewFileUserRepository(store),
			repositories.NewFileProductRepository(store),
			repositories.NewFileCartRepository(store),
			repositories.NewFileOrderRepository(store)

	default:
		log.Fatalf("Unknown storage engine %q (want %q or %q)",
			cfg.StorageEngine, config.EngineGORM, config.EngineFile)
		return nil, nil, nil, nil
	}
}

// seedProducts populates an empty catalog with the starter grocery set.
func seedProducts(repo repositories.ProductRepository) {
	count, err := repo.Count()
	if err != nil {
		log.Printf("Could not check catalog size, skipping seed: %v", err)
		return
	}
	if count > 0 {
		return
	}

	products := []models.Product{
		{Name: "Fresh Bananas", Description: "Sweet and ripe bananas, perfect for snacking", Price: decimal.NewFromFloat(2.99), Category: "Fruits", Stock: 50, Image: "https://images.pexels.com/photos/2252584/pexels-photo-2252584.jpeg?auto=compress&cs=tinysrgb&w=500", IsActive: true},
		{Name: "Organic Apples", Description: "Crisp and juicy organic apples", Price: decimal.NewFromFloat(4.99), Category: "Fruits", Stock: 30, Image: "https://images.pexels.com/photos/1300972/pexels-photo-1300972.jpeg?auto=compress&cs=tinysrgb&w=500", IsActive: true},
		{Name: "Fresh Carrots", Description: "Crunchy orange carrots, great for cooking", Price: decimal.NewFromFloat(1.99), Category: "Vegetables", Stock: 40, Image: "https://images.pexels.com/photos/143133/pexels-photo-143133.jpeg?auto=compress&cs=tinysrgb&w=500", IsActive: true},
		{Name: "Whole Milk", Description: "Fresh whole milk, 1 gallon", Price: decimal.NewFromFloat(3.49), Category: "Dairy", Stock: 25, Image: "https://images.pexels.com/photos/236010/pexels-photo-236010.jpeg?auto=compress&cs=tinysrgb&w=500", IsActive: true},
		{Name: "Whole Wheat Bread", Description: "Nutritious whole wheat bread loaf", Price: decimal.NewFromFloat(2.49), Category: "Bakery", Stock: 20, Image: "https://images.pexels.com/photos/1775043/pexels-photo-1775043.jpeg?auto=compress&cs=tinysrgb&w=500", IsActive: true},
		{Name: "Greek Yogurt", Description: "Creamy Greek yogurt, 32oz container", Price: decimal.NewFromFloat(4.99), Category: "Dairy", Stock: 15, Image: "https://images.pexels.com/photos/1324803/pexels-photo-1324803.jpeg?auto=compress&cs=tinysrgb&w=500", IsActive: true},
	}
	for i := range products {
		if err := repo.Create(&products[i]); err != nil {
			log.Printf("Error seeding product %s: %v", products[i].Name, err)
		}
	}
	log.Printf("Seeded %d products", len(products))
}
