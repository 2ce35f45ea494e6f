package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"parrotshop/internal/bot"
	"parrotshop/internal/handlers"
	"parrotshop/internal/middleware"
	"parrotshop/internal/models"
	"parrotshop/internal/repositories"
	"parrotshop/internal/services"
	"parrotshop/pkg/events"
	"parrotshop/pkg/telegram"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("DATABASE_PATH", "parrot_shop.db")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.SetDefault("TELEGRAM_BOT_TOKEN", "")
	viper.SetDefault("TELEGRAM_CHAT_ID", "")
	viper.SetDefault("TELEGRAM_BOT_USERNAME", "parrot_shop_bot")
	viper.SetDefault("TELEGRAM_POLLING", false)
	viper.SetDefault("BASE_URL", "http://localhost:8080")
	viper.SetDefault("COURIER_FEE", 300)
	viper.SetDefault("FREE_DELIVERY_THRESHOLD", 3000)
	viper.SetDefault("JWT_SECRET", "dev_jwt_secret")
	viper.SetDefault("ADMIN_USERNAME", "admin")
	viper.SetDefault("ADMIN_PASSWORD_HASH", "")
	viper.AutomaticEnv()

	// --- Database ---
	db, err := openDatabase()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}, &models.Order{}, &models.OrderItem{}, &models.Review{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// --- Repositories ---
	productRepo := repositories.NewGORMProductRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)
	reviewRepo := repositories.NewGORMReviewRepository(db)

	// --- Event publisher (optional) ---
	var publisher services.EventPublisher
	if url := viper.GetString("RABBITMQ_URL"); url != "" {
		mqClient, err := events.NewClient(events.Config{URL: url})
		if err != nil {
			log.Printf("Warning: RabbitMQ unavailable, order events disabled: %v", err)
		} else {
			defer mqClient.Close()
			publisher = mqClient

			// Back-office consumer: currently just logs the event
			// stream so operators can tail it.
			if err := mqClient.Consume(func(msg amqp.Delivery) error {
				log.Printf("Order event %s: %s", msg.Type, string(msg.Body))
				return nil
			}); err != nil {
				log.Printf("Failed to start order event consumer: %v", err)
			}
		}
	}

	// --- Services ---
	catalogService := services.NewCatalogService(productRepo)
	orderService := services.NewOrderService(orderRepo, productRepo, publisher, services.PricingConfig{
		CourierFee:            viper.GetInt("COURIER_FEE"),
		FreeDeliveryThreshold: viper.GetInt("FREE_DELIVERY_THRESHOLD"),
	})
	reviewService := services.NewReviewService(reviewRepo)
	authService := services.NewAuthService(
		viper.GetString("ADMIN_USERNAME"),
		viper.GetString("ADMIN_PASSWORD_HASH"),
		viper.GetString("JWT_SECRET"),
	)

	// --- Telegram bot (optional) ---
	var shopBot *bot.Bot
	var tgClient *telegram.Client
	if token := viper.GetString("TELEGRAM_BOT_TOKEN"); token != "" {
		tgClient = telegram.NewClient(telegram.Config{Token: token})
		shopBot = bot.New(tgClient, orderService, bot.Config{
			AdminChatID: viper.GetString("TELEGRAM_CHAT_ID"),
			BotUsername: viper.GetString("TELEGRAM_BOT_USERNAME"),
			BaseURL:     viper.GetString("BASE_URL"),
		})
		orderService.SetNotifier(shopBot)
	} else {
		log.Println("Telegram bot not configured. Set TELEGRAM_BOT_TOKEN to enable order confirmations.")
	}

	// --- Seed data ---
	seedDatabase(catalogService, reviewService)

	// --- Handlers ---
	productHandler := handlers.NewProductHandler(catalogService)
	orderHandler := handlers.NewOrderHandler(orderService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	authHandler := handlers.NewAuthHandler(authService)
	webhookHandler := handlers.NewWebhookHandler(shopBot)

	// --- Fiber app ---
	app := fiber.New()
	app.Use(logger.New())

	adminGuard := middleware.AdminRequired(authService)

	api := app.Group("/api")
	productHandler.RegisterRoutes(api, adminGuard)
	orderHandler.RegisterRoutes(api, adminGuard)
	reviewHandler.RegisterRoutes(api)
	authHandler.RegisterRoutes(api)
	webhookHandler.RegisterRoutes(app)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Telegram polling loop ---
	pollerCtx, stopPoller := context.WithCancel(context.Background())
	defer stopPoller()
	if shopBot != nil && viper.GetBool("TELEGRAM_POLLING") {
		poller := bot.NewPoller(tgClient, shopBot, 100*time.Millisecond)
		go poller.Run(pollerCtx)
	}

	// --- Start HTTP server ---
	appPort := viper.GetString("APP_PORT")
	log.Printf("Starting server on port %s", appPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	stopPoller()
	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}

// openDatabase connects to PostgreSQL when DATABASE_URL is set and falls
// back to a local SQLite file otherwise.
func openDatabase() (*gorm.DB, error) {
	if dsn := viper.GetString("DATABASE_URL"); dsn != "" {
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}
	return gorm.Open(sqlite.Open(viper.GetString("DATABASE_PATH")), &gorm.Config{})
}
