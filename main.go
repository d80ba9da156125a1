package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/scrapiteazy/scrapeazy-backend/database"
	"github.com/scrapiteazy/scrapeazy-backend/internal/handlers"
	"github.com/scrapiteazy/scrapeazy-backend/internal/models"
	"github.com/scrapiteazy/scrapeazy-backend/internal/routes"
	"github.com/scrapiteazy/scrapeazy-backend/internal/services"
	"github.com/scrapiteazy/scrapeazy-backend/internal/storage"
)

func main() {
	// Load .env file for local development
	if os.Getenv("INSTANCE_CONNECTION_NAME") == "" {
		if err := godotenv.Load(".env"); err != nil {
			log.Println("⚠️  No .env file found - checking environment variables")
		}
	}

	// Initialize storage
	var store storage.Store
	if os.Getenv("USE_MEMORY_STORE") == "true" {
		log.Println("⚠️  Using in-memory storage (not for production!)")
		store = storage.NewMemoryStore()
	} else {
		log.Println("📦 Connecting to PostgreSQL database...")
		db, err := database.Connect()
		if err != nil {
			log.Fatal(err)
		}

		log.Println("🔄 Running database migrations...")
		err = db.AutoMigrate(
			&models.Customer{},
			&models.Vendor{},
			&models.Shop{},
			&models.Address{},
			&models.Booking{},
			&models.OTP{},
			&models.DeviceToken{},
			&models.Notification{},
			&models.Scrap{},
		)
		if err != nil {
			log.Fatal("Failed to migrate database:", err)
		}
		log.Println("✅ Database migrations completed!")

		store = storage.NewDatabaseStore(db)
	}

	if os.Getenv("SEED_DATA") == "true" {
		log.Println("🌱 Seeding demo data...")
		if err := database.Seed(store); err != nil {
			log.Fatal("Failed to seed database:", err)
		}
	}

	// SMS delivery (OTP) via Twilio
	var sms services.SMSSender
	if twilioService, err := services.NewTwilioService(); err != nil {
		log.Printf("⚠️  Twilio not configured - OTP delivery disabled: %v", err)
	} else {
		sms = twilioService
		log.Println("✅ Twilio service initialized")
	}

	// Push delivery via Firebase Cloud Messaging
	var push services.PushSender
	if fcmService, err := services.NewFCMService(context.Background()); err != nil {
		log.Printf("⚠️  FCM not configured - push notifications disabled: %v", err)
	} else {
		push = fcmService
		log.Println("✅ FCM service initialized")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Println("⚠️  JWT_SECRET not set - using insecure default")
		jwtSecret = "insecure-dev-secret"
	}

	// Initialize services
	otpService := services.NewOTPService(store, sms)
	authService := services.NewAuthService(store, otpService, jwtSecret)
	directory := services.NewShopDirectory(store)
	notifier := services.NewNotificationService(store, push)
	dispatchService := services.NewDispatchService(store, directory, notifier)
	shopService := services.NewShopService(store)

	// Create fiber app
	app := fiber.New(fiber.Config{
		AppName: "ScrapitEazy Backend v1.0.0",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"success": false,
				"message": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))

	// Root endpoint
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"service": "ScrapitEazy Backend API",
			"version": "1.0.0",
			"status":  "healthy",
			"services": fiber.Map{
				"sms":  sms != nil,
				"push": push != nil,
			},
		})
	})

	// Setup routes
	authHandler := handlers.NewAuthHandler(authService)
	bookingHandler := handlers.NewBookingHandler(dispatchService)
	shopHandler := handlers.NewShopHandler(shopService)
	routes.SetupRoutes(app, authHandler, bookingHandler, shopHandler)

	// Get port from environment or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Handle graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("\n🛑 Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	log.Println("========================================")
	log.Printf("🚀 ScrapitEazy Backend starting on port %s", port)
	log.Printf("📊 Storage: %s", storageType())
	log.Printf("📱 SMS: %s", configured(sms != nil))
	log.Printf("🔔 Push: %s", configured(push != nil))
	log.Println("========================================")

	log.Fatal(app.Listen(":" + port))
}

func storageType() string {
	if os.Getenv("USE_MEMORY_STORE") == "true" {
		return "In-Memory (Testing)"
	}
	return "PostgreSQL Database"
}

func configured(ok bool) string {
	if ok {
		return "Configured"
	}
	return "Not configured"
}
