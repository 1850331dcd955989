package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"sports-community-system/handlers"
	"sports-community-system/middleware"
	"sports-community-system/models"
	"sports-community-system/services"
	"sports-community-system/utils"
	"sports-community-system/workers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, reading environment variables directly")
	}

	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024, // 10MB, enough for event banners
	})

	// Only the Gateway talks to this service.
	app.Use(middleware.GatewayAuthMiddleware())

	allowedOriginsEnv := os.Getenv("ALLOWED_ORIGINS")
	if allowedOriginsEnv == "" {
		log.Println("⚠️  ALLOWED_ORIGINS environment variable not set, using default: http://localhost:3000")
		allowedOriginsEnv = "http://localhost:3000"
	}
	allowedOriginsList := strings.Split(allowedOriginsEnv, ",")
	for i, origin := range allowedOriginsList {
		allowedOriginsList[i] = strings.TrimSpace(origin)
	}
	allowedOriginsString := strings.Join(allowedOriginsList, ",")

	app.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOriginsString,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS,PATCH,HEAD",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Requested-With, X-Request-ID, User-Agent, Cache-Control, X-User-ID, X-User-Role, X-Service-Token",
		ExposeHeaders:    "Content-Length, Content-Type, Authorization, X-Request-ID",
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	}))

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL environment variable not set")
	}

	if err := utils.InitStorage(); err != nil {
		log.Fatal("failed to initialize object storage client:", err)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Event{},
		&models.Registration{},
		&models.Donation{},
	); err != nil {
		log.Fatal("failed to migrate database:", err)
	}

	userService := services.NewUserService(db)
	eventService := services.NewEventService(db)
	registrationService := services.NewRegistrationService(db)
	donationService := services.NewDonationService(db)
	leaderboardService := services.NewLeaderboardService(db)
	statsService := services.NewStatsService(db)

	authServiceURL := os.Getenv("AUTH_SERVICE_URL")
	if authServiceURL == "" {
		log.Fatal("AUTH_SERVICE_URL environment variable not set")
	}
	eventsServiceToken := os.Getenv("EVENTS_SERVICE_TOKEN")
	if eventsServiceToken == "" {
		log.Fatal("EVENTS_SERVICE_TOKEN environment variable not set")
	}

	syncWorker := workers.NewAccountSyncWorker(db, authServiceURL, "/api/v1/internal/accounts", eventsServiceToken)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Println("Starting Account Sync Worker...")
		syncWorker.Start(ctx)
	}()

	eventService.StartReviewDigest()

	handlers.SetupUserRoutes(app, userService)
	handlers.SetupEventRoutes(app, eventService)
	handlers.SetupRegistrationRoutes(app, registrationService)
	handlers.SetupDonationRoutes(app, donationService)
	handlers.SetupLeaderboardRoutes(app, leaderboardService)
	handlers.SetupAdminRoutes(app, eventService, userService, statsService)

	go func() {
		if err := app.Listen(":5300"); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Println("✅ Server running on http://localhost:5300")
	log.Println("✅ Account Sync Worker running")
	log.Println("✅ GatewayAuthMiddleware enforced globally")
	log.Printf("✅ CORS configured for origins: %s", allowedOriginsString)

	<-ctx.Done()
	log.Println("Shutting down server...")
}
