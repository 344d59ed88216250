package main

import (
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/streadway/amqp"

	"squadtrack/internal/handlers"
	"squadtrack/internal/middleware"
	"squadtrack/internal/models"
	"squadtrack/internal/repositories"
	"squadtrack/internal/services"
	"squadtrack/pkg/rabbitmq"

	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// loadConfig sets defaults and pulls overrides from the environment.
func loadConfig() {
	viper.SetDefault("PORT", "3000")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("JWT_SECRET", "dev_secret_change_me")
	viper.SetDefault("DB_NAME", "squadtrack.db")
	viper.SetDefault("DATABASE_DSN", "")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.AutomaticEnv() // Load environment variables
}

// openDatabase selects the storage backend: postgres when DATABASE_DSN is
// set, in-memory sqlite under the test environment, a sqlite file otherwise.
func openDatabase() (*gorm.DB, error) {
	if dsn := viper.GetString("DATABASE_DSN"); dsn != "" {
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}
	if viper.GetString("APP_ENV") == "test" {
		return gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	}
	return gorm.Open(sqlite.Open(viper.GetString("DB_NAME")), &gorm.Config{})
}

// NewApp builds the configured Fiber application with all repositories,
// services, handlers, and the route policy wired up. The returned RabbitMQ
// client is nil when no broker is configured.
func NewApp() (*fiber.App, *services.AuthService, *rabbitmq.Client, error) {
	loadConfig()

	db, err := openDatabase()
	if err != nil {
		return nil, nil, nil, err
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Player{},
		&models.PerformanceStat{},
		&models.TrainingSession{},
		&models.CoachEvaluation{},
	); err != nil {
		return nil, nil, nil, err
	}

	// The broker is optional: without RABBITMQ_URL the services simply skip
	// event publishing.
	var mqClient *rabbitmq.Client
	if mqURL := viper.GetString("RABBITMQ_URL"); mqURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: mqURL})
		if err != nil {
			return nil, nil, nil, err
		}
	} else {
		log.Println("RABBITMQ_URL not set, roster event publishing disabled")
	}

	// Repositories
	userRepo := repositories.NewGORMUserRepository(db)
	playerRepo := repositories.NewGORMPlayerRepository(db)
	statRepo := repositories.NewGORMStatRepository(db)
	sessionRepo := repositories.NewGORMSessionRepository(db)
	evalRepo := repositories.NewGORMEvaluationRepository(db)

	// Services
	authService := services.NewAuthService(userRepo, viper.GetString("JWT_SECRET"))
	playerService := services.NewPlayerService(playerRepo, mqClient)
	statService := services.NewStatService(statRepo, playerRepo)
	sessionService := services.NewSessionService(sessionRepo, playerRepo)
	evalService := services.NewEvaluationService(evalRepo, playerRepo, mqClient)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	playerHandler := handlers.NewPlayerHandler(playerService)
	statHandler := handlers.NewStatHandler(statService)
	sessionHandler := handlers.NewSessionHandler(sessionService)
	evalHandler := handlers.NewEvaluationHandler(evalService)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New()) // Request logger

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":      "healthy",
			"message":     "squadtrack API is running",
			"environment": viper.GetString("APP_ENV"),
			"timestamp":   time.Now().Format(time.RFC3339),
		})
	})

	// Public routes
	authHandler.RegisterRoutes(app)
	api := app.Group("/api")
	api.Post("/logout", authHandler.HandleLogout)

	// Everything else under /api requires a verified token. Role gates are
	// applied per route: player update, training-session create, and
	// evaluation create are coach-only.
	protected := api.Group("", middleware.AuthRequired(authService))
	coachOnly := middleware.RoleRequired(models.RoleCoach)
	playerHandler.RegisterRoutes(protected, coachOnly)
	statHandler.RegisterRoutes(protected)
	sessionHandler.RegisterRoutes(protected, coachOnly)
	evalHandler.RegisterRoutes(protected, coachOnly)

	// Unknown routes
	app.Use(handlers.NotFoundHandler)

	if viper.GetString("APP_ENV") == "development" {
		seedDemoData(authService, playerRepo, statRepo)
	}

	return app, authService, mqClient, nil
}

// seedDemoData populates a fresh development database with a coach account
// and a couple of sample players and stat lines.
func seedDemoData(authService *services.AuthService, playerRepo repositories.PlayerRepository, statRepo repositories.StatRepository) {
	existing, err := playerRepo.GetAll()
	if err != nil || len(existing) > 0 {
		return
	}

	coach := models.User{
		Name:     "Demo Coach",
		Email:    "coach@squadtrack.local",
		Password: "coachpass",
		Role:     models.RoleCoach,
	}
	if err := authService.RegisterUser(&coach); err != nil {
		log.Printf("Error seeding coach account: %v", err)
	} else {
		log.Printf("Seeded coach account: %s", coach.Email)
	}

	players := []models.Player{
		{Name: "Aiden Torres", Age: 21, Position: "Forward", Team: "First Team"},
		{Name: "Marta Keller", Age: 24, Position: "Midfielder", Team: "First Team"},
	}
	for i := range players {
		if err := playerRepo.Create(&players[i]); err != nil {
			log.Printf("Error seeding player %s: %v", players[i].Name, err)
			continue
		}
		log.Printf("Seeded player: %s (ID: %s)", players[i].Name, players[i].ID)

		stat := models.PerformanceStat{
			PlayerID:      players[i].ID,
			Goals:         i + 1,
			Assists:       i,
			PassAccuracy:  82.5,
			MinutesPlayed: 90,
			MatchDate:     "2025-08-01",
		}
		if err := statRepo.Create(&stat); err != nil {
			log.Printf("Error seeding stat for player %s: %v", players[i].Name, err)
		}
	}
}

func main() {
	app, _, mqClient, err := NewApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	if mqClient != nil {
		defer mqClient.Close()

		// Drain roster events in the background. A real deployment would add
		// reconnection handling here.
		go func() {
			log.Println("Starting RabbitMQ consumer for roster events...")
			messageHandler := func(msg amqp.Delivery) error {
				log.Printf("Received roster event (Tag: %d): %s", msg.DeliveryTag, string(msg.Body))
				return nil // Return nil to acknowledge
			}
			if consumerErr := mqClient.ConsumeEvents(messageHandler); consumerErr != nil {
				log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
			}
		}()
	}

	addr := ":" + strings.TrimPrefix(viper.GetString("PORT"), ":")
	log.Printf("Starting server on %s", addr)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(addr); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}
