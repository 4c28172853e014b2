package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"regform/internal/config"
	"regform/internal/handlers"
	"regform/internal/models"
	"regform/internal/repositories"
	"regform/internal/services"
	"regform/internal/storage"
	"regform/pkg/rabbitmq"
)

// newApp wires the submission pipeline into a Fiber app: CORS and
// request logging, the liveness root, static serving of stored ID
// proofs, and the form endpoint. publisher may be nil to disable event
// publishing.
func newApp(cfg config.Config, db *gorm.DB, publisher services.EventPublisher) (*fiber.App, error) {
	attachmentStore, err := storage.NewAttachmentStore(cfg.UploadDir)
	if err != nil {
		return nil, err
	}

	submissionRepo := repositories.NewGORMSubmissionRepository(db)
	formService := services.NewFormService(submissionRepo, publisher)
	formHandler := handlers.NewFormHandler(formService, attachmentStore)

	app := fiber.New()

	// --- Middleware ---
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigin,
	}))

	// --- Liveness ---
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"success": true,
			"message": "hello world",
		})
	})

	// Stored ID proofs are publicly retrievable under /uploads.
	app.Static("/uploads", attachmentStore.Dir())

	// --- API Routes ---
	api := app.Group("/api")
	formHandler.RegisterRoutes(api)

	return app, nil
}

func main() {
	cfg := config.Load()

	// --- Database ---
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(&models.Submission{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// --- Event publisher (optional) ---
	var publisher services.EventPublisher
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
		publisher = mqClient
	}

	app, err := newApp(cfg, db, publisher)
	if err != nil {
		log.Fatalf("Failed to build app: %v", err)
	}

	// --- Start HTTP Server ---
	log.Printf("Starting server on %s", cfg.AppPort)

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
