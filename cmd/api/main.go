package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/sefazor/photobooth-backend/internal/config"
	"github.com/sefazor/photobooth-backend/internal/handler"
	"github.com/sefazor/photobooth-backend/internal/repository"
	"github.com/sefazor/photobooth-backend/internal/service"
	"github.com/sefazor/photobooth-backend/pkg/database"
	"github.com/sefazor/photobooth-backend/pkg/email"
	"github.com/sefazor/photobooth-backend/pkg/qrcode"
	"github.com/sefazor/photobooth-backend/pkg/storage"
	"github.com/sefazor/photobooth-backend/pkg/utils"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	// Config'i yükle
	cfg := config.LoadConfig()

	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer zapLogger.Sync()

	// Initialize database (migrations dahil)
	db := database.NewDatabase()

	// Repositories
	eventRepo := repository.NewEventRepository(db)
	photoRepo := repository.NewPhotoRepository(db)

	// Storage service
	s3Storage, err := storage.NewS3Storage(cfg)
	if err != nil {
		log.Fatal("Failed to initialize S3 storage:", err)
	}

	// Email service
	emailService := email.NewEmailService(
		cfg.Email.ResendAPIKey,
		cfg.Email.FromAddress,
		cfg.Email.FromName,
		zapLogger,
	)

	// QR service
	qrService := qrcode.NewQRService()

	// Services
	eventService := service.NewEventService(eventRepo)
	photoService := service.NewPhotoService(photoRepo, s3Storage, cfg.MaxUploadSize, zapLogger)

	// Validator
	validator := utils.NewValidator()

	// Handlers
	eventHandler := handler.NewEventHandler(eventService, photoService, emailService, qrService, validator, cfg)
	photoHandler := handler.NewPhotoHandler(photoService, eventService)

	// Router
	app := fiber.New(fiber.Config{
		BodyLimit: int(cfg.MaxUploadSize) + 1024*1024,
	})

	// Global middleware'ler önce tanımlanmalı
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST",
	}))
	app.Use(logger.New())
	app.Use(limiter.New(limiter.Config{
		Max:        cfg.RateLimit.Max,
		Expiration: cfg.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}))

	handler.RegisterRoutes(app, eventHandler, photoHandler)

	// Start server
	log.Fatal(app.Listen(":" + cfg.Port))
}
