package main

import (
	"context"
	"log"

	"github.com/debaren/debaren-backend/config"
	"github.com/debaren/debaren-backend/internal/handler"
	"github.com/debaren/debaren-backend/internal/mailer"
	"github.com/debaren/debaren-backend/internal/middleware"
	"github.com/debaren/debaren-backend/internal/repository"
	"github.com/debaren/debaren-backend/internal/service"
	"github.com/debaren/debaren-backend/pkg/database"
	"github.com/debaren/debaren-backend/pkg/storage"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found, using environment variables")
	}

	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())

	var store storage.ObjectStore
	if cfg.S3Bucket != "" {
		s3Store, err := storage.NewS3Store(context.Background(), cfg.S3Bucket)
		if err != nil {
			log.Fatalf("failed to initialize object store: %v", err)
		}
		store = s3Store
	} else {
		log.Printf("S3_MEDIA_BUCKET not set, image uploads disabled")
	}

	mail := mailer.NewSMTP(mailer.Config{
		Host:         cfg.SMTPHost,
		Port:         cfg.SMTPPort,
		Username:     cfg.SMTPUsername,
		Password:     cfg.SMTPPassword,
		FromName:     cfg.FromName,
		FromAddress:  cfg.FromEmail,
		ContactEmail: cfg.ContactEmail,
		FrontendURL:  cfg.FrontendURL,
	})

	// Repositories
	venueRepo := repository.NewVenueRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	accountRepo := repository.NewAccountRepository(db)
	placeRepo := repository.NewPlaceRepository(db)
	contentRepo := repository.NewContentRepository(db)
	contactRepo := repository.NewContactMessageRepository(db)

	// Services
	venueSvc := service.NewVenueService(venueRepo, store)
	bookingSvc := service.NewBookingService(bookingRepo, venueRepo, accountRepo, mail)
	contactSvc := service.NewContactService(contactRepo, mail)

	// Echo
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Validator = middleware.NewRequestValidator()
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Printf("%s %s %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "debaren-backend"})
	})

	api := e.Group("/api/v1")
	handler.NewVenueHandler(venueSvc).RegisterRoutes(api)
	handler.NewBookingHandler(bookingSvc).RegisterRoutes(api)
	handler.NewPlaceHandler(placeRepo).RegisterRoutes(api)
	handler.NewContentHandler(contentRepo).RegisterRoutes(api)
	handler.NewContactHandler(contactSvc, contactRepo).RegisterRoutes(api)

	log.Printf("debaren backend starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
