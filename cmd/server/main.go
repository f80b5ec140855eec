package main

import (
	"database/sql"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	_ "github.com/lib/pq"

	"github.com/rudhirsetu/website-backend/internal/application"
	"github.com/rudhirsetu/website-backend/internal/cms"
	"github.com/rudhirsetu/website-backend/internal/config"
	"github.com/rudhirsetu/website-backend/internal/email"
	"github.com/rudhirsetu/website-backend/internal/infrastructure/repository"
	handlers "github.com/rudhirsetu/website-backend/internal/interfaces/http"
	"github.com/rudhirsetu/website-backend/internal/ogimage"
	"github.com/rudhirsetu/website-backend/internal/scheduler"
	services "github.com/rudhirsetu/website-backend/internal/service"
)

const (
	orgName        = "Rudhirsetu Seva Sanstha"
	orgTagline     = "Empowering Lives Through Blood Donation & Healthcare"
	defaultOGTitle = "Rudhirsetu Seva Sanstha"
	defaultOGDesc  = "Blood donation, eye care and cancer awareness camps across Panvel and beyond."
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	db, err := sql.Open("postgres", cfg.GetDBConnString())
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Error pinging database: %v", err)
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept,Authorization",
		AllowCredentials: true,
		ExposeHeaders:    "Content-Length",
		MaxAge:           86400,
	}))

	// CMS-backed content
	cmsClient := cms.NewClient(cfg.CMSBaseURL, cfg.CMSToken)
	contentCache := application.NewContentCache(cfg.CacheTTL)

	imageRepo := repository.NewImageRepository(cmsClient)
	galleryService := application.NewGalleryService(imageRepo, contentCache)
	galleryHandler := handlers.NewGalleryHandler(galleryService)

	eventRepo := repository.NewEventRepository(cmsClient)
	eventService := application.NewEventService(eventRepo)
	eventHandler := handlers.NewEventHandler(eventService)

	settingsRepo := repository.NewSettingsRepository(cmsClient)
	settingsService := application.NewSettingsService(settingsRepo, contentCache)
	settingsHandler := handlers.NewSettingsHandler(settingsService)

	// Social preview cards
	composer := ogimage.NewComposer(ogimage.FileLoader{Dir: cfg.AssetsDir}, orgName, orgTagline)
	ogHandler := handlers.NewOGHandler(composer, eventRepo, defaultOGTitle, defaultOGDesc)

	// Email Client
	emailClient, err := email.NewClient(
		cfg.SMTPHost,
		cfg.SMTPPort,
		cfg.SMTPUser,
		cfg.SMTPPassword,
		cfg.SMTPFromName,
		cfg.SMTPFromEmail,
	)
	if err != nil {
		log.Printf("Warning: Email client initialization failed: %v", err)
		emailClient = nil // continue without email
	}

	// Contact form
	contactLimiter := application.NewRateLimiter(time.Minute, 3)
	contactRepo := repository.NewContactRepository(db)
	contactService := application.NewContactService(contactRepo, emailClient, contactLimiter, cfg.ContactNotifyEmail)
	contactHandler := handlers.NewContactHandler(contactService)

	// S3 uploads
	s3Service, err := services.NewS3Service(cfg.S3BucketName, cfg.AWSRegion)
	if err != nil {
		log.Printf("Warning: S3 service initialization failed: %v", err)
		s3Service = nil
	}

	api := app.Group("/api")

	gallery := api.Group("/gallery")
	gallery.Get("/", galleryHandler.GetPage)
	gallery.Get("/featured", galleryHandler.GetFeatured)
	gallery.Get("/categories", galleryHandler.GetCategories)

	events := api.Group("/events")
	events.Get("/upcoming", eventHandler.GetUpcoming)
	events.Get("/past", eventHandler.GetPast)
	events.Get("/:id", eventHandler.GetByID)

	api.Get("/settings", settingsHandler.Get)

	og := api.Group("/og")
	og.Get("/", ogHandler.Generic)
	og.Get("/event/:id", ogHandler.Event)

	contact := api.Group("/contact")
	contact.Post("/", contactHandler.Create)
	contact.Get("/", contactHandler.List)
	contact.Patch("/:id/responded", contactHandler.MarkResponded)

	if s3Service != nil {
		s3Handler := handlers.NewS3Handler(s3Service)
		api.Post("/upload/images", s3Handler.HandleUploadImage)
	}

	contentScheduler := scheduler.NewContentScheduler(settingsService, galleryService, cfg.RefreshInterval)
	contentScheduler.Start()
	defer contentScheduler.Stop()

	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := app.Listen(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
