package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	httpapi "github.com/avolkoff/historical-weather/internal/api/http"
	"github.com/avolkoff/historical-weather/internal/config"
	"github.com/avolkoff/historical-weather/internal/history"
	"github.com/avolkoff/historical-weather/internal/location"
	"github.com/avolkoff/historical-weather/internal/store"
	"github.com/avolkoff/historical-weather/internal/wwo"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}

	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Shared HTTP client for outbound provider calls. The timeout is the
	// only bounded-wait behaviour; failed requests are not retried.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	client := wwo.NewClient(httpClient, cfg.WWOAPIKey)

	// Optional city -> coordinates resolution.
	var resolver history.LocationResolver
	if cfg.GeocoderAPIKey != "" {
		resolver = location.NewResolver(cfg.GeocoderAPIKey)
	}

	// In-memory run store with configured retention.
	memStore := store.NewMemoryStore(cfg.StoreMaxHistory, cfg.StoreMaxAge)

	// Core service orchestrating extraction runs.
	service := history.NewService(client, memStore, resolver, cfg.WWOAPIKey, cfg.OutputDir)

	// One-shot mode: run a single extraction and exit.
	if cfg.Job != nil {
		runOnce(service, cfg.Job)
		return
	}

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "historical-weather",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          30 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())

	// Basic health endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "historical-weather",
		})
	})

	// API routes.
	httpapi.RegisterRoutes(app, service)

	// Start server with graceful shutdown
	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}

func runOnce(service *history.Service, job *config.JobConfig) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	run, err := service.Extract(ctx, history.ExtractRequest{
		Location:  job.Location,
		Country:   job.Country,
		StartDate: job.StartDate,
		EndDate:   job.EndDate,
		Frequency: job.Frequency,
		Verbose:   job.Verbose,
	})
	if err != nil {
		log.Fatalf("extraction failed: %v", err)
	}

	skipped := 0
	for _, d := range run.Diagnostics {
		if d.Skipped {
			skipped++
		}
	}
	log.Printf("run %s: extracted %d rows for %s (%s to %s), %d days skipped",
		run.ID, len(run.Table.Rows), run.Location, run.StartDate, run.EndDate, skipped)
}
