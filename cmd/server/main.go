// Command main is the entry point for the Soapbox API server.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"soapbox/internal/config"
	"soapbox/internal/observability"
	"soapbox/internal/server"

	"github.com/gofiber/fiber/v2"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Tracing is opt-in; the shutdown func flushes pending spans.
	if cfg.TracingEnabled {
		shutdownTracing, err := observability.InitTracing(observability.TracingConfig{
			ServiceName:  "soapbox-api",
			Environment:  cfg.Env,
			Enabled:      true,
			Exporter:     cfg.TracingExporter,
			OTLPEndpoint: cfg.TracingOTLPEndpoint,
			SamplerRatio: cfg.TracingSamplerRatio,
		})
		if err != nil {
			log.Fatalf("Failed to initialize tracing: %v", err)
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdownTracing(ctx); err != nil {
				log.Printf("Tracing shutdown error: %v", err)
			}
		}()
	}

	// Create server with dependency injection
	srv, err := server.NewServer(cfg)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	// Initialize Fiber app
	app := fiber.New(fiber.Config{
		AppName: "Soapbox API",
	})

	// Setup middleware and routes
	srv.SetupMiddleware(app)
	srv.SetupRoutes(app)

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down server...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := app.ShutdownWithContext(ctx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}

		// Shutdown server resources
		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("Server resource shutdown error: %v", err)
		}
	}()

	// Start server
	log.Printf("Server starting on port %s...", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
