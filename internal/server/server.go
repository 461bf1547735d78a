// Package server contains the HTTP handlers and routing for the API.
package server

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"soapbox/internal/config"
	"soapbox/internal/database"
	"soapbox/internal/middleware"
	"soapbox/internal/models"
	"soapbox/internal/repository"
	"soapbox/internal/service"
	"soapbox/internal/token"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	app            *fiber.App
	promMiddleware *fiberprometheus.FiberPrometheus
	userRepo       repository.UserRepository
	postRepo       repository.PostRepository
	voteRepo       repository.VoteRepository
	tokens         *token.Service
	userService    *service.UserService
	postService    *service.PostService
	voteService    *service.VoteService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	return NewServerWithDeps(cfg, db)
}

// NewServerWithDeps creates a Server using an already-initialized database.
// Use this in tests or when a bootstrap layer establishes the DB and
// optionally performs explicit seeding.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB) (*Server, error) {
	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	voteRepo := repository.NewVoteRepository(db)

	prom := middleware.InitMetrics("soapbox-api")

	server := &Server{
		config:         cfg,
		db:             db,
		promMiddleware: prom,
		userRepo:       userRepo,
		postRepo:       postRepo,
		voteRepo:       voteRepo,
		tokens:         token.NewService(cfg.JWTSecret, cfg.TokenExpireMinutes),
	}
	server.userService = service.NewUserService(server.userRepo, server.tokens)
	server.postService = service.NewPostService(server.postRepo)
	server.voteService = service.NewVoteService(server.postRepo, server.voteRepo)

	return server, nil
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Context Middleware to propagate Request ID and User ID
	app.Use(middleware.ContextMiddleware())

	// Prometheus Metrics
	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	// Security headers
	app.Use(helmet.New())

	// Structured Logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	if s.config.TracingEnabled {
		app.Use(middleware.TracingMiddleware())
	}

	// CORS middleware should run last so browser clients still receive CORS
	// headers on error responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "*"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		MaxAge:       86400, // 24 hours
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	app.Get("/", s.Root)

	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	// Auth
	app.Post("/login", s.Login)

	// Users: registration and profile lookup are public
	users := app.Group("/users")
	users.Post("/", s.Register)
	users.Get("/:id", s.GetUser)

	// Posts: all operations require authentication
	posts := app.Group("/posts", s.AuthRequired())
	posts.Get("/", s.GetPosts)
	posts.Post("/", s.CreatePost)
	posts.Get("/:id", s.GetPost)
	posts.Put("/:id", s.UpdatePost)
	posts.Delete("/:id", s.DeletePost)

	// Votes
	votes := app.Group("/votes", s.AuthRequired())
	votes.Post("/", s.CreateVote)
}

// Root is a simple hello endpoint useful as a smoke check.
func (s *Server) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Hello World"})
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overallStatus,
		"checks": fiber.Map{
			"database": dbStatus,
		},
		"time": time.Now(),
	})
}

// AuthRequired returns the authentication middleware. It validates the
// Bearer token and confirms the subject still exists before letting the
// request through.
func (s *Server) AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		tokenString := ""
		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				tokenString = parts[1]
			}
		}

		if tokenString == "" {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Not authenticated"))
		}

		userID, err := s.tokens.Verify(tokenString)
		if err != nil {
			return models.RespondAppError(c, err)
		}

		// A token may outlive its user; treat that the same as a bad token.
		user, err := s.userRepo.GetByID(c.Context(), userID)
		if err != nil || user == nil {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Could not validate credentials"))
		}

		// Store user ID in context
		c.Locals("userID", userID)
		// Sync to UserContext for logging and downstream services
		ctx := context.WithValue(c.UserContext(), middleware.UserIDKey, userID)
		c.SetUserContext(ctx)

		return c.Next()
	}
}

// Start starts the server
func (s *Server) Start() error {
	app := fiber.New(fiber.Config{
		AppName: "Soapbox API",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		},
	})
	s.app = app

	s.SetupMiddleware(app)
	s.SetupRoutes(app)

	log.Printf("Server starting on port %s...", s.config.Port)
	return app.Listen(":" + s.config.Port)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			log.Printf("error shutting down HTTP server: %v", err)
		}
	}

	if sqlDB, err := s.db.DB(); err == nil {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Printf("error closing sql DB: %v", cerr)
		}
	}

	log.Println("Server shutdown complete")
	return nil
}
