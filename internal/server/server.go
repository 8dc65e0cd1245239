package server

import (
	"context"
	"fmt"
	"log"
	"time"

	"newsroom/internal/cache"
	"newsroom/internal/config"
	"newsroom/internal/database"
	"newsroom/internal/middleware"
	"newsroom/internal/models"
	"newsroom/internal/observability"
	"newsroom/internal/repository"
	"newsroom/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	userRepo       repository.UserRepository
	publisherRepo  repository.PublisherRepository
	articleRepo    repository.ArticleRepository
	newsletterRepo repository.NewsletterRepository
	subRepo        repository.SubscriptionRepository

	accountService      *service.AccountService
	subscriptionService *service.SubscriptionService
	contentService      *service.ContentService
	editorialService    *service.EditorialService
	feedService         *service.FeedService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)

	return NewServerWithDB(cfg, db), nil
}

// NewServerWithDB wires a server around an existing database handle.
// Used by tests to inject an in-memory database.
func NewServerWithDB(cfg *config.Config, db *gorm.DB) *Server {
	middleware.InitMiddleware(cfg)

	s := &Server{
		config:         cfg,
		db:             db,
		redis:          cache.GetClient(),
		userRepo:       repository.NewUserRepository(db),
		publisherRepo:  repository.NewPublisherRepository(db),
		articleRepo:    repository.NewArticleRepository(db),
		newsletterRepo: repository.NewNewsletterRepository(db),
		subRepo:        repository.NewSubscriptionRepository(db),
	}

	feedTTL := time.Duration(cfg.FeedCacheTTLSeconds) * time.Second

	s.accountService = service.NewAccountService(s.userRepo)
	s.subscriptionService = service.NewSubscriptionService(s.userRepo, s.subRepo, s.publisherRepo)
	s.contentService = service.NewContentService(s.userRepo, s.articleRepo, s.newsletterRepo, s.publisherRepo)
	s.editorialService = service.NewEditorialService(s.userRepo, s.articleRepo)
	s.feedService = service.NewFeedService(s.userRepo, s.subRepo, s.articleRepo, feedTTL)

	return s
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Request ID for tracing
	app.Use(requestid.New())

	// Security headers
	app.Use(helmet.New())

	// Recover from handler panics
	app.Use(recover.New())

	// Structured Logging middleware
	app.Use(middleware.StructuredLogger())

	// Request-level Prometheus metrics
	prom := observability.HTTPMetrics("newsroom-api")
	prom.RegisterAt(app, "/metrics")
	app.Use(prom.Middleware)

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))

	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Health check
	api.Get("/", s.HealthCheck)

	// Runtime monitor
	api.Get("/monitor", monitor.New(monitor.Config{
		Title: "Newsroom API Metrics",
	}))

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/signup", middleware.RateLimit(s.redis, 3, 10*time.Minute, "signup"), s.Signup)
	auth.Post("/login", middleware.RateLimit(s.redis, 10, 5*time.Minute, "login"), s.Login)

	// Protected routes
	protected := api.Group("", middleware.AuthRequired)

	// User routes
	users := protected.Group("/users")
	users.Get("/me", s.GetMyProfile)
	users.Put("/me/role", s.ChangeMyRole)

	// Publisher routes
	publishers := protected.Group("/publishers")
	publishers.Get("/", s.GetPublishers)
	publishers.Post("/", s.CreatePublisher)
	// Specific /:id/:resource routes BEFORE generic /:id route
	publishers.Post("/:id/subscription", s.TogglePublisherSubscription)
	publishers.Get("/:id/articles", s.GetPublisherArticles)
	publishers.Get("/:id", s.GetPublisher)

	// Journalist routes (subscription target + public article listing)
	journalists := protected.Group("/journalists")
	journalists.Post("/:id/subscription", s.ToggleJournalistSubscription)
	journalists.Get("/:id/articles", s.GetJournalistArticles)

	// Reader feed
	protected.Get("/feed", s.GetFeed)

	// Article routes
	articles := protected.Group("/articles")
	articles.Get("/mine", s.GetMyArticles)
	articles.Get("/pending", s.GetPendingArticles)
	articles.Post("/", middleware.RateLimit(s.redis, 10, time.Minute, "create_article"), s.CreateArticle)
	articles.Post("/:id/approve", s.ApproveArticle)
	articles.Put("/:id", s.UpdateArticle)
	articles.Delete("/:id", s.DeleteArticle)

	// Newsletter routes (no approval workflow)
	newsletters := protected.Group("/newsletters")
	newsletters.Get("/mine", s.GetMyNewsletters)
	newsletters.Post("/", middleware.RateLimit(s.redis, 10, time.Minute, "create_newsletter"), s.CreateNewsletter)
	newsletters.Put("/:id", s.UpdateNewsletter)
	newsletters.Delete("/:id", s.DeleteNewsletter)
}

// HealthCheck handles health check requests
func (s *Server) HealthCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	redisStatus := "healthy"
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	} else {
		redisStatus = "unavailable"
	}

	status := fiber.StatusOK
	if dbStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
	}

	return c.Status(status).JSON(fiber.Map{
		"message": "Newsroom",
		"version": "1.0.0",
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}

// App builds a configured Fiber application ready to listen.
func (s *Server) App() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "Newsroom API",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		},
	})

	s.SetupMiddleware(app)
	s.SetupRoutes(app)
	return app
}

// Shutdown gracefully releases server resources.
func (s *Server) Shutdown(ctx context.Context) error {
	if sqlDB, err := s.db.DB(); err == nil {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Printf("error closing sql DB: %v", cerr)
		}
	}

	if s.redis != nil {
		if rerr := s.redis.Close(); rerr != nil {
			log.Printf("error closing redis: %v", rerr)
		}
	}

	log.Println("Server shutdown complete")
	return nil
}
