// Package server wires the HTTP API: the assembled feed, the gift guide,
// per-bot histories, and the bot directory.
package server

import (
	"context"
	"fmt"
	"log"
	"time"

	"northpole/internal/actor"
	"northpole/internal/cache"
	"northpole/internal/config"
	"northpole/internal/database"
	"northpole/internal/middleware"
	"northpole/internal/persona"
	"northpole/internal/provider"
	"northpole/internal/repository"
	"northpole/internal/scheduler"

	"github.com/ansrivas/fiberprometheus/v2"
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

// Server holds all dependencies and provides handlers.
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	promMiddleware *fiberprometheus.FiberPrometheus
	botRepo        repository.BotRepository
	postRepo       repository.PostRepository
	scheduler      *scheduler.Scheduler
}

// NewServer creates a server instance, connecting the database, Redis, and
// the content providers, and building one actor per registered persona.
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)

	text, err := provider.NewGeminiGenerator(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}
	media := provider.NewPexelsClient(cfg.PexelsAPIKey)
	news := provider.NewRSSFetcher()

	return NewServerWithDeps(cfg, db, cache.GetClient(), text, media, news)
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes DB/Redis itself.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client,
	text provider.TextGenerator, media provider.MediaSearcher, news provider.Syndicator) (*Server, error) {

	botRepo := repository.NewBotRepository(db)
	postRepo := repository.NewPostRepository(db)

	var targets []scheduler.Target
	for _, p := range persona.Registry() {
		targets = append(targets, scheduler.Target{
			Invoker:     actor.New(p, botRepo, postRepo, text, media, news),
			PostsPerDay: p.PostsPerDay,
		})
	}
	sched := scheduler.New(targets,
		time.Duration(cfg.HeartbeatMinutes)*time.Minute,
		time.Duration(cfg.ActorTimeoutSecs)*time.Second)

	return &Server{
		config:         cfg,
		db:             db,
		redis:          redisClient,
		promMiddleware: middleware.InitMetrics("northpole-api"),
		botRepo:        botRepo,
		postRepo:       postRepo,
		scheduler:      sched,
	}, nil
}

// Scheduler exposes the heartbeat loop for the bootstrap layer.
func (s *Server) Scheduler() *scheduler.Scheduler {
	return s.scheduler
}

// SetupMiddleware configures the standard middleware chain.
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Context middleware to propagate the request ID into slog
	app.Use(middleware.ContextMiddleware())

	// Prometheus metrics
	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	// Security headers
	app.Use(helmet.New())

	// Structured logging (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000,http://127.0.0.1:5173"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowHeaders: "Origin, Content-Type, Accept",
		MaxAge:       86400,
	}))

	// The feed is polled by browsers once a minute; 100 req/min per IP is
	// generous for that and still stops scrapers.
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application.
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	app.Get("/health", s.ReadinessCheck)

	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}
	api.Get("/metrics/dashboard", monitor.New(monitor.Config{
		Title: "North Pole Metrics Dashboard",
	}))

	api.Get("/posts/northpole", s.GetFeed)
	api.Get("/posts/giftguide", s.GetGiftGuide)
	api.Get("/posts/by/:handle", s.GetPostsByBot)
	api.Get("/post/:id", s.GetPost)
	api.Get("/bots", s.ListBots)
	api.Get("/bot/:handle", s.GetBot)
}

// Shutdown releases server resources. The Fiber app and the scheduler are
// stopped by the bootstrap layer before this is called.
func (s *Server) Shutdown(ctx context.Context) error {
	if sqlDB, err := s.db.DB(); err == nil {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Printf("error closing sql DB: %v", cerr)
		}
	}
	if s.redis != nil {
		if cerr := s.redis.Close(); cerr != nil {
			log.Printf("error closing redis: %v", cerr)
		}
	}
	return nil
}
