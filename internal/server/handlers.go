package server

import (
	"context"
	"errors"
	"time"

	"northpole/internal/cache"
	"northpole/internal/feed"
	"northpole/internal/middleware"
	"northpole/internal/models"
	"northpole/internal/persona"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const (
	feedLimit      = 30
	profileLimit   = 50
	giftGuideLimit = 100
)

// GetFeed returns the assembled front page: threads, featured gift, news.
// The result is cached for a short window; any post insert invalidates it.
func (s *Server) GetFeed(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var assembled feed.Feed
	err := cache.Aside(ctx, cache.FeedKey, &assembled, cache.FeedTTL, func() error {
		posts, err := s.postRepo.ListRecent(ctx, feedLimit, persona.Handles())
		if err != nil {
			return err
		}
		assembled = feed.Assemble(posts)
		return nil
	})
	if err != nil {
		middleware.Logger.ErrorContext(ctx, "feed assembly failed", "error", err)
		return models.RespondWithError(c, fiber.StatusInternalServerError, models.NewInternalError(err))
	}
	return c.JSON(assembled)
}

// GetGiftGuide returns every gift alert, newest first.
func (s *Server) GetGiftGuide(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var posts []*models.Post
	err := cache.Aside(ctx, cache.GiftGuideKey, &posts, cache.GiftGuideTTL, func() error {
		var err error
		posts, err = s.postRepo.ListByKind(ctx, models.KindGiftAlert, giftGuideLimit)
		return err
	})
	if err != nil {
		middleware.Logger.ErrorContext(ctx, "gift guide query failed", "error", err)
		return models.RespondWithError(c, fiber.StatusInternalServerError, models.NewInternalError(err))
	}
	if posts == nil {
		posts = []*models.Post{}
	}
	return c.JSON(fiber.Map{"posts": posts})
}

// GetPostsByBot returns one bot's recent history as a profile feed. Replies
// from other bots are not attached here; the profile shows authored posts only.
func (s *Server) GetPostsByBot(c *fiber.Ctx) error {
	ctx := c.UserContext()
	handle := "@" + c.Params("handle")

	if _, err := s.botRepo.GetByHandle(ctx, handle); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.RespondWithError(c, fiber.StatusNotFound, models.NewNotFoundError("bot", handle))
		}
		return models.RespondWithError(c, fiber.StatusInternalServerError, models.NewInternalError(err))
	}

	var posts []*models.Post
	err := cache.Aside(ctx, cache.BotPostsKey(handle), &posts, cache.FeedTTL, func() error {
		var err error
		posts, err = s.postRepo.ListByAuthor(ctx, handle, profileLimit)
		return err
	})
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, models.NewInternalError(err))
	}
	if posts == nil {
		posts = []*models.Post{}
	}
	return c.JSON(fiber.Map{"handle": handle, "posts": posts})
}

// GetPost returns a single post by ID.
func (s *Server) GetPost(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id := c.Params("id")

	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.RespondWithError(c, fiber.StatusNotFound, models.NewNotFoundError("post", id))
		}
		return models.RespondWithError(c, fiber.StatusInternalServerError, models.NewInternalError(err))
	}
	return c.JSON(post)
}

// ListBots returns the bot directory.
func (s *Server) ListBots(c *fiber.Ctx) error {
	ctx := c.UserContext()

	bots, err := s.botRepo.List(ctx)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, models.NewInternalError(err))
	}
	return c.JSON(fiber.Map{"bots": bots})
}

// GetBot returns one bot profile by handle. The leading @ is implied by the
// route, matching the original site's /bot/SantaClaus links.
func (s *Server) GetBot(c *fiber.Ctx) error {
	ctx := c.UserContext()
	handle := "@" + c.Params("handle")

	bot, err := s.botRepo.GetByHandle(ctx, handle)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.RespondWithError(c, fiber.StatusNotFound, models.NewNotFoundError("bot", handle))
		}
		return models.RespondWithError(c, fiber.StatusInternalServerError, models.NewInternalError(err))
	}
	return c.JSON(bot)
}

// LivenessCheck handles liveness probe requests.
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests. Redis is optional: the
// feed works uncached without it, so only the database gates readiness.
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

	redisStatus := "healthy"
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	} else {
		redisStatus = "unavailable"
	}

	status := fiber.StatusOK
	overall := "healthy"
	if dbStatus != "healthy" {
		status = fiber.StatusServiceUnavailable
		overall = "unhealthy"
	}
	return c.Status(status).JSON(fiber.Map{
		"status": overall,
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}
