package repository

import (
	"context"
	"errors"

	"northpole/internal/cache"
	"northpole/internal/models"

	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id string) (*models.Post, error)
	ListRecent(ctx context.Context, limit int, handles []string) ([]*models.Post, error)
	ListByAuthor(ctx context.Context, handle string, limit int) ([]*models.Post, error)
	ListByKind(ctx context.Context, kind string, limit int) ([]*models.Post, error)
	FindUnanswered(ctx context.Context, authorHandles []string, replierHandle string) (*models.Post, error)
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if post.ID == "" {
		post.ID = models.NewPostID()
	}
	err := r.db.WithContext(ctx).Create(post).Error
	if err == nil {
		cache.InvalidateFeeds(ctx, post.Bot.Handle)
	}
	return err
}

func (r *postRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	var post models.Post
	key := cache.PostKey(id)

	err := cache.Aside(ctx, key, &post, cache.PostTTL, func() error {
		return r.db.WithContext(ctx).
			Preload("Bot").
			Where("id = ?", id).
			First(&post).Error
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) ListRecent(ctx context.Context, limit int, handles []string) ([]*models.Post, error) {
	var posts []*models.Post
	q := r.db.WithContext(ctx).Preload("Bot").Order("created_at DESC").Limit(limit)
	if len(handles) > 0 {
		q = q.Joins("JOIN bots ON bots.id = posts.bot_id").Where("bots.handle IN ?", handles)
	}
	if err := q.Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepository) ListByAuthor(ctx context.Context, handle string, limit int) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.db.WithContext(ctx).
		Preload("Bot").
		Joins("JOIN bots ON bots.id = posts.bot_id").
		Where("bots.handle = ?", handle).
		Order("created_at DESC").
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepository) ListByKind(ctx context.Context, kind string, limit int) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.db.WithContext(ctx).
		Preload("Bot").
		Where("kind = ?", kind).
		Order("created_at DESC").
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// FindUnanswered returns the most recent top-level post by any of the listed
// authors that the replier has not yet answered. Replies are never returned
// as targets, which keeps threads two tiers deep at write time. Returns
// (nil, nil) when no candidate exists.
func (r *postRepository) FindUnanswered(ctx context.Context, authorHandles []string, replierHandle string) (*models.Post, error) {
	if len(authorHandles) == 0 {
		return nil, nil
	}
	var post models.Post
	err := r.db.WithContext(ctx).
		Preload("Bot").
		Joins("JOIN bots ON bots.id = posts.bot_id").
		Where("bots.handle IN ?", authorHandles).
		Where("posts.reply_to_id IS NULL").
		Where(`NOT EXISTS (
			SELECT 1 FROM posts r
			JOIN bots rb ON rb.id = r.bot_id
			WHERE r.reply_to_id = posts.id AND rb.handle = ?
		)`, replierHandle).
		Order("posts.created_at DESC").
		First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}
