// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"

	"northpole/internal/models"

	"gorm.io/gorm"
)

// BotRepository defines the interface for bot persona data operations
type BotRepository interface {
	Create(ctx context.Context, bot *models.Bot) error
	GetByHandle(ctx context.Context, handle string) (*models.Bot, error)
	List(ctx context.Context) ([]*models.Bot, error)
}

type botRepository struct {
	db *gorm.DB
}

// NewBotRepository creates a new bot repository
func NewBotRepository(db *gorm.DB) BotRepository {
	return &botRepository{db: db}
}

func (r *botRepository) Create(ctx context.Context, bot *models.Bot) error {
	return r.db.WithContext(ctx).Create(bot).Error
}

func (r *botRepository) GetByHandle(ctx context.Context, handle string) (*models.Bot, error) {
	var bot models.Bot
	err := r.db.WithContext(ctx).Where("handle = ?", handle).First(&bot).Error
	if err != nil {
		return nil, err
	}
	return &bot, nil
}

func (r *botRepository) List(ctx context.Context) ([]*models.Bot, error) {
	var bots []*models.Bot
	err := r.db.WithContext(ctx).Order("id ASC").Find(&bots).Error
	if err != nil {
		return nil, err
	}
	return bots, nil
}
