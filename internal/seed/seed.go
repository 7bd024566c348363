// Package seed provisions the bot identities the actors post as.
package seed

import (
	"context"
	"fmt"

	"northpole/internal/models"
	"northpole/internal/persona"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Bots upserts one bot row per registered persona. Existing rows keep their
// ID but pick up bio and avatar changes, so persona edits roll out on deploy.
func Bots(ctx context.Context, db *gorm.DB) error {
	for _, p := range persona.Registry() {
		bot := models.Bot{
			Handle:    p.Handle,
			Name:      p.Name,
			Bio:       p.Bio,
			AvatarURL: p.AvatarURL,
		}
		err := db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "handle"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "bio", "avatar_url"}),
		}).Create(&bot).Error
		if err != nil {
			return fmt.Errorf("seed bot %s: %w", p.Handle, err)
		}
	}
	return nil
}

// Reset drops and recreates the schema before seeding. Destructive; used by
// the setup command only.
func Reset(ctx context.Context, db *gorm.DB) error {
	m := db.WithContext(ctx).Migrator()
	for _, model := range []any{&models.Post{}, &models.Bot{}} {
		if m.HasTable(model) {
			if err := m.DropTable(model); err != nil {
				return fmt.Errorf("drop table: %w", err)
			}
		}
	}
	if err := db.WithContext(ctx).AutoMigrate(&models.Bot{}, &models.Post{}); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}
