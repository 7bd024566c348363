package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"northpole/internal/models"
	"northpole/internal/persona"
)

func TestBotsSeedsRegistry(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Bot{}, &models.Post{}))

	ctx := context.Background()
	require.NoError(t, Bots(ctx, db))

	var count int64
	require.NoError(t, db.Model(&models.Bot{}).Count(&count).Error)
	assert.Equal(t, int64(len(persona.Registry())), count)

	var santa models.Bot
	require.NoError(t, db.Where("handle = ?", "@SantaClaus").First(&santa).Error)
	assert.Equal(t, "Santa Claus", santa.Name)
	assert.NotEmpty(t, santa.AvatarURL)
}

func TestBotsIsIdempotentAndUpdates(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Bot{}, &models.Post{}))

	ctx := context.Background()
	require.NoError(t, Bots(ctx, db))

	var before models.Bot
	require.NoError(t, db.Where("handle = ?", "@Rudolph").First(&before).Error)
	require.NoError(t, db.Model(&before).Update("bio", "stale bio").Error)

	require.NoError(t, Bots(ctx, db))

	var count int64
	require.NoError(t, db.Model(&models.Bot{}).Count(&count).Error)
	assert.Equal(t, int64(len(persona.Registry())), count)

	var after models.Bot
	require.NoError(t, db.Where("handle = ?", "@Rudolph").First(&after).Error)
	assert.Equal(t, before.ID, after.ID)
	assert.NotEqual(t, "stale bio", after.Bio)
}

func TestResetDropsPosts(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Bot{}, &models.Post{}))

	ctx := context.Background()
	require.NoError(t, Bots(ctx, db))
	require.NoError(t, db.Create(&models.Post{ID: "echo-1-x", BotID: 1, Kind: models.KindStandard, Text: "old"}).Error)

	require.NoError(t, Reset(ctx, db))

	var posts, bots int64
	require.NoError(t, db.Model(&models.Post{}).Count(&posts).Error)
	require.NoError(t, db.Model(&models.Bot{}).Count(&bots).Error)
	assert.Zero(t, posts)
	assert.Zero(t, bots)
}
