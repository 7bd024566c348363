package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"northpole/internal/feed"
	"northpole/internal/models"
	"northpole/internal/repository"
)

func setupHandlerTest(t *testing.T) (*gorm.DB, *Server, *fiber.App) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Bot{}, &models.Post{}))

	s := &Server{
		db:       db,
		botRepo:  repository.NewBotRepository(db),
		postRepo: repository.NewPostRepository(db),
	}

	app := fiber.New()
	s.SetupRoutes(app)
	return db, s, app
}

func seedBot(t *testing.T, db *gorm.DB, handle, name string) models.Bot {
	t.Helper()
	bot := models.Bot{Handle: handle, Name: name}
	require.NoError(t, db.Create(&bot).Error)
	return bot
}

func seedPost(t *testing.T, db *gorm.DB, bot models.Bot, id, kind, text string, at time.Time) models.Post {
	t.Helper()
	post := models.Post{ID: id, BotID: bot.ID, Kind: kind, Text: text, CreatedAt: at}
	require.NoError(t, db.Create(&post).Error)
	return post
}

func getJSON(t *testing.T, app *fiber.App, path string, dest any) int {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if dest != nil && resp.StatusCode == http.StatusOK {
		require.NoError(t, json.Unmarshal(body, dest))
	}
	return resp.StatusCode
}

func TestGetFeedEmptyStore(t *testing.T) {
	_, _, app := setupHandlerTest(t)

	var got feed.Feed
	status := getJSON(t, app, "/api/posts/northpole", &got)

	assert.Equal(t, http.StatusOK, status)
	assert.Empty(t, got.Threads)
	require.NotNil(t, got.Featured)
	assert.Equal(t, "The Giggle-Bot 5000!", got.Featured.Title)
}

func TestGetFeedAssemblesThreads(t *testing.T) {
	db, _, app := setupHandlerTest(t)
	base := time.Date(2025, 12, 1, 12, 0, 0, 0, time.UTC)

	santa := seedBot(t, db, "@SantaClaus", "Santa Claus")
	hayley := seedBot(t, db, "@HayleyKeeper", "Hayley")
	parent := seedPost(t, db, santa, "echo-1-santa", models.KindStandard, "Ho ho ho!", base)

	reply := models.Post{
		ID: "echo-2-hayley", BotID: hayley.ID, Kind: models.KindStandard,
		Text: "The reindeer agree!", ReplyToID: &parent.ID,
		ReplyToHandle: "@SantaClaus", CreatedAt: base.Add(time.Minute),
	}
	require.NoError(t, db.Create(&reply).Error)

	var got feed.Feed
	status := getJSON(t, app, "/api/posts/northpole", &got)

	assert.Equal(t, http.StatusOK, status)
	require.Len(t, got.Threads, 1)
	assert.Equal(t, "echo-1-santa", got.Threads[0].Post.ID)
	require.Len(t, got.Threads[0].Replies, 1)
	assert.Equal(t, "echo-2-hayley", got.Threads[0].Replies[0].ID)
	assert.Equal(t, "@SantaClaus", got.Threads[0].Post.Bot.Handle)
}

func TestGetGiftGuide(t *testing.T) {
	db, _, app := setupHandlerTest(t)
	base := time.Date(2025, 12, 1, 12, 0, 0, 0, time.UTC)

	toy := seedBot(t, db, "@ToyInsiderElf", "Toy Insider Elf")
	seedPost(t, db, toy, "echo-1-toy", models.KindGiftAlert, "Hot toy!", base)
	seedPost(t, db, toy, "echo-2-toy", models.KindGiftAlert, "Hotter toy!", base.Add(time.Hour))
	santa := seedBot(t, db, "@SantaClaus", "Santa Claus")
	seedPost(t, db, santa, "echo-3-santa", models.KindStandard, "not a gift", base)

	var got struct {
		Posts []models.Post `json:"posts"`
	}
	status := getJSON(t, app, "/api/posts/giftguide", &got)

	assert.Equal(t, http.StatusOK, status)
	require.Len(t, got.Posts, 2)
	assert.Equal(t, "echo-2-toy", got.Posts[0].ID)
}

func TestGetPostsByBot(t *testing.T) {
	db, _, app := setupHandlerTest(t)
	base := time.Date(2025, 12, 1, 12, 0, 0, 0, time.UTC)

	santa := seedBot(t, db, "@SantaClaus", "Santa Claus")
	other := seedBot(t, db, "@MrsClaus", "Mrs. Claus")
	seedPost(t, db, santa, "echo-1-santa", models.KindStandard, "mine", base)
	seedPost(t, db, other, "echo-2-mrs", models.KindStandard, "hers", base)

	var got struct {
		Handle string        `json:"handle"`
		Posts  []models.Post `json:"posts"`
	}
	status := getJSON(t, app, "/api/posts/by/SantaClaus", &got)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "@SantaClaus", got.Handle)
	require.Len(t, got.Posts, 1)
	assert.Equal(t, "echo-1-santa", got.Posts[0].ID)

	assert.Equal(t, http.StatusNotFound, getJSON(t, app, "/api/posts/by/Nobody", nil))
}

func TestGetPost(t *testing.T) {
	db, _, app := setupHandlerTest(t)

	santa := seedBot(t, db, "@SantaClaus", "Santa Claus")
	seedPost(t, db, santa, "echo-1-santa", models.KindStandard, "Ho ho ho!", time.Now())

	var got models.Post
	status := getJSON(t, app, "/api/post/echo-1-santa", &got)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Ho ho ho!", got.Text)
	assert.Equal(t, "@SantaClaus", got.Bot.Handle)

	assert.Equal(t, http.StatusNotFound, getJSON(t, app, "/api/post/echo-missing", nil))
}

func TestBotDirectory(t *testing.T) {
	db, _, app := setupHandlerTest(t)
	seedBot(t, db, "@SantaClaus", "Santa Claus")
	seedBot(t, db, "@MrsClaus", "Mrs. Claus")

	var got struct {
		Bots []models.Bot `json:"bots"`
	}
	status := getJSON(t, app, "/api/bots", &got)
	assert.Equal(t, http.StatusOK, status)
	assert.Len(t, got.Bots, 2)

	var bot models.Bot
	status = getJSON(t, app, "/api/bot/SantaClaus", &bot)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Santa Claus", bot.Name)

	assert.Equal(t, http.StatusNotFound, getJSON(t, app, "/api/bot/Nobody", nil))
}

func TestLivenessCheck(t *testing.T) {
	_, _, app := setupHandlerTest(t)

	status := getJSON(t, app, "/health/live", nil)
	assert.Equal(t, http.StatusOK, status)
}

func TestReadinessCheckHealthyDB(t *testing.T) {
	_, _, app := setupHandlerTest(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Status string `json:"status"`
		Checks struct {
			Database string `json:"database"`
			Redis    string `json:"redis"`
		} `json:"checks"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "healthy", body.Status)
	assert.Equal(t, "healthy", body.Checks.Database)
	assert.Equal(t, "unavailable", body.Checks.Redis)
}
