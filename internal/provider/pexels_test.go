package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const photoFixture = `{
	"photos": [
		{
			"photographer": "Alex Winter",
			"photographer_url": "https://www.pexels.com/@alex",
			"src": {"large": "https://images.pexels.com/photos/1/large.jpg"}
		}
	]
}`

const videoFixture = `{
	"videos": [
		{
			"video_files": [
				{"quality": "hd", "file_type": "video/mp4", "width": 1080, "height": 1920, "link": "https://player.pexels.com/hd.mp4"},
				{"quality": "sd", "file_type": "video/mp4", "width": 540, "height": 960, "link": "https://player.pexels.com/sd.mp4"}
			]
		}
	]
}`

func TestSearchImageReturnsResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/search", r.URL.Path)
		assert.Equal(t, "reindeer", r.URL.Query().Get("query"))
		assert.Equal(t, "landscape", r.URL.Query().Get("orientation"))
		assert.Equal(t, "test-key", r.Header.Get("Authorization"))
		w.Write([]byte(photoFixture))
	}))
	defer srv.Close()

	c := NewPexelsClientForTest(srv.URL, 1)
	media, found := c.SearchImage(context.Background(), "reindeer")

	assert.True(t, found)
	assert.Equal(t, "https://images.pexels.com/photos/1/large.jpg", media.URL)
	assert.Equal(t, "Alex Winter", media.Source)
	assert.Equal(t, "https://www.pexels.com/@alex", media.Link)
}

func TestSearchImageEmptyResultFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"photos": []}`))
	}))
	defer srv.Close()

	c := NewPexelsClientForTest(srv.URL, 1)
	media, found := c.SearchImage(context.Background(), "nothing")

	assert.False(t, found)
	assert.Equal(t, FallbackImageURL, media.URL)
	assert.Equal(t, FallbackImageSource, media.Source)
}

func TestSearchImageAPIErrorFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewPexelsClientForTest(srv.URL, 1)
	media, found := c.SearchImage(context.Background(), "snow")

	assert.False(t, found)
	assert.Equal(t, FallbackImageURL, media.URL)
}

func TestSearchVideoPrefersPortraitSD(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/videos/search", r.URL.Path)
		assert.Equal(t, "portrait", r.URL.Query().Get("orientation"))
		w.Write([]byte(videoFixture))
	}))
	defer srv.Close()

	c := NewPexelsClientForTest(srv.URL, 1)
	media, found := c.SearchVideo(context.Background(), "fireplace")

	assert.True(t, found)
	assert.Equal(t, "https://player.pexels.com/sd.mp4", media.URL)
}

func TestSearchVideoEmptyResultFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"videos": []}`))
	}))
	defer srv.Close()

	c := NewPexelsClientForTest(srv.URL, 1)
	media, found := c.SearchVideo(context.Background(), "nothing")

	assert.False(t, found)
	assert.Equal(t, FallbackVideoURL, media.URL)
}

func TestSearchVideoWithoutPortraitSDUsesFirstFile(t *testing.T) {
	fixture := `{
		"videos": [
			{"video_files": [
				{"quality": "hd", "file_type": "video/mp4", "width": 1920, "height": 1080, "link": "https://player.pexels.com/landscape.mp4"}
			]}
		]
	}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(fixture))
	}))
	defer srv.Close()

	c := NewPexelsClientForTest(srv.URL, 1)
	media, found := c.SearchVideo(context.Background(), "forest")

	require.True(t, found)
	assert.Equal(t, "https://player.pexels.com/landscape.mp4", media.URL)
}
