package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand"
	"net/http"
	"net/url"
	"time"

	"northpole/internal/middleware"
)

// Documented fallback media. Media posts degrade to these instead of
// failing the whole post when the search backend has nothing.
const (
	FallbackImageURL    = "https://source.unsplash.com/800x600/?christmas,snow"
	FallbackImageSource = "Unsplash"
	FallbackImageLink   = "https://unsplash.com"
	FallbackVideoURL    = "https://static.pexels.com/v1/videos/2885324/pexels-video-2885324-portrait.mp4"
)

// PexelsClient implements MediaSearcher against the Pexels photo and video APIs.
type PexelsClient struct {
	apiKey  string
	baseURL string
	http    *http.Client
	rng     *rand.Rand
}

var _ MediaSearcher = (*PexelsClient)(nil)

// NewPexelsClient creates a Pexels search client.
func NewPexelsClient(apiKey string) *PexelsClient {
	return &PexelsClient{
		apiKey:  apiKey,
		baseURL: "https://api.pexels.com",
		http:    &http.Client{Timeout: 15 * time.Second},
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// NewPexelsClientForTest builds a client against a stub server with a seeded RNG.
func NewPexelsClientForTest(baseURL string, seed int64) *PexelsClient {
	c := NewPexelsClient("test-key")
	c.baseURL = baseURL
	c.rng = rand.New(rand.NewSource(seed))
	return c
}

type pexelsPhoto struct {
	Photographer    string `json:"photographer"`
	PhotographerURL string `json:"photographer_url"`
	Src             struct {
		Large string `json:"large"`
	} `json:"src"`
}

type pexelsPhotoResponse struct {
	Photos []pexelsPhoto `json:"photos"`
}

type pexelsVideoFile struct {
	Quality  string `json:"quality"`
	FileType string `json:"file_type"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Link     string `json:"link"`
}

type pexelsVideo struct {
	VideoFiles []pexelsVideoFile `json:"video_files"`
}

type pexelsVideoResponse struct {
	Videos []pexelsVideo `json:"videos"`
}

func (c *PexelsClient) get(ctx context.Context, path string, query url.Values, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("pexels API error: status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(dest)
}

// SearchImage returns a random landscape photo for the keyword, or the
// fallback image when the search fails or finds nothing. The bool reports
// whether a real search result was used.
func (c *PexelsClient) SearchImage(ctx context.Context, keyword string) (Media, bool) {
	fallback := Media{URL: FallbackImageURL, Source: FallbackImageSource, Link: FallbackImageLink}

	q := url.Values{}
	q.Set("query", keyword)
	q.Set("per_page", "5")
	q.Set("orientation", "landscape")

	var out pexelsPhotoResponse
	if err := c.get(ctx, "/v1/search", q, &out); err != nil {
		middleware.Logger.WarnContext(ctx, "Pexels image search failed, using fallback",
			slog.String("keyword", keyword), slog.String("error", err.Error()))
		return fallback, false
	}
	if len(out.Photos) == 0 {
		middleware.Logger.WarnContext(ctx, "Pexels found no images, using fallback",
			slog.String("keyword", keyword))
		return fallback, false
	}

	photo := out.Photos[c.rng.Intn(len(out.Photos))]
	return Media{
		URL:    photo.Src.Large,
		Source: photo.Photographer,
		Link:   photo.PhotographerURL,
	}, true
}

// SearchVideo returns a random portrait video for the keyword, preferring a
// short SD mp4 rendition, or the fallback video on failure.
func (c *PexelsClient) SearchVideo(ctx context.Context, keyword string) (Media, bool) {
	fallback := Media{URL: FallbackVideoURL}

	q := url.Values{}
	q.Set("query", keyword)
	q.Set("per_page", "10")
	q.Set("orientation", "portrait")

	var out pexelsVideoResponse
	if err := c.get(ctx, "/videos/search", q, &out); err != nil {
		middleware.Logger.WarnContext(ctx, "Pexels video search failed, using fallback",
			slog.String("keyword", keyword), slog.String("error", err.Error()))
		return fallback, false
	}
	if len(out.Videos) == 0 {
		middleware.Logger.WarnContext(ctx, "Pexels found no videos, using fallback",
			slog.String("keyword", keyword))
		return fallback, false
	}

	video := out.Videos[c.rng.Intn(len(out.Videos))]
	for _, f := range video.VideoFiles {
		if f.Quality == "sd" && f.FileType == "video/mp4" && f.Height > f.Width {
			return Media{URL: f.Link}, true
		}
	}
	if len(video.VideoFiles) > 0 {
		return Media{URL: video.VideoFiles[0].Link}, true
	}
	return fallback, false
}
