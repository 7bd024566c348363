package provider

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"
)

// RSSFetcher implements Syndicator using gofeed.
type RSSFetcher struct {
	parser *gofeed.Parser
	rng    *rand.Rand
}

var _ Syndicator = (*RSSFetcher)(nil)

// NewRSSFetcher creates a fetcher with a bounded HTTP client.
func NewRSSFetcher() *RSSFetcher {
	httpClient := &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        10,
			IdleConnTimeout:     30 * time.Second,
			MaxIdleConnsPerHost: 2,
		},
	}

	parser := gofeed.NewParser()
	parser.Client = httpClient

	return &RSSFetcher{
		parser: parser,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// NewRSSFetcherForTest builds a fetcher with a seeded RNG.
func NewRSSFetcherForTest(seed int64) *RSSFetcher {
	f := NewRSSFetcher()
	f.rng = rand.New(rand.NewSource(seed))
	return f
}

const maxSnippetRunes = 300

// FetchArticle picks a random feed and returns a random item from its top
// ten entries, with the snippet capped to keep prompts short.
func (f *RSSFetcher) FetchArticle(ctx context.Context, feedURLs []string) (Article, error) {
	if len(feedURLs) == 0 {
		return Article{}, fmt.Errorf("no feed URLs configured")
	}

	feedURL := feedURLs[f.rng.Intn(len(feedURLs))]
	feed, err := f.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return Article{}, fmt.Errorf("fetching feed %s: %w", feedURL, err)
	}
	if len(feed.Items) == 0 {
		return Article{}, fmt.Errorf("feed %s has no items", feedURL)
	}

	top := len(feed.Items)
	if top > 10 {
		top = 10
	}
	item := feed.Items[f.rng.Intn(top)]

	snippet := item.Description
	if snippet == "" {
		snippet = item.Content
	}
	if snippet == "" {
		snippet = "No snippet"
	}
	if runes := []rune(snippet); len(runes) > maxSnippetRunes {
		snippet = string(runes[:maxSnippetRunes])
	}

	source := feed.Title
	if source == "" {
		source = "News Source"
	}

	return Article{
		Title:   item.Title,
		Snippet: snippet,
		Link:    item.Link,
		Source:  source,
	}, nil
}
