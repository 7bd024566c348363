package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rssFixture = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Example Toy News</title>
    <item>
      <title>Building Brick Castle Announced</title>
      <link>https://example.com/castle</link>
      <description>A new castle set with 2,000 pieces arrives this winter.</description>
    </item>
    <item>
      <title>Plush Reindeer Sells Out</title>
      <link>https://example.com/plush</link>
      <description>Stores report empty shelves.</description>
    </item>
  </channel>
</rss>`

func TestFetchArticleReturnsItem(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(rssFixture))
	}))
	defer srv.Close()

	f := NewRSSFetcherForTest(1)
	article, err := f.FetchArticle(context.Background(), []string{srv.URL})

	require.NoError(t, err)
	assert.Equal(t, "Example Toy News", article.Source)
	assert.NotEmpty(t, article.Title)
	assert.NotEmpty(t, article.Link)
	assert.NotEmpty(t, article.Snippet)
}

func TestFetchArticleCapsSnippet(t *testing.T) {
	long := strings.Repeat("festive news ", 100)
	fixture := strings.Replace(rssFixture,
		"A new castle set with 2,000 pieces arrives this winter.", long, 1)
	fixture = strings.Replace(fixture, "Stores report empty shelves.", long, 1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(fixture))
	}))
	defer srv.Close()

	f := NewRSSFetcherForTest(1)
	article, err := f.FetchArticle(context.Background(), []string{srv.URL})

	require.NoError(t, err)
	assert.LessOrEqual(t, len([]rune(article.Snippet)), 300)
}

func TestFetchArticleNoFeeds(t *testing.T) {
	f := NewRSSFetcherForTest(1)
	_, err := f.FetchArticle(context.Background(), nil)
	assert.Error(t, err)
}

func TestFetchArticleEmptyFeed(t *testing.T) {
	empty := `<?xml version="1.0"?><rss version="2.0"><channel><title>Empty</title></channel></rss>`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(empty))
	}))
	defer srv.Close()

	f := NewRSSFetcherForTest(1)
	_, err := f.FetchArticle(context.Background(), []string{srv.URL})
	assert.Error(t, err)
}

func TestFetchArticleUnreachableFeed(t *testing.T) {
	f := NewRSSFetcherForTest(1)
	_, err := f.FetchArticle(context.Background(), []string{"http://127.0.0.1:1/feed"})
	assert.Error(t, err)
}
