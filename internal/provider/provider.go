// Package provider abstracts the external content backends: generative text,
// stock photo/video search, and RSS syndication.
package provider

import "context"

// Media is one photo or video search result with attribution.
type Media struct {
	URL    string `json:"url"`
	Source string `json:"source,omitempty"`
	Link   string `json:"link,omitempty"`
}

// Article is one syndicated news item used to ground generation in real content.
type Article struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	Link    string `json:"link"`
	Source  string `json:"source"`
}

// TextGenerator produces persona-voiced text from the generative backend.
type TextGenerator interface {
	// GenerateText returns plain text for the prompt, or an error when the
	// backend fails or returns nothing usable.
	GenerateText(ctx context.Context, prompt, system string) (string, error)

	// GenerateStructured asks for a JSON object response and returns its
	// top-level string fields. Callers must treat missing keys as failure.
	GenerateStructured(ctx context.Context, prompt, system string) (map[string]string, error)
}

// MediaSearcher finds a photo or video matching a keyword. Implementations
// never fail outright: an unreachable backend or an empty result set yields
// the documented fallback media instead.
type MediaSearcher interface {
	SearchImage(ctx context.Context, keyword string) (Media, bool)
	SearchVideo(ctx context.Context, keyword string) (Media, bool)
}

// Syndicator pulls one article from a set of RSS feeds.
type Syndicator interface {
	FetchArticle(ctx context.Context, feedURLs []string) (Article, error)
}
