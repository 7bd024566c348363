// Package feed assembles flat post lists into the front-page view: two-tier
// threads, a featured gift alert, and a news column. Assembly is a pure
// transform; it never touches the store.
package feed

import (
	"sort"

	"northpole/internal/models"
)

// Thread is one top-level post with its replies, oldest first. Threads are
// strictly two tiers deep: a reply that targets another reply surfaces in
// the same flat reply list as its target, it is never nested further and
// never promoted to top level.
type Thread struct {
	Post    *models.Post   `json:"post"`
	Replies []*models.Post `json:"replies"`
}

// Feed is the assembled front page.
type Feed struct {
	Threads  []Thread       `json:"threads"`
	Featured *models.Post   `json:"featured"`
	News     []*models.Post `json:"news"`
}

// FallbackGift fills the featured slot when no gift alert has been posted yet.
var FallbackGift = &models.Post{
	ID:    "gift-fallback",
	Kind:  models.KindGiftAlert,
	Title: "The Giggle-Bot 5000!",
	Text:  "It's a robot buddy that tells you a new joke every day! All the elves are trying to get one!",
	Bot: models.Bot{
		Handle: "@ToyInsiderElf",
		Name:   "Toy Insider Elf",
	},
	ExternalSource: "The Workshop",
}

// Assemble builds the front-page view from a flat list of posts. Replies
// whose parent chain leads outside the input are dropped. Gift alerts are
// pulled out of the thread list entirely; only the newest one is featured.
func Assemble(posts []*models.Post) Feed {
	feed := Feed{
		Threads: []Thread{},
		News:    []*models.Post{},
	}

	byID := make(map[string]*models.Post, len(posts))
	var topLevel []*models.Post
	var replyPosts []*models.Post

	for _, p := range posts {
		if p.Kind == models.KindGiftAlert {
			if feed.Featured == nil || p.CreatedAt.After(feed.Featured.CreatedAt) {
				feed.Featured = p
			}
			continue
		}
		byID[p.ID] = p
		if p.IsReply() {
			replyPosts = append(replyPosts, p)
			continue
		}
		topLevel = append(topLevel, p)
		if p.Kind == models.KindNews {
			feed.News = append(feed.News, p)
		}
	}

	// Re-root each reply onto the top-level post its target chain reaches.
	// The walk is bounded so a malformed cycle cannot spin forever.
	replies := make(map[string][]*models.Post)
	for _, r := range replyPosts {
		if root, ok := rootOf(r, byID); ok {
			replies[root.ID] = append(replies[root.ID], r)
		}
	}

	sort.SliceStable(topLevel, func(i, j int) bool {
		return topLevel[i].CreatedAt.After(topLevel[j].CreatedAt)
	})
	sort.SliceStable(feed.News, func(i, j int) bool {
		return feed.News[i].CreatedAt.After(feed.News[j].CreatedAt)
	})

	for _, p := range topLevel {
		kids := replies[p.ID]
		sort.SliceStable(kids, func(i, j int) bool {
			return kids[i].CreatedAt.Before(kids[j].CreatedAt)
		})
		if kids == nil {
			kids = []*models.Post{}
		}
		feed.Threads = append(feed.Threads, Thread{Post: p, Replies: kids})
	}

	if feed.Featured == nil {
		feed.Featured = FallbackGift
	}
	return feed
}

func rootOf(r *models.Post, byID map[string]*models.Post) (*models.Post, bool) {
	cur := r
	for i := 0; i < len(byID); i++ {
		parent, ok := byID[*cur.ReplyToID]
		if !ok {
			return nil, false
		}
		if !parent.IsReply() {
			return parent, true
		}
		cur = parent
	}
	return nil, false
}
