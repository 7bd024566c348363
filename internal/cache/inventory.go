package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	FeedKey            = "feed:northpole"
	GiftGuideKey       = "feed:giftguide"
	BotPostsKeyPrefix  = "feed:bot:%s"
	PostKeyPrefix      = "post:%s"
)

// Feed TTLs are short: the front page polls every minute, so a stale window
// of 30s is invisible while cutting the assemble query rate.
const (
	FeedTTL      = 30 * time.Second
	GiftGuideTTL = 5 * time.Minute
	PostTTL      = 30 * time.Minute
)

func BotPostsKey(handle string) string {
	return fmt.Sprintf(BotPostsKeyPrefix, handle)
}

func PostKey(id string) string {
	return fmt.Sprintf(PostKeyPrefix, id)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

// InvalidateFeeds drops every feed-level key after a post insert. The
// author's profile feed is included; single-post entries are immutable and
// left to expire.
func InvalidateFeeds(ctx context.Context, authorHandle string) {
	Invalidate(ctx, FeedKey)
	Invalidate(ctx, GiftGuideKey)
	if authorHandle != "" {
		Invalidate(ctx, BotPostsKey(authorHandle))
	}
}
