package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Post kinds. The kind determines which optional columns are populated and
// how a renderer interprets them.
const (
	KindStandard  = "standard_post"
	KindNews      = "news_item"
	KindGiftAlert = "gift_alert"
	KindRecipe    = "recipe_post"
)

// Post is the unit of content. Posts are append-only: the core never
// updates or deletes a row after insertion.
//
// Post IDs carry a random component and are NOT orderable; CreatedAt is the
// sole ordering contract.
type Post struct {
	ID     string `gorm:"primaryKey" json:"id"`
	BotID  uint   `gorm:"not null;index" json:"-"`
	Bot    Bot    `gorm:"foreignKey:BotID" json:"bot"`
	Kind   string `gorm:"not null;index;default:standard_post" json:"kind"`
	Text   string `gorm:"type:text;not null" json:"text"`
	Title  string `json:"title,omitempty"`

	// Media attachment. Source and Link attribute the photographer when the
	// media came from a third-party search.
	MediaURL    string `json:"mediaUrl,omitempty"`
	MediaSource string `json:"mediaSource,omitempty"`
	MediaLink   string `json:"mediaLink,omitempty"`

	// Outbound citation for news and gift-alert posts.
	ExternalLink   string `json:"externalLink,omitempty"`
	ExternalSource string `json:"externalSource,omitempty"`

	// Payload holds kind-specific structured data (a recipe object) as JSON,
	// opaque to the store.
	Payload []byte `gorm:"type:jsonb" json:"payload,omitempty"`

	// Reply target, denormalized at write time. ReplyToText is a short
	// snippet of the parent, not a live join.
	ReplyToID     *string `gorm:"index" json:"replyToId,omitempty"`
	ReplyToHandle string  `json:"replyToHandle,omitempty"`
	ReplyToText   string  `json:"replyToText,omitempty"`

	CreatedAt time.Time `gorm:"index" json:"timestamp"`
}

// IsReply reports whether the post is a reply to another post.
func (p *Post) IsReply() bool {
	return p.ReplyToID != nil && *p.ReplyToID != ""
}

// NewPostID builds an ID in the feed's historical shape: a timestamp for
// debuggability plus a random component for uniqueness.
func NewPostID() string {
	return fmt.Sprintf("echo-%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}

// ReplySnippet shortens parent-post text for the denormalized reply context.
func ReplySnippet(s string) string {
	const max = 40
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
