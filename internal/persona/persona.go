// Package persona defines the declarative descriptors that drive the generic
// bot actor. Each persona is data: prompts, behavior weights, capabilities,
// and a reply-target allow-list. Adding a bot means adding a registry entry,
// not a new module.
package persona

import "fmt"

// Mode is one new-post sub-mode. The actor picks uniformly among a
// persona's Modes after deciding against a reply.
type Mode string

const (
	ModeText   Mode = "text"
	ModeImage  Mode = "image"
	ModeVideo  Mode = "video"
	ModeRecipe Mode = "recipe"
	ModeNews   Mode = "news"
	ModeGift   Mode = "gift"
)

// StrictSuffix is appended to prompts 85% of the time. The remaining 15%
// "natural" rolls let the model open with filler words.
const StrictSuffix = " **Important:** Do NOT start with filler words like 'Oh,', 'Well,', 'Ah,', or 'So,'."

// Persona describes one bot's identity and behavior.
type Persona struct {
	Handle    string
	Name      string
	Bio       string
	AvatarURL string

	// System is the standing instruction sent with every generation.
	// ReplySystem, when set, replaces it for replies (Noel's off-the-clock
	// personality).
	System      string
	ReplySystem string

	// ReplyTargets is the allow-list of handles this persona may answer.
	// Empty means the persona never replies.
	ReplyTargets []string

	// QuietWhenNoTarget controls the reply-mode fallback: stay quiet, or
	// produce a new post instead.
	QuietWhenNoTarget bool

	// Behavior weights.
	PostsPerDay   float64
	ReplyChance   float64
	NaturalChance float64

	// Modes a new post may take, chosen uniformly.
	Modes []Mode

	// Prompt templates. NewText and NewMedia are plain strings; Reply takes
	// the parent post's text, Rewrite takes an article title and snippet.
	NewTextPrompt  string
	NewMediaPrompt string
	ReplyPrompt    string // one %s: original post text
	RewritePrompt  string // two %s: title, snippet

	// Feeds ground news and gift-alert generation in real articles.
	Feeds []string
}

// CanReply reports whether the persona ever enters reply mode.
func (p *Persona) CanReply() bool {
	return len(p.ReplyTargets) > 0 && p.ReplyChance > 0
}

// BuildReplyPrompt renders the reply prompt for the given parent text.
func (p *Persona) BuildReplyPrompt(original string, natural bool) string {
	prompt := fmt.Sprintf(p.ReplyPrompt, original)
	if !natural {
		prompt += StrictSuffix
	}
	return prompt
}

// BuildNewTextPrompt renders the text-post prompt.
func (p *Persona) BuildNewTextPrompt(natural bool) string {
	if natural {
		return p.NewTextPrompt
	}
	return p.NewTextPrompt + StrictSuffix
}

// BuildNewMediaPrompt renders the structured media-post prompt. The strict
// suffix only constrains the "text" field, so it is embedded in the template
// itself rather than appended here.
func (p *Persona) BuildNewMediaPrompt() string {
	return p.NewMediaPrompt
}

// BuildRewritePrompt renders the news-rewrite prompt for an article.
func (p *Persona) BuildRewritePrompt(title, snippet string) string {
	return fmt.Sprintf(p.RewritePrompt, title, snippet)
}

// ReplyVoice returns the system instruction used for replies.
func (p *Persona) ReplyVoice() string {
	if p.ReplySystem != "" {
		return p.ReplySystem
	}
	return p.System
}
