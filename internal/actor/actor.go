// Package actor runs one persona invocation end to end: roll the behavior
// dice, ask the content providers for material, and write at most one post.
package actor

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"northpole/internal/cache"
	"northpole/internal/middleware"
	"northpole/internal/models"
	"northpole/internal/persona"
	"northpole/internal/provider"
	"northpole/internal/repository"
)

// Actor binds a persona descriptor to the stores and providers it needs.
// One Actor serves all invocations of its persona; invocations may overlap.
type Actor struct {
	persona persona.Persona
	bots    repository.BotRepository
	posts   repository.PostRepository
	text    provider.TextGenerator
	media   provider.MediaSearcher
	news    provider.Syndicator

	mu  sync.Mutex
	rng *rand.Rand
}

// New creates an actor with a time-seeded RNG.
func New(p persona.Persona, bots repository.BotRepository, posts repository.PostRepository,
	text provider.TextGenerator, media provider.MediaSearcher, news provider.Syndicator) *Actor {
	return NewWithRand(p, bots, posts, text, media, news,
		rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewWithRand creates an actor with the given RNG so tests can fix the rolls.
func NewWithRand(p persona.Persona, bots repository.BotRepository, posts repository.PostRepository,
	text provider.TextGenerator, media provider.MediaSearcher, news provider.Syndicator,
	rng *rand.Rand) *Actor {
	return &Actor{
		persona: p,
		bots:    bots,
		posts:   posts,
		text:    text,
		media:   media,
		news:    news,
		rng:     rng,
	}
}

// Handle returns the persona handle this actor serves.
func (a *Actor) Handle() string {
	return a.persona.Handle
}

func (a *Actor) roll() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.rng.Float64()
}

func (a *Actor) pick(n int) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.rng.Intn(n)
}

// Run executes one invocation. It writes zero or one posts: any provider or
// store failure aborts the whole invocation with nothing persisted.
func (a *Actor) Run(ctx context.Context) error {
	ctx = middleware.WithPersona(ctx, a.persona.Handle)

	bot, err := a.bots.GetByHandle(ctx, a.persona.Handle)
	if err != nil {
		return fmt.Errorf("load bot %s: %w", a.persona.Handle, err)
	}

	natural := a.roll() < a.persona.NaturalChance

	if a.persona.CanReply() && a.roll() < a.persona.ReplyChance {
		target, err := a.posts.FindUnanswered(ctx, a.persona.ReplyTargets, a.persona.Handle)
		if err != nil {
			return fmt.Errorf("find reply target: %w", err)
		}
		if target != nil {
			return a.reply(ctx, bot, target, natural)
		}
		if a.persona.QuietWhenNoTarget {
			middleware.Logger.InfoContext(ctx, "no posts to reply to, staying quiet")
			return nil
		}
		middleware.Logger.InfoContext(ctx, "no posts to reply to, posting new content instead")
	}

	return a.newPost(ctx, bot, natural)
}

func (a *Actor) reply(ctx context.Context, bot *models.Bot, target *models.Post, natural bool) error {
	original := target.Text
	if target.Title != "" {
		original = target.Title
	}

	text, err := a.text.GenerateText(ctx, a.persona.BuildReplyPrompt(original, natural), a.persona.ReplyVoice())
	if err != nil {
		middleware.ProviderFailures.WithLabelValues(a.persona.Handle, "gemini").Inc()
		return fmt.Errorf("generate reply: %w", err)
	}

	post := &models.Post{
		BotID:         bot.ID,
		Bot:           *bot,
		Kind:          models.KindStandard,
		Text:          text,
		ReplyToID:     &target.ID,
		ReplyToHandle: target.Bot.Handle,
		ReplyToText:   models.ReplySnippet(original),
	}
	return a.save(ctx, post)
}

func (a *Actor) newPost(ctx context.Context, bot *models.Bot, natural bool) error {
	mode := a.persona.Modes[a.pick(len(a.persona.Modes))]
	switch mode {
	case persona.ModeText:
		return a.textPost(ctx, bot, natural)
	case persona.ModeImage:
		return a.mediaPost(ctx, bot, false)
	case persona.ModeVideo:
		return a.mediaPost(ctx, bot, true)
	case persona.ModeRecipe:
		return a.recipePost(ctx, bot)
	case persona.ModeNews:
		return a.newsPost(ctx, bot)
	case persona.ModeGift:
		return a.giftPost(ctx, bot)
	}
	return fmt.Errorf("persona %s: unknown mode %q", a.persona.Handle, mode)
}

func (a *Actor) textPost(ctx context.Context, bot *models.Bot, natural bool) error {
	text, err := a.text.GenerateText(ctx, a.persona.BuildNewTextPrompt(natural), a.persona.System)
	if err != nil {
		middleware.ProviderFailures.WithLabelValues(a.persona.Handle, "gemini").Inc()
		return fmt.Errorf("generate post: %w", err)
	}
	return a.save(ctx, &models.Post{
		BotID: bot.ID,
		Bot:   *bot,
		Kind:  models.KindStandard,
		Text:  text,
	})
}

func (a *Actor) mediaPost(ctx context.Context, bot *models.Bot, video bool) error {
	fields, err := a.text.GenerateStructured(ctx, a.persona.BuildNewMediaPrompt(), a.persona.System)
	if err != nil {
		middleware.ProviderFailures.WithLabelValues(a.persona.Handle, "gemini").Inc()
		return fmt.Errorf("generate media post: %w", err)
	}
	text, visual := fields["text"], fields["visual"]
	if text == "" || visual == "" {
		middleware.ProviderFailures.WithLabelValues(a.persona.Handle, "gemini").Inc()
		return fmt.Errorf("persona %s: structured response missing text or visual", a.persona.Handle)
	}

	var media provider.Media
	var found bool
	if video {
		media, found = a.media.SearchVideo(ctx, visual)
	} else {
		media, found = a.media.SearchImage(ctx, visual)
	}
	if !found {
		middleware.MediaFallbacks.WithLabelValues(a.persona.Handle).Inc()
		middleware.Logger.WarnContext(ctx, "media search degraded to fallback", "keyword", visual)
	}

	return a.save(ctx, &models.Post{
		BotID:       bot.ID,
		Bot:         *bot,
		Kind:        models.KindStandard,
		Text:        text,
		MediaURL:    media.URL,
		MediaSource: media.Source,
		MediaLink:   media.Link,
	})
}

func (a *Actor) recipePost(ctx context.Context, bot *models.Bot) error {
	recipe := persona.RecipeBook[a.pick(len(persona.RecipeBook))]

	intro, err := a.text.GenerateText(ctx,
		fmt.Sprintf(a.persona.BuildNewMediaPrompt(), recipe.Name), a.persona.System)
	if err != nil {
		middleware.ProviderFailures.WithLabelValues(a.persona.Handle, "gemini").Inc()
		return fmt.Errorf("generate recipe intro: %w", err)
	}

	payload, err := json.Marshal(recipe)
	if err != nil {
		return fmt.Errorf("encode recipe: %w", err)
	}

	return a.save(ctx, &models.Post{
		BotID:    bot.ID,
		Bot:      *bot,
		Kind:     models.KindRecipe,
		Title:    recipe.Name,
		Text:     intro,
		MediaURL: recipe.Photo,
		Payload:  payload,
	})
}

func (a *Actor) newsPost(ctx context.Context, bot *models.Bot) error {
	article, err := a.news.FetchArticle(ctx, a.persona.Feeds)
	if err != nil {
		middleware.ProviderFailures.WithLabelValues(a.persona.Handle, "rss").Inc()
		return fmt.Errorf("fetch article: %w", err)
	}

	fields, err := a.text.GenerateStructured(ctx,
		a.persona.BuildRewritePrompt(article.Title, article.Snippet), a.persona.System)
	if err != nil {
		middleware.ProviderFailures.WithLabelValues(a.persona.Handle, "gemini").Inc()
		return fmt.Errorf("rewrite article: %w", err)
	}
	title, text := fields["title"], fields["text"]
	if title == "" || text == "" {
		middleware.ProviderFailures.WithLabelValues(a.persona.Handle, "gemini").Inc()
		return fmt.Errorf("persona %s: rewrite missing title or text", a.persona.Handle)
	}

	return a.save(ctx, &models.Post{
		BotID:          bot.ID,
		Bot:            *bot,
		Kind:           models.KindNews,
		Title:          title,
		Text:           text,
		ExternalLink:   article.Link,
		ExternalSource: article.Source,
	})
}

func (a *Actor) giftPost(ctx context.Context, bot *models.Bot) error {
	article, err := a.news.FetchArticle(ctx, a.persona.Feeds)
	if err != nil {
		middleware.ProviderFailures.WithLabelValues(a.persona.Handle, "rss").Inc()
		return fmt.Errorf("fetch article: %w", err)
	}

	fields, err := a.text.GenerateStructured(ctx,
		a.persona.BuildRewritePrompt(article.Title, article.Snippet), a.persona.System)
	if err != nil {
		middleware.ProviderFailures.WithLabelValues(a.persona.Handle, "gemini").Inc()
		return fmt.Errorf("rewrite gift alert: %w", err)
	}
	name, desc := fields["toy_name"], fields["toy_description"]
	if name == "" || desc == "" {
		middleware.ProviderFailures.WithLabelValues(a.persona.Handle, "gemini").Inc()
		return fmt.Errorf("persona %s: gift alert missing toy_name or toy_description", a.persona.Handle)
	}

	return a.save(ctx, &models.Post{
		BotID:          bot.ID,
		Bot:            *bot,
		Kind:           models.KindGiftAlert,
		Title:          name,
		Text:           desc,
		ExternalLink:   article.Link,
		ExternalSource: article.Source,
	})
}

func (a *Actor) save(ctx context.Context, post *models.Post) error {
	if err := a.posts.Create(ctx, post); err != nil {
		return fmt.Errorf("save post: %w", err)
	}
	cache.InvalidateFeeds(ctx, a.persona.Handle)
	middleware.PostsWritten.WithLabelValues(a.persona.Handle, post.Kind).Inc()
	middleware.Logger.InfoContext(ctx, "post written", "post_id", post.ID, "kind", post.Kind)
	return nil
}
