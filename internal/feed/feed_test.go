package feed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"northpole/internal/models"
)

var base = time.Date(2025, 12, 1, 12, 0, 0, 0, time.UTC)

func post(id string, minutesAfter int) *models.Post {
	return &models.Post{
		ID:        id,
		Kind:      models.KindStandard,
		Text:      "post " + id,
		CreatedAt: base.Add(time.Duration(minutesAfter) * time.Minute),
	}
}

func reply(id, target string, minutesAfter int) *models.Post {
	p := post(id, minutesAfter)
	p.ReplyToID = &target
	return p
}

func TestAssembleThreadsNewestFirst(t *testing.T) {
	f := Assemble([]*models.Post{
		post("a", 0),
		post("b", 10),
		post("c", 5),
	})

	require.Len(t, f.Threads, 3)
	assert.Equal(t, "b", f.Threads[0].Post.ID)
	assert.Equal(t, "c", f.Threads[1].Post.ID)
	assert.Equal(t, "a", f.Threads[2].Post.ID)
}

func TestAssembleRepliesOldestFirst(t *testing.T) {
	f := Assemble([]*models.Post{
		post("a", 0),
		reply("r2", "a", 20),
		reply("r1", "a", 10),
	})

	require.Len(t, f.Threads, 1)
	require.Len(t, f.Threads[0].Replies, 2)
	assert.Equal(t, "r1", f.Threads[0].Replies[0].ID)
	assert.Equal(t, "r2", f.Threads[0].Replies[1].ID)
}

func TestAssembleTwoTierReplyToReply(t *testing.T) {
	// c replies to b, which replies to a. c must surface in a's flat reply
	// list: not nested, not promoted, not dropped.
	f := Assemble([]*models.Post{
		post("a", 0),
		reply("b", "a", 10),
		reply("c", "b", 20),
	})

	require.Len(t, f.Threads, 1)
	assert.Equal(t, "a", f.Threads[0].Post.ID)
	require.Len(t, f.Threads[0].Replies, 2)
	assert.Equal(t, "b", f.Threads[0].Replies[0].ID)
	assert.Equal(t, "c", f.Threads[0].Replies[1].ID)
}

func TestAssembleDropsOrphanReplies(t *testing.T) {
	f := Assemble([]*models.Post{
		post("a", 0),
		reply("r", "missing", 10),
	})

	require.Len(t, f.Threads, 1)
	assert.Empty(t, f.Threads[0].Replies)
}

func TestAssembleGiftAlertSingleton(t *testing.T) {
	g1 := post("g1", 0)
	g1.Kind = models.KindGiftAlert
	g2 := post("g2", 30)
	g2.Kind = models.KindGiftAlert
	g3 := post("g3", 15)
	g3.Kind = models.KindGiftAlert

	f := Assemble([]*models.Post{g1, g2, g3, post("a", 5)})

	require.NotNil(t, f.Featured)
	assert.Equal(t, "g2", f.Featured.ID)
	require.Len(t, f.Threads, 1)
	assert.Equal(t, "a", f.Threads[0].Post.ID)
}

func TestAssembleEmptyInput(t *testing.T) {
	f := Assemble(nil)

	assert.NotNil(t, f.Threads)
	assert.Empty(t, f.Threads)
	assert.NotNil(t, f.News)
	require.NotNil(t, f.Featured)
	assert.Equal(t, FallbackGift.Title, f.Featured.Title)
	assert.Equal(t, "The Giggle-Bot 5000!", f.Featured.Title)
}

func TestAssembleNewsColumn(t *testing.T) {
	n1 := post("n1", 5)
	n1.Kind = models.KindNews
	n2 := post("n2", 25)
	n2.Kind = models.KindNews

	f := Assemble([]*models.Post{post("a", 0), n1, n2})

	// News items stay in the thread list and also appear in the news column.
	require.Len(t, f.Threads, 3)
	require.Len(t, f.News, 2)
	assert.Equal(t, "n2", f.News[0].ID)
	assert.Equal(t, "n1", f.News[1].ID)
}

func TestAssembleReplyCycleDoesNotSpin(t *testing.T) {
	// Two replies pointing at each other with no top-level root.
	f := Assemble([]*models.Post{
		reply("x", "y", 0),
		reply("y", "x", 1),
	})

	assert.Empty(t, f.Threads)
}
