package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPostIDShape(t *testing.T) {
	id := NewPostID()
	assert.True(t, strings.HasPrefix(id, "echo-"))
	assert.NotEqual(t, id, NewPostID())
}

func TestIsReply(t *testing.T) {
	p := Post{}
	assert.False(t, p.IsReply())

	empty := ""
	p.ReplyToID = &empty
	assert.False(t, p.IsReply())

	target := "echo-1-abc"
	p.ReplyToID = &target
	assert.True(t, p.IsReply())
}

func TestReplySnippet(t *testing.T) {
	short := "Flight practice is going great!"
	assert.Equal(t, short, ReplySnippet(short))

	long := strings.Repeat("jingle ", 20)
	got := ReplySnippet(long)
	assert.True(t, strings.HasSuffix(got, "..."))
	assert.Len(t, []rune(got), 43)
}
