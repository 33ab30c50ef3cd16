package sse

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/mindcare/internal/model"
	"github.com/mcoot/mindcare/internal/services/forum"
	"github.com/mcoot/mindcare/internal/testutil"
)

func TestWrapForOOBSwap(t *testing.T) {
	assert.Equal(t,
		`<span id="post-1-likes" hx-swap-oob="innerHTML">25</span>`,
		WrapForOOBSwap("post-1-likes", "25"))
	assert.Equal(t,
		`<span id="status" hx-swap-oob="innerHTML"></span>`,
		WrapForOOBSwap("status", ""))
}

func newForumSubscriber(t *testing.T) (*Broadcaster, *Client) {
	t.Helper()
	manager := NewHubManager(testutil.NopLogger())
	t.Cleanup(manager.Close)

	hub := manager.GetOrCreateHub(ForumChannel)
	client := NewClient(hub, "viewer")
	hub.Register(client)
	waitForClients(t, hub, 1)

	return NewBroadcaster(manager, testutil.NopLogger()), client
}

func samplePost() model.Post {
	return model.Post{
		ID:         "7",
		Author:     model.Author{Name: "Asha", Verified: true},
		Title:      "Exam <nerves>",
		Content:    "Any tips?",
		CreatedAt:  time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
		Likes:      3,
		Tags:       []string{"exams"},
		ReplyCount: 1,
	}
}

// dataLines strips the SSE framing and returns the event name and payload
func dataLines(t *testing.T, msg string) (string, string) {
	t.Helper()
	var event string
	var data []string
	for _, line := range strings.Split(strings.TrimSpace(msg), "\n") {
		switch {
		case strings.HasPrefix(line, "event: "):
			event = strings.TrimPrefix(line, "event: ")
		case strings.HasPrefix(line, "data: "):
			data = append(data, strings.TrimPrefix(line, "data: "))
		}
	}
	return event, strings.Join(data, "\n")
}

func TestBroadcaster_PostCreated(t *testing.T) {
	b, client := newForumSubscriber(t)

	b.NotifyForum(context.Background(), forum.Event{Type: forum.EventPostCreated, Post: samplePost()})

	event, data := dataLines(t, receive(t, client))
	assert.Equal(t, EventPostCreated, event)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(data))
	require.NoError(t, err)
	card := doc.Find("article#post-7")
	require.Equal(t, 1, card.Length())
	assert.Equal(t, "Exam <nerves>", card.Find(".post-title").Text())
	assert.Equal(t, "3", card.Find("#post-7-likes").Text())
	assert.Equal(t, "1 reply", card.Find("#post-7-replies").Text())
}

func TestBroadcaster_PostLiked(t *testing.T) {
	b, client := newForumSubscriber(t)

	post := samplePost()
	post.Likes = 4
	b.NotifyForum(context.Background(), forum.Event{Type: forum.EventPostLiked, Post: post})

	event, data := dataLines(t, receive(t, client))
	assert.Equal(t, EventPostUpdated, event)
	assert.Equal(t, `<span id="post-7-likes" hx-swap-oob="innerHTML">4</span>`, data)
}

func TestBroadcaster_ReplyAdded(t *testing.T) {
	b, client := newForumSubscriber(t)

	post := samplePost()
	post.ReplyCount = 9
	b.NotifyForum(context.Background(), forum.Event{Type: forum.EventReplyAdded, Post: post})

	_, data := dataLines(t, receive(t, client))
	assert.Contains(t, data, `id="post-7-replies"`)
	assert.Contains(t, data, "9 replies")
}

func TestBroadcaster_NoHubIsNoop(t *testing.T) {
	manager := NewHubManager(testutil.NopLogger())
	b := NewBroadcaster(manager, testutil.NopLogger())

	assert.NotPanics(t, func() {
		b.NotifyForum(context.Background(), forum.Event{Type: forum.EventPostCreated, Post: samplePost()})
	})
	assert.Nil(t, manager.GetHub(ForumChannel))
}
