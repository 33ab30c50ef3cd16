package sse

import (
	"bytes"
	"context"
	"log/slog"
	"strconv"

	"github.com/a-h/templ"

	"github.com/mcoot/mindcare/internal/services/forum"
	"github.com/mcoot/mindcare/internal/web/templates/components"
)

// SSE event names sent on the forum channel
const (
	EventPostCreated = "post-created"
	EventPostUpdated = "post-updated"
)

// Broadcaster pushes forum changes to connected viewers
type Broadcaster struct {
	hubManager *HubManager
	logger     *slog.Logger
}

// NewBroadcaster creates a new Broadcaster
func NewBroadcaster(hubManager *HubManager, logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		hubManager: hubManager,
		logger:     logger.With(slog.String("component", "sse-broadcaster")),
	}
}

var _ forum.Notifier = (*Broadcaster)(nil)

// NotifyForum implements forum.Notifier. New posts are sent as a rendered
// card; likes and replies as out-of-band counter swaps.
func (b *Broadcaster) NotifyForum(ctx context.Context, event forum.Event) {
	hub := b.hubManager.GetHub(ForumChannel)
	if hub == nil {
		return
	}

	switch event.Type {
	case forum.EventPostCreated:
		html, ok := b.render(ctx, event, components.PostCard(event.Post))
		if !ok {
			return
		}
		hub.BroadcastEvent(EventPostCreated, html)

	case forum.EventPostLiked:
		hub.BroadcastEvent(EventPostUpdated, WrapForOOBSwap(
			components.LikesElementID(event.Post.ID),
			strconv.Itoa(event.Post.Likes)))

	case forum.EventReplyAdded:
		hub.BroadcastEvent(EventPostUpdated, WrapForOOBSwap(
			components.RepliesElementID(event.Post.ID),
			components.ReplyLabel(event.Post.ReplyCount)))

	default:
		b.logger.Warn("sse unknown forum event", slog.String("type", string(event.Type)))
	}
}

func (b *Broadcaster) render(ctx context.Context, event forum.Event, c templ.Component) (string, bool) {
	var buf bytes.Buffer
	if err := c.Render(ctx, &buf); err != nil {
		b.logger.Error("sse failed to render forum event",
			slog.String("type", string(event.Type)),
			slog.String("post", string(event.Post.ID)),
			slog.Any("error", err))
		return "", false
	}
	return buf.String(), true
}

// WrapForOOBSwap wraps HTML so htmx replaces the content of the element with id
func WrapForOOBSwap(id, html string) string {
	return `<span id="` + id + `" hx-swap-oob="innerHTML">` + html + `</span>`
}
