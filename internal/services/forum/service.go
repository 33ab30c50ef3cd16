package forum

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/mcoot/mindcare/internal/dependencies/clock"
	"github.com/mcoot/mindcare/internal/metrics"
	"github.com/mcoot/mindcare/internal/model"
)

// EventType names a forum change pushed to viewers
type EventType string

const (
	EventPostCreated EventType = "post_created"
	EventPostLiked   EventType = "post_liked"
	EventReplyAdded  EventType = "reply_added"
)

// Event describes a change to a thread. Post.Liked is always false.
type Event struct {
	Type EventType
	Post model.Post
}

// Notifier receives forum events
type Notifier interface {
	NotifyForum(ctx context.Context, event Event)
}

type thread struct {
	post      model.Post
	baseLikes int
	likedBy   map[model.ProfileID]struct{}
}

// Service is the process-wide, in-memory peer forum
type Service struct {
	clock    clock.Clock
	notifier Notifier
	logger   *slog.Logger

	mu        sync.RWMutex
	threads   []*thread // newest first
	nextPost  int
	nextReply int
}

// New creates a forum seeded with the starter threads. notifier may be nil.
func New(clk clock.Clock, notifier Notifier, logger *slog.Logger) *Service {
	threads := seedPosts(clk.Now())
	for _, t := range threads {
		t.likedBy = make(map[model.ProfileID]struct{})
	}
	return &Service{
		clock:     clk,
		notifier:  notifier,
		logger:    logger.With("component", "forum"),
		threads:   threads,
		nextPost:  len(threads) + 1,
		nextReply: 3,
	}
}

// SetNotifier replaces the notifier
func (s *Service) SetNotifier(n Notifier) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifier = n
}

// List returns posts newest first. query matches title, content or tags
// case-insensitively; tag, when set, must match one tag exactly.
func (s *Service) List(query, tag string, viewer model.ProfileID) []model.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query = strings.ToLower(strings.TrimSpace(query))
	result := make([]model.Post, 0, len(s.threads))
	for _, t := range s.threads {
		if !t.matches(query) || (tag != "" && !hasTag(t.post.Tags, tag)) {
			continue
		}
		result = append(result, t.view(viewer))
	}
	return result
}

// Get returns a single post as seen by viewer
func (s *Service) Get(id model.PostID, viewer model.ProfileID) (*model.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t := s.find(id)
	if t == nil {
		return nil, model.ErrPostNotFound
	}
	post := t.view(viewer)
	return &post, nil
}

// Create adds a post at the top of the forum. A blank author name posts as
// Anonymous and empty tags default to DefaultTag.
func (s *Service) Create(ctx context.Context, author model.Author, title, content string, tags []string) (*model.Post, error) {
	title = strings.TrimSpace(title)
	if title == "" || strings.TrimSpace(content) == "" {
		return nil, model.ErrInvalidPost
	}
	if strings.TrimSpace(author.Name) == "" {
		author.Name = model.AnonymousAuthor
	}
	tags = normalizeTags(tags)

	s.mu.Lock()
	t := &thread{
		post: model.Post{
			ID:        model.PostID(strconv.Itoa(s.nextPost)),
			Author:    author,
			Title:     title,
			Content:   content,
			CreatedAt: s.clock.Now(),
			Tags:      tags,
		},
		likedBy: make(map[model.ProfileID]struct{}),
	}
	s.nextPost++
	s.threads = append([]*thread{t}, s.threads...)
	post := t.view("")
	notifier := s.notifier
	s.mu.Unlock()

	metrics.ForumPostsTotal.Inc()
	s.logger.Info("post created", "post", string(post.ID))
	s.notify(ctx, notifier, Event{Type: EventPostCreated, Post: post})
	return &post, nil
}

// ToggleLike likes the post for viewer, or removes an existing like
func (s *Service) ToggleLike(ctx context.Context, id model.PostID, viewer model.ProfileID) (*model.Post, error) {
	s.mu.Lock()
	t := s.find(id)
	if t == nil {
		s.mu.Unlock()
		return nil, model.ErrPostNotFound
	}
	if _, liked := t.likedBy[viewer]; liked {
		delete(t.likedBy, viewer)
	} else {
		t.likedBy[viewer] = struct{}{}
	}
	post := t.view(viewer)
	notifier := s.notifier
	s.mu.Unlock()

	event := post
	event.Liked = false
	s.notify(ctx, notifier, Event{Type: EventPostLiked, Post: event})
	return &post, nil
}

// Reply appends a reply to the post
func (s *Service) Reply(ctx context.Context, id model.PostID, author model.Author, content string) (*model.Reply, error) {
	if strings.TrimSpace(content) == "" {
		return nil, model.ErrEmptyReply
	}
	if strings.TrimSpace(author.Name) == "" {
		author.Name = model.AnonymousAuthor
	}

	s.mu.Lock()
	t := s.find(id)
	if t == nil {
		s.mu.Unlock()
		return nil, model.ErrPostNotFound
	}
	reply := model.Reply{
		ID:        strconv.Itoa(s.nextReply),
		Author:    author,
		Content:   content,
		CreatedAt: s.clock.Now(),
	}
	s.nextReply++
	t.post.Replies = append(t.post.Replies, reply)
	t.post.ReplyCount++
	post := t.view("")
	notifier := s.notifier
	s.mu.Unlock()

	s.notify(ctx, notifier, Event{Type: EventReplyAdded, Post: post})
	return &reply, nil
}

// Tags returns the popular tag list
func (s *Service) Tags() []string {
	return append([]string(nil), PopularTags...)
}

func (s *Service) notify(ctx context.Context, n Notifier, event Event) {
	if n == nil {
		return
	}
	n.NotifyForum(ctx, event)
}

// find must be called with mu held
func (s *Service) find(id model.PostID) *thread {
	for _, t := range s.threads {
		if t.post.ID == id {
			return t
		}
	}
	return nil
}

func (t *thread) matches(query string) bool {
	if query == "" {
		return true
	}
	if strings.Contains(strings.ToLower(t.post.Title), query) ||
		strings.Contains(strings.ToLower(t.post.Content), query) {
		return true
	}
	for _, tag := range t.post.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

// view copies the post and fills in viewer-specific fields
func (t *thread) view(viewer model.ProfileID) model.Post {
	post := t.post
	post.Tags = append([]string(nil), t.post.Tags...)
	post.Replies = append([]model.Reply(nil), t.post.Replies...)
	post.Likes = t.baseLikes + len(t.likedBy)
	_, post.Liked = t.likedBy[viewer]
	return post
}

func hasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

func normalizeTags(tags []string) []string {
	result := make([]string, 0, len(tags))
	seen := make(map[string]bool)
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		result = append(result, tag)
	}
	if len(result) == 0 {
		result = []string{DefaultTag}
	}
	return result
}
