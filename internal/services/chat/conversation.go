package chat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/mcoot/mindcare/internal/dependencies/clock"
	"github.com/mcoot/mindcare/internal/metrics"
	"github.com/mcoot/mindcare/internal/model"
	"github.com/mcoot/mindcare/internal/services/scheduler"
)

// ErrConversationClosed is returned by Send after Close
var ErrConversationClosed = errors.New("conversation closed")

// DefaultReplyDelay is how long the assistant appears to type
const DefaultReplyDelay = 1500 * time.Millisecond

// Config holds configuration for conversations
type Config struct {
	ReplyDelay time.Duration
}

// DefaultConfig returns default chat configuration
func DefaultConfig() Config {
	return Config{ReplyDelay: DefaultReplyDelay}
}

// Conversation is one profile's ephemeral chat history
type Conversation struct {
	assistant *Assistant
	scheduler *scheduler.Scheduler
	clock     clock.Clock
	delay     time.Duration
	logger    *slog.Logger

	mu       sync.Mutex
	messages []model.ChatMessage
	nextID   int
	pending  map[*scheduler.Task]struct{}
	closed   bool
}

// NewConversation creates a conversation seeded with the greeting
func NewConversation(
	assistant *Assistant,
	sched *scheduler.Scheduler,
	clk clock.Clock,
	cfg Config,
	logger *slog.Logger,
) *Conversation {
	if cfg.ReplyDelay < 0 {
		cfg.ReplyDelay = 0
	}
	c := &Conversation{
		assistant: assistant,
		scheduler: sched,
		clock:     clk,
		delay:     cfg.ReplyDelay,
		logger:    logger.With("component", "chat"),
		nextID:    1,
		pending:   make(map[*scheduler.Task]struct{}),
	}
	c.messages = []model.ChatMessage{{
		ID:        c.newID(),
		Content:   Greeting,
		Sender:    model.SenderAssistant,
		Timestamp: clk.Now(),
		Type:      model.MessageTypeMotivation,
	}}
	return c
}

// Send appends the user's message and waits for the scheduled reply.
// If ctx ends before the reply is due the reply is discarded and an error
// matching scheduler.ErrCancelled is returned; the user message stays.
func (c *Conversation) Send(ctx context.Context, content string) (*model.ChatMessage, error) {
	if strings.TrimSpace(content) == "" {
		return nil, model.ErrEmptyMessage
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil, ErrConversationClosed
	}
	c.messages = append(c.messages, model.ChatMessage{
		ID:        c.newID(),
		Content:   content,
		Sender:    model.SenderUser,
		Timestamp: c.clock.Now(),
	})
	c.mu.Unlock()

	var reply model.ChatMessage
	task := c.scheduler.Schedule(ctx, c.delay, func() {
		topic, text := c.assistant.Reply(content)

		c.mu.Lock()
		defer c.mu.Unlock()
		reply = model.ChatMessage{
			ID:        c.newID(),
			Content:   text,
			Sender:    model.SenderAssistant,
			Timestamp: c.clock.Now(),
			Type:      model.MessageTypeSuggestion,
			Topic:     topic,
		}
		c.messages = append(c.messages, reply)
	})
	c.track(task)
	defer c.untrack(task)

	if err := task.Wait(context.WithoutCancel(ctx)); err != nil {
		metrics.ChatRepliesTotal.WithLabelValues("discarded").Inc()
		c.logger.Info("chat reply discarded", "error", err)
		return nil, fmt.Errorf("chat reply: %w", err)
	}

	metrics.ChatRepliesTotal.WithLabelValues(reply.Topic).Inc()
	return &reply, nil
}

// Messages returns a copy of the history in order
func (c *Conversation) Messages() []model.ChatMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	result := make([]model.ChatMessage, len(c.messages))
	copy(result, c.messages)
	return result
}

// Pending returns the number of replies still scheduled
func (c *Conversation) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}

// Close cancels pending replies and rejects further messages
func (c *Conversation) Close() {
	c.mu.Lock()
	c.closed = true
	tasks := make([]*scheduler.Task, 0, len(c.pending))
	for task := range c.pending {
		tasks = append(tasks, task)
	}
	c.mu.Unlock()

	for _, task := range tasks {
		task.Cancel()
	}
}

func (c *Conversation) track(task *scheduler.Task) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		go task.Cancel()
	}
	c.pending[task] = struct{}{}
}

func (c *Conversation) untrack(task *scheduler.Task) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.pending, task)
}

// newID must be called with mu held
func (c *Conversation) newID() string {
	id := strconv.Itoa(c.nextID)
	c.nextID++
	return id
}
