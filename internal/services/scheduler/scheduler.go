package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/mcoot/mindcare/internal/dependencies/clock"
)

// ErrCancelled is returned by Task.Wait when the task was discarded before it ran
var ErrCancelled = errors.New("scheduled task cancelled")

// Scheduler runs delayed work on an injectable clock
type Scheduler struct {
	clock clock.Clock
}

// New creates a Scheduler
func New(clk clock.Clock) *Scheduler {
	return &Scheduler{clock: clk}
}

// Task is a single delayed invocation. Once Cancel returns, fn has either
// completed or will never run.
type Task struct {
	mu        sync.Mutex
	cancelled bool
	ran       bool
	err       error

	stop chan struct{}
	done chan struct{}
	once sync.Once
}

// Schedule runs fn after delay unless the task is cancelled or ctx is done first
func (s *Scheduler) Schedule(ctx context.Context, delay time.Duration, fn func()) *Task {
	t := &Task{
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}

	timer := s.clock.After(delay)
	go func() {
		select {
		case <-timer:
			t.run(fn)
		case <-ctx.Done():
			t.discard(ctx.Err())
		case <-t.stop:
			t.discard(ErrCancelled)
		}
	}()

	return t
}

func (t *Task) run(fn func()) {
	t.mu.Lock()
	if t.cancelled {
		t.mu.Unlock()
		return
	}
	fn()
	t.ran = true
	t.mu.Unlock()
	close(t.done)
}

func (t *Task) discard(cause error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.ran || t.cancelled {
		return
	}
	t.cancelled = true
	if errors.Is(cause, ErrCancelled) {
		t.err = ErrCancelled
	} else {
		t.err = errors.Join(ErrCancelled, cause)
	}
	close(t.done)
}

// Cancel discards the task if it has not run yet. It blocks while fn is running.
func (t *Task) Cancel() {
	t.discard(ErrCancelled)
	t.once.Do(func() { close(t.stop) })
}

// Done is closed once the task has run or been discarded
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Err reports ErrCancelled for a discarded task and nil otherwise
func (t *Task) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.err
}

// Wait blocks until the task finishes. A task discarded for any reason
// yields an error matching ErrCancelled. If ctx ends first its error is returned.
func (t *Task) Wait(ctx context.Context) error {
	select {
	case <-t.done:
		return t.Err()
	case <-ctx.Done():
		return ctx.Err()
	}
}
