package mocks

import (
	"sync"
	"time"

	"github.com/mcoot/mindcare/internal/dependencies/clock"
)

// MockClock is a mock implementation of Clock for testing.
//
// By default timers created with After fire immediately and move the clock
// forward by their duration. After HoldTimers is called they fire only when
// Advance moves the clock past their deadline.
type MockClock struct {
	mu          sync.Mutex
	currentTime time.Time
	holdTimers  bool
	timers      []mockTimer
	requested   []time.Duration
}

type mockTimer struct {
	deadline time.Time
	ch       chan time.Time
}

// Ensure MockClock implements Clock
var _ clock.Clock = (*MockClock)(nil)

// NewMockClock creates a MockClock set to the given time
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{currentTime: t}
}

// Now returns the mocked current time
func (c *MockClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentTime
}

// After returns a channel that fires once the mocked time reaches now+d
func (c *MockClock) After(d time.Duration) <-chan time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.requested = append(c.requested, d)
	ch := make(chan time.Time, 1)
	if !c.holdTimers {
		c.currentTime = c.currentTime.Add(d)
		ch <- c.currentTime
		return ch
	}
	c.timers = append(c.timers, mockTimer{deadline: c.currentTime.Add(d), ch: ch})
	return ch
}

// HoldTimers makes subsequent timers wait for Advance
func (c *MockClock) HoldTimers() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.holdTimers = true
}

// PendingTimers returns the number of timers that have not fired
func (c *MockClock) PendingTimers() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.timers)
}

// Requested returns the durations passed to After, in call order
func (c *MockClock) Requested() []time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	result := make([]time.Duration, len(c.requested))
	copy(result, c.requested)
	return result
}

// Advance moves the clock forward by the given duration and fires due timers
func (c *MockClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentTime = c.currentTime.Add(d)

	remaining := c.timers[:0]
	for _, t := range c.timers {
		if !t.deadline.After(c.currentTime) {
			t.ch <- c.currentTime
			continue
		}
		remaining = append(remaining, t)
	}
	c.timers = remaining
}

// Set sets the clock to the given time
func (c *MockClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentTime = t
}
