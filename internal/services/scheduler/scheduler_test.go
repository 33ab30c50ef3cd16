package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/mindcare/internal/dependencies/mocks"
)

type SchedulerSuite struct {
	suite.Suite
	clock     *mocks.MockClock
	scheduler *Scheduler
	ctx       context.Context
}

func TestSchedulerSuite(t *testing.T) {
	suite.Run(t, new(SchedulerSuite))
}

func (s *SchedulerSuite) SetupTest() {
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.scheduler = New(s.clock)
	s.ctx = context.Background()
}

func (s *SchedulerSuite) TestTaskRunsAfterDelay() {
	var ran atomic.Bool
	task := s.scheduler.Schedule(s.ctx, 1500*time.Millisecond, func() { ran.Store(true) })

	s.Require().NoError(task.Wait(s.ctx))
	s.True(ran.Load())
	s.Equal([]time.Duration{1500 * time.Millisecond}, s.clock.Requested())
}

func (s *SchedulerSuite) TestHeldTaskWaitsForClock() {
	s.clock.HoldTimers()
	var ran atomic.Bool
	task := s.scheduler.Schedule(s.ctx, time.Second, func() { ran.Store(true) })

	s.clock.Advance(500 * time.Millisecond)
	select {
	case <-task.Done():
		s.Fail("task finished before its delay")
	case <-time.After(20 * time.Millisecond):
	}
	s.False(ran.Load())

	s.clock.Advance(500 * time.Millisecond)
	s.Require().NoError(task.Wait(s.ctx))
	s.True(ran.Load())
}

func (s *SchedulerSuite) TestCancelDiscardsTask() {
	s.clock.HoldTimers()
	var ran atomic.Bool
	task := s.scheduler.Schedule(s.ctx, time.Second, func() { ran.Store(true) })

	task.Cancel()
	s.clock.Advance(time.Second)

	s.ErrorIs(task.Wait(s.ctx), ErrCancelled)
	s.False(ran.Load())
}

func (s *SchedulerSuite) TestContextDoneDiscardsTask() {
	s.clock.HoldTimers()
	ctx, cancel := context.WithCancel(s.ctx)
	var ran atomic.Bool
	task := s.scheduler.Schedule(ctx, time.Second, func() { ran.Store(true) })

	cancel()
	<-task.Done()
	s.clock.Advance(time.Second)

	err := task.Err()
	s.ErrorIs(err, ErrCancelled)
	s.ErrorIs(err, context.Canceled)
	s.False(ran.Load())
}

func (s *SchedulerSuite) TestCancelAfterRunIsNoop() {
	task := s.scheduler.Schedule(s.ctx, time.Second, func() {})
	s.Require().NoError(task.Wait(s.ctx))

	task.Cancel()
	s.NoError(task.Err())
}

func (s *SchedulerSuite) TestWaitReturnsWhenCallerGivesUp() {
	s.clock.HoldTimers()
	task := s.scheduler.Schedule(s.ctx, time.Second, func() {})

	ctx, cancel := context.WithCancel(s.ctx)
	cancel()
	s.ErrorIs(task.Wait(ctx), context.Canceled)

	task.Cancel()
}
