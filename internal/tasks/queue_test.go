package tasks

import (
	"context"
	"errors"
	"io"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
)

type delayErr struct {
	d time.Duration
}

func (e delayErr) Error() string        { return "slow down" }
func (e delayErr) Delay() time.Duration { return e.d }

type QueueTestSuite struct {
	suite.Suite
	logger *logrus.Logger
}

func TestQueueSuite(t *testing.T) {
	suite.Run(t, new(QueueTestSuite))
}

func (s *QueueTestSuite) SetupTest() {
	s.logger = logrus.New()
	s.logger.SetOutput(io.Discard)
}

// start запускает очередь и возвращает функцию остановки, дожидающуюся завершения Run.
func (s *QueueTestSuite) start(q *Queue) func() {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		q.Run(ctx)
		close(done)
	}()
	return func() {
		cancel()
		<-done
	}
}

func (s *QueueTestSuite) TestRunsAllTasks() {
	q := New(s.logger).SetWorkers(3)
	stop := s.start(q)

	var count atomic.Int32
	wg := new(sync.WaitGroup)
	for range 20 {
		wg.Add(1)
		q.Go("count", func(context.Context) error {
			defer wg.Done()
			count.Add(1)
			return nil
		})
	}
	wg.Wait()
	stop()

	s.Equal(int32(20), count.Load())
}

func (s *QueueTestSuite) TestRetries() {
	q := New(s.logger).SetMaxAttempts(3).SetRetryDelay(time.Millisecond)
	stop := s.start(q)
	defer stop()

	var calls atomic.Int32
	done := make(chan struct{})
	q.Go("flaky", func(context.Context) error {
		if calls.Add(1) < 3 {
			return errors.New("temporary")
		}
		close(done)
		return nil
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		s.Fail("task was not retried")
	}
	s.Equal(int32(3), calls.Load())
}

func (s *QueueTestSuite) TestGivesUpAfterMaxAttempts() {
	q := New(s.logger).SetMaxAttempts(2).SetRetryDelay(time.Hour)
	stop := s.start(q)

	var calls atomic.Int32
	q.Go("always fails", func(context.Context) error {
		calls.Add(1)
		return delayErr{d: time.Millisecond}
	})

	s.Eventually(func() bool { return calls.Load() == 2 }, time.Second, 5*time.Millisecond)
	stop()
	s.Equal(int32(2), calls.Load())
}

func (s *QueueTestSuite) TestRecoversPanic() {
	q := New(s.logger).SetMaxAttempts(1)
	stop := s.start(q)
	defer stop()

	done := make(chan struct{})
	q.Go("panics", func(context.Context) error {
		panic("boom")
	})
	q.Go("after panic", func(context.Context) error {
		close(done)
		return nil
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		s.Fail("worker died after panic")
	}
}

func (s *QueueTestSuite) TestFullQueue() {
	q := NewWithSize(1, s.logger)

	s.Require().NoError(q.Enqueue("first", func(context.Context) error { return nil }))
	err := q.Enqueue("second", func(context.Context) error { return nil })
	s.ErrorIs(err, ErrQueueFull)
}

func (s *QueueTestSuite) TestDrainsOnStop() {
	q := New(s.logger).SetWorkers(1)

	var count atomic.Int32
	for range 5 {
		s.Require().NoError(q.Enqueue("queued before run", func(context.Context) error {
			count.Add(1)
			return nil
		}))
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	q.Run(ctx)

	s.Equal(int32(5), count.Load())
	s.Error(q.Enqueue("late", func(context.Context) error { return nil }))
}

func (s *QueueTestSuite) TestTaskContextSurvivesStop() {
	q := New(s.logger).SetTaskTimeout(time.Second)

	started := make(chan struct{})
	var ctxErr atomic.Value
	s.Require().NoError(q.Enqueue("long", func(ctx context.Context) error {
		close(started)
		time.Sleep(20 * time.Millisecond)
		if ctx.Err() != nil {
			ctxErr.Store(ctx.Err())
		}
		return nil
	}))

	stop := s.start(q)
	<-started
	stop()

	s.Nil(ctxErr.Load())
}
