// Package tasks выполняет фоновые задачи (передача заказа в доставку, письма) вне запроса.
package tasks

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	defaultWorkers     uint = 4
	defaultQueueSize   uint = 256
	defaultMaxAttempts uint = 3
	defaultRetryDelay       = 2 * time.Second
	defaultTaskTimeout      = 30 * time.Second
)

var ErrQueueFull = errors.New("task queue is full")

// Delayer ошибка, которая сама знает, через сколько можно повторить попытку (например 429 от провайдера).
type Delayer interface {
	Delay() time.Duration
}

type task struct {
	name     string
	fn       func(ctx context.Context) error
	attempts uint
}

// Queue пул воркеров, разбирающих задачи из буферизованного канала.
type Queue struct {
	taskCh      chan *task
	l           *logrus.Entry
	workers     uint
	maxAttempts uint
	retryDelay  time.Duration
	taskTimeout time.Duration

	mu      sync.RWMutex
	stopped bool
}

func New(l *logrus.Logger) *Queue {
	return NewWithSize(defaultQueueSize, l)
}

// NewWithSize создает очередь с буфером на size задач.
func NewWithSize(size uint, l *logrus.Logger) *Queue {
	return &Queue{
		taskCh: make(chan *task, size),
		l: l.WithFields(logrus.Fields{
			"component": "tasks",
			"module":    "queue",
		}),
		workers:     defaultWorkers,
		maxAttempts: defaultMaxAttempts,
		retryDelay:  defaultRetryDelay,
		taskTimeout: defaultTaskTimeout,
	}
}

// SetWorkers устанавливает кол-во воркеров.
func (q *Queue) SetWorkers(workers uint) *Queue {
	if workers > 0 {
		q.workers = workers
	}
	return q
}

// SetMaxAttempts устанавливает максимальное кол-во попыток выполнения одной задачи.
func (q *Queue) SetMaxAttempts(attempts uint) *Queue {
	if attempts > 0 {
		q.maxAttempts = attempts
	}
	return q
}

// SetRetryDelay устанавливает паузу между попытками, если ошибка не подсказывает свою.
func (q *Queue) SetRetryDelay(delay time.Duration) *Queue {
	q.retryDelay = delay
	return q
}

func (q *Queue) SetTaskTimeout(timeout time.Duration) *Queue {
	q.taskTimeout = timeout
	return q
}

// Go ставит задачу в очередь. Не блокирует: если очередь заполнена или остановлена, задача
// отбрасывается с записью в лог.
func (q *Queue) Go(name string, fn func(ctx context.Context) error) {
	if err := q.Enqueue(name, fn); err != nil {
		q.l.WithError(err).WithField("task", name).Error("task dropped")
	}
}

// Enqueue то же, что Go, но возвращает ошибку вместо логирования.
func (q *Queue) Enqueue(name string, fn func(ctx context.Context) error) error {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.stopped {
		return fmt.Errorf("enqueue `%s`: queue stopped", name)
	}

	select {
	case q.taskCh <- &task{name: name, fn: fn}:
		return nil
	default:
		return fmt.Errorf("enqueue `%s`: %w", name, ErrQueueFull)
	}
}

// Run запускает воркеров и блокируется до отмены контекста. После отмены новые задачи не принимаются,
// воркеры дорабатывают то, что уже лежит в очереди, и Run возвращается.
func (q *Queue) Run(ctx context.Context) {
	q.l.WithFields(logrus.Fields{
		"workers":     q.workers,
		"maxAttempts": q.maxAttempts,
	}).Info("Starting")

	wg := new(sync.WaitGroup)
	wg.Add(int(q.workers)) // nolint:gosec

	for i := range q.workers {
		go q.worker(ctx, wg, i+1)
	}

	<-ctx.Done()
	q.l.Info("Got stop signal, draining...")

	q.mu.Lock()
	q.stopped = true
	close(q.taskCh)
	q.mu.Unlock()

	wg.Wait()
	q.l.Info("Stopped")
}

func (q *Queue) worker(ctx context.Context, wg *sync.WaitGroup, workerID uint) {
	defer wg.Done()

	// задачи не должны обрываться вместе с контекстом приложения, у каждой свой таймаут.
	taskCtx := context.WithoutCancel(ctx)

	for t := range q.taskCh {
		q.process(ctx, taskCtx, workerID, t)
	}
}

// process выполняет задачу, повторяя ее до maxAttempts раз. Если приложение останавливается,
// повторы прекращаются.
func (q *Queue) process(runCtx, taskCtx context.Context, workerID uint, t *task) {
	l := q.l.WithFields(logrus.Fields{
		"worker": workerID,
		"task":   t.name,
	})

	for {
		t.attempts++
		err := q.execute(taskCtx, t)
		if err == nil {
			l.WithField("attempt", t.attempts).Debug("Success")
			return
		}

		if t.attempts >= q.maxAttempts {
			l.WithError(err).WithField("attempt", t.attempts).Error("task failed")
			return
		}

		delay := q.retryDelay
		var d Delayer
		if errors.As(err, &d) {
			delay = d.Delay()
		}
		l.WithError(err).WithFields(logrus.Fields{
			"attempt": t.attempts,
			"retryIn": delay.String(),
		}).Warn("task attempt failed")

		select {
		case <-runCtx.Done():
			l.Warn("stopping, retry skipped")
			return
		case <-time.After(delay):
		}
	}
}

//nolint:nonamedreturns
func (q *Queue) execute(ctx context.Context, t *task) (err error) {
	ctx, cancel := context.WithTimeout(ctx, q.taskTimeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("task panic: %v", r)
		}
	}()

	return t.fn(ctx)
}
