// Package scheduler holds orders until their due time and hands each one to a
// dispatcher exactly once.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// DefaultPollInterval bounds how long the loop sleeps between due checks.
const DefaultPollInterval = 500 * time.Millisecond

var ErrSchedulerStopped = errors.New("scheduler is stopped")

// Dispatcher ships one due order.
type Dispatcher interface {
	Dispatch(ctx context.Context, o *order.Order) error
}

// DispatcherFunc adapts a function to Dispatcher.
type DispatcherFunc func(ctx context.Context, o *order.Order) error

func (f DispatcherFunc) Dispatch(ctx context.Context, o *order.Order) error {
	return f(ctx, o)
}

type Config struct {
	PollInterval time.Duration
}

// Scheduler is the due-queue plus its processing loop.
//
// AddOrder is safe from any goroutine and never waits on the loop. Run owns dispatch:
// an order leaves the queue under the lock, so it is handed to the dispatcher once.
type Scheduler struct {
	config     Config
	dispatcher Dispatcher
	publisher  ports.EventPublisher
	clock      ports.Clock
	logger     *slog.Logger

	mu      sync.Mutex
	queue   dueQueue
	seq     uint64
	stopped bool

	wake chan struct{}
}

func New(
	config Config,
	dispatcher Dispatcher,
	publisher ports.EventPublisher,
	clock ports.Clock,
	logger *slog.Logger,
) (*Scheduler, error) {
	if config.PollInterval <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"poll interval is invalid",
			fmt.Errorf("%s is not positive", config.PollInterval),
		)
	}
	if dispatcher == nil {
		return nil, errs.NewValueIsRequiredError("dispatcher")
	}

	return &Scheduler{
		config:     config,
		dispatcher: dispatcher,
		publisher:  publisher,
		clock:      clock,
		logger:     logger.With("component", "scheduler"),
		wake:       make(chan struct{}, 1),
	}, nil
}

// AddOrder queues o for dispatch at o.DueAt(). It returns ErrSchedulerStopped once
// Run has returned.
func (s *Scheduler) AddOrder(o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return ErrSchedulerStopped
	}
	s.seq++
	s.queue.push(o, s.seq)
	s.mu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}

	s.publisher.Publish(context.Background(), delivery.NewOrderScheduledEvent(o.Name(), o.DueAt(), s.clock.Now()))
	return nil
}

// Len returns the number of orders not yet handed to the dispatcher.
func (s *Scheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.queue.Len()
}

// Run dispatches due orders until ctx is cancelled. Orders still queued when Run
// returns are dropped.
func (s *Scheduler) Run(ctx context.Context) error {
	s.logger.InfoContext(ctx, "Scheduler started", "poll_interval", s.config.PollInterval)

	timer := time.NewTimer(s.config.PollInterval)
	defer timer.Stop()

	for {
		s.dispatchDue(ctx)

		timer.Reset(s.nextWait())
		select {
		case <-ctx.Done():
			s.mu.Lock()
			s.stopped = true
			dropped := s.queue.Len()
			s.mu.Unlock()

			s.logger.InfoContext(ctx, "Scheduler stopped", "dropped", dropped)
			return ctx.Err()
		case <-s.wake:
		case <-timer.C:
		}
	}
}

func (s *Scheduler) dispatchDue(ctx context.Context) {
	s.mu.Lock()
	due := s.queue.popDue(s.clock.Now())
	s.mu.Unlock()

	for i, item := range due {
		if ctx.Err() != nil {
			// Undispatched orders go back so Run reports them as dropped.
			s.mu.Lock()
			s.queue.restore(due[i:])
			s.mu.Unlock()
			return
		}
		if err := s.dispatcher.Dispatch(ctx, item.order); err != nil {
			s.logger.ErrorContext(ctx, "Failed to dispatch order", "order", item.order.Name(), "error", err)
		}
	}
}

func (s *Scheduler) nextWait() time.Duration {
	s.mu.Lock()
	next := s.queue.peek()
	s.mu.Unlock()

	if next == nil {
		return s.config.PollInterval
	}
	return min(next.TimeUntilDue(s.clock.Now()), s.config.PollInterval)
}
