// Package tasks supervises short-lived background tasks so the process can wait for
// them to drain before shutting down.
package tasks

import (
	"context"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Set tracks running tasks. Failures of individual tasks do not cancel the others;
// Wait reports the first one.
//
// Example:
//
//	var set tasks.Set
//	set.Go(func() error {
//	    time.Sleep(delay)
//	    return finish()
//	})
//	if err := set.Wait(shutdownCtx); err != nil {
//	    logger.Error("drain failed", "error", err)
//	}
type Set struct {
	group    errgroup.Group
	inFlight atomic.Int64

	mu      sync.Mutex
	drained chan struct{}
	err     error
}

// Go starts fn in its own goroutine.
func (s *Set) Go(fn func() error) {
	s.inFlight.Add(1)
	s.group.Go(func() error {
		defer s.inFlight.Add(-1)
		return fn()
	})
}

// InFlight returns the number of tasks that have not returned yet.
func (s *Set) InFlight() int {
	return int(s.inFlight.Load())
}

// Wait blocks until every started task has returned or ctx is done, whichever
// comes first. It returns the first task error, or ctx.Err() on timeout.
//
// Concurrent and repeated calls share one drain goroutine, which exits once the
// tasks return, so a timed-out Wait leaves nothing behind but the tasks themselves.
func (s *Set) Wait(ctx context.Context) error {
	drained := s.drain()

	select {
	case <-drained:
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Set) drain() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.drained != nil {
		return s.drained
	}

	drained := make(chan struct{})
	s.drained = drained
	go func() {
		err := s.group.Wait()

		s.mu.Lock()
		s.err = err
		s.drained = nil
		s.mu.Unlock()
		close(drained)
	}()
	return drained
}
