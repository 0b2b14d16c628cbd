package providers

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/tasks"
)

var _ ports.DeliveryProvider = (*Simulated)(nil)

// Simulated ships orders for one provider kind without any network call.
type Simulated struct {
	kind      delivery.Provider
	delays    DelayRange
	store     ports.DeliveryStore
	publisher ports.EventPublisher
	clock     ports.Clock
	tasks     *tasks.Set
	int64N    func(n int64) int64
	logger    *slog.Logger
}

// Option customises a Simulated provider.
type Option func(*Simulated)

// WithRandom replaces the delay random source, e.g. with a seeded generator in tests.
func WithRandom(int64N func(n int64) int64) Option {
	return func(p *Simulated) {
		p.int64N = int64N
	}
}

// NewSimulated creates a provider of the given kind. Completion tasks are started on set
// so the caller can drain them on shutdown.
func NewSimulated(
	kind delivery.Provider,
	delays DelayRange,
	store ports.DeliveryStore,
	publisher ports.EventPublisher,
	clock ports.Clock,
	set *tasks.Set,
	logger *slog.Logger,
	opts ...Option,
) (*Simulated, error) {
	if err := kind.Validate(); err != nil {
		return nil, err
	}
	if err := delays.Validate(); err != nil {
		return nil, err
	}

	p := &Simulated{
		kind:      kind,
		delays:    delays,
		store:     store,
		publisher: publisher,
		clock:     clock,
		tasks:     set,
		int64N:    rand.Int64N,
		logger:    logger.With("component", "provider", "provider", kind.String()),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

func (p *Simulated) Kind() delivery.Provider {
	return p.kind
}

// Ship inserts the Ongoing record synchronously and returns once the completion
// task is started. The transit delay runs outside any store lock.
func (p *Simulated) Ship(ctx context.Context, shipment *delivery.Shipment) error {
	if err := shipment.Validate(); err != nil {
		return err
	}

	id := kernel.NewUUID()
	if err := shipment.AssignTrackingID(id); err != nil {
		return err
	}

	rec, err := delivery.NewRecord(p.kind, p.clock.Now())
	if err != nil {
		return err
	}
	if err = p.store.Insert(ctx, id, rec); err != nil {
		return fmt.Errorf("insert delivery record: %w", err)
	}

	delay := p.delays.Draw(p.int64N)
	p.publisher.Publish(ctx, delivery.NewShippingStartedEvent(id, p.kind, shipment.OrderName(), delay, p.clock.Now()))
	p.logger.InfoContext(ctx, "Shipping started",
		"order", shipment.OrderName(),
		"tracking_id", id.String(),
		"delay", delay.String(),
	)

	// The completion must outlive the request that triggered the shipment.
	taskCtx := context.WithoutCancel(ctx)
	p.tasks.Go(func() error {
		return p.complete(taskCtx, id, delay)
	})
	return nil
}

func (p *Simulated) complete(ctx context.Context, id kernel.UUID, delay time.Duration) error {
	timer := time.NewTimer(delay)
	defer timer.Stop()
	<-timer.C

	if _, err := p.store.Transition(ctx, id, delivery.Finished, p.clock.Now()); err != nil {
		p.logger.ErrorContext(ctx, "Failed to finish shipment", "tracking_id", id.String(), "error", err)
		return fmt.Errorf("finish shipment %s: %w", id, err)
	}

	p.publisher.Publish(ctx, delivery.NewShippingCompletedEvent(id, p.kind, p.clock.Now()))
	p.logger.InfoContext(ctx, "Shipping completed", "tracking_id", id.String())
	return nil
}
