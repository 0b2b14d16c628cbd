// Package eventlog provides EventPublisher implementations: a structured slog
// writer, a fan-out combinator and an in-memory recorder.
package eventlog

import (
	"context"
	"log/slog"
	"time"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/ports"
)

var (
	_ ports.EventPublisher = (*LogPublisher)(nil)
	_ ports.EventPublisher = Fanout(nil)
)

// LogPublisher writes every event as one structured log line whose message is the
// event name.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger.With("component", "events")}
}

func (p *LogPublisher) Publish(ctx context.Context, e delivery.Event) {
	p.logger.LogAttrs(ctx, slog.LevelInfo, string(e.Name), attrs(e)...)
}

func attrs(e delivery.Event) []slog.Attr {
	out := make([]slog.Attr, 0, 6)
	switch e.Name {
	case delivery.OrderScheduled:
		out = append(out,
			slog.String("name", e.OrderName),
			slog.Time("due_at", e.DueAt),
		)
	case delivery.ShippingStarted:
		out = append(out,
			slog.String("tracking_id", e.TrackingID.String()),
			slog.String("provider", e.Provider.String()),
			slog.String("name", e.OrderName),
			slog.Duration("delay", e.Delay),
		)
	case delivery.ShippingCompleted, delivery.OrderDelivered, delivery.OrderRemoved:
		out = append(out,
			slog.String("tracking_id", e.TrackingID.String()),
			slog.String("provider", e.Provider.String()),
		)
	}
	if !e.At.IsZero() {
		out = append(out, slog.String("at", e.At.Format(time.RFC3339Nano)))
	}
	return out
}

// Fanout publishes each event to every publisher in order.
type Fanout []ports.EventPublisher

func (f Fanout) Publish(ctx context.Context, e delivery.Event) {
	for _, p := range f {
		p.Publish(ctx, e)
	}
}
