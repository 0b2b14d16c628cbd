package ports

import (
	"context"

	"dispatch/internal/core/domain/model/delivery"
)

// EventPublisher receives lifecycle events. Publish must not block for long and
// must not fail: events are observability, never control flow.
type EventPublisher interface {
	Publish(ctx context.Context, event delivery.Event)
}
