package http

import (
	"time"

	"github.com/google/uuid"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewOrder is the request body of POST /api/v1/orders. Delay is in whole seconds.
type NewOrder struct {
	Name  string `json:"name"`
	Delay *int   `json:"delay"`
}

// ScheduledOrder acknowledges an accepted order.
type ScheduledOrder struct {
	Name  string    `json:"name"`
	DueAt time.Time `json:"dueAt"`
}

// Delivery is one tracked delivery record.
type Delivery struct {
	TrackingId uuid.UUID `json:"trackingId"` //nolint:revive // matches the JSON field
	Provider   string    `json:"provider"`
	Status     string    `json:"status"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// PendingOrders reports the scheduler's queue depth.
type PendingOrders struct {
	Pending int `json:"pending"`
}
