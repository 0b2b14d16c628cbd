package delivery

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
)

// EventName is the stable name of a lifecycle event.
type EventName string

const (
	OrderScheduled    EventName = "order_scheduled"
	ShippingStarted   EventName = "shipping_started"
	ShippingCompleted EventName = "shipping_completed"
	OrderDelivered    EventName = "order_delivered"
	OrderRemoved      EventName = "order_removed"
)

// Event is the structured signal emitted for every externally visible step.
// Fields that do not apply to a given event keep their zero value:
//
//	order_scheduled     OrderName, DueAt
//	shipping_started    TrackingID, Provider, OrderName, Delay
//	shipping_completed  TrackingID, Provider
//	order_delivered     TrackingID, Provider
//	order_removed       TrackingID, Provider
type Event struct {
	Name       EventName
	TrackingID kernel.UUID
	Provider   Provider
	OrderName  string
	DueAt      time.Time
	Delay      time.Duration
	At         time.Time
}

func NewOrderScheduledEvent(orderName string, dueAt, at time.Time) Event {
	return Event{Name: OrderScheduled, OrderName: orderName, DueAt: dueAt, At: at}
}

func NewShippingStartedEvent(id kernel.UUID, p Provider, orderName string, delay time.Duration, at time.Time) Event {
	return Event{Name: ShippingStarted, TrackingID: id, Provider: p, OrderName: orderName, Delay: delay, At: at}
}

func NewShippingCompletedEvent(id kernel.UUID, p Provider, at time.Time) Event {
	return Event{Name: ShippingCompleted, TrackingID: id, Provider: p, At: at}
}

func NewOrderDeliveredEvent(id kernel.UUID, p Provider, at time.Time) Event {
	return Event{Name: OrderDelivered, TrackingID: id, Provider: p, At: at}
}

func NewOrderRemovedEvent(id kernel.UUID, p Provider, at time.Time) Event {
	return Event{Name: OrderRemoved, TrackingID: id, Provider: p, At: at}
}
