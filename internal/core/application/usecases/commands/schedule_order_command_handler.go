package commands

import (
	"context"

	"dispatch/internal/core/domain/model/order"
)

// ScheduleOrderCommandHandler turns a ScheduleOrderCommand into an Order and queues it.
//
// Example:
//
//	handler := NewScheduleOrderCommandHandler(scheduler)
//	cmd, _ := NewScheduleOrderCommand("burger", time.Now().Add(5*time.Second))
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return err
//	}
type ScheduleOrderCommandHandler struct {
	queue OrderQueue
}

func NewScheduleOrderCommandHandler(queue OrderQueue) ScheduleOrderCommandHandler {
	return ScheduleOrderCommandHandler{queue: queue}
}

// Handle validates the command and enqueues the order. It never waits for dispatch.
func (h ScheduleOrderCommandHandler) Handle(_ context.Context, cmd ScheduleOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	o, err := order.NewOrder(cmd.Name(), cmd.DueAt())
	if err != nil {
		return err
	}

	return h.queue.AddOrder(o)
}
