package queries

import (
	"context"
	"errors"

	"dispatch/internal/pkg/guard"
)

var (
	ErrGetPendingOrdersQueryIsNotConstructed = errors.New(
		"GetPendingOrdersQuery must be created via NewGetPendingOrdersQuery constructor",
	)
)

// PendingCounter reports how many scheduled orders have not been dispatched yet.
type PendingCounter interface {
	Len() int
}

// GetPendingOrdersQuery asks for the number of orders waiting in the scheduler.
type GetPendingOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetPendingOrdersQuery() GetPendingOrdersQuery {
	return GetPendingOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPendingOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingOrdersQueryIsNotConstructed)
}

// GetPendingOrdersQueryHandler reads the scheduler's pending count.
type GetPendingOrdersQueryHandler struct {
	counter PendingCounter
}

func NewGetPendingOrdersQueryHandler(counter PendingCounter) GetPendingOrdersQueryHandler {
	return GetPendingOrdersQueryHandler{counter: counter}
}

func (h GetPendingOrdersQueryHandler) Handle(_ context.Context, query GetPendingOrdersQuery) (int, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}
	return h.counter.Len(), nil
}
