// Package queries contains read-only operations over dispatch state.
package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrGetDeliveriesQueryIsNotConstructed = errors.New(
		"GetDeliveriesQuery must be created via NewGetDeliveriesQuery constructor",
	)
)

// GetDeliveriesQuery retrieves every tracked delivery record.
//
// Example:
//
//	query := NewGetDeliveriesQuery()
//	handler := NewGetDeliveriesQueryHandler(store)
//
//	deliveries, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get deliveries: %w", err)
//	}
//
//	for _, d := range deliveries {
//	    fmt.Printf("%s %s %s\n", d.TrackingID, d.Provider, d.Status)
//	}
type GetDeliveriesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDeliveriesQuery creates a parameterless query over the whole store.
func NewGetDeliveriesQuery() GetDeliveriesQuery {
	return GetDeliveriesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveriesQueryIsNotConstructed)
}

// GetDeliveriesQueryResponse is the read model of one delivery record.
type GetDeliveriesQueryResponse struct {
	TrackingID kernel.UUID
	Provider   delivery.Provider
	Status     delivery.Status
	UpdatedAt  time.Time
}
