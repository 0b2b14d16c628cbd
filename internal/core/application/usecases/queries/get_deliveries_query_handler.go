package queries

import (
	"context"

	"dispatch/internal/core/ports"
)

// GetDeliveriesQueryHandler reads a snapshot of the delivery store.
// Results keep the store's scan order: oldest UpdatedAt first, ties broken by tracking id.
type GetDeliveriesQueryHandler struct {
	store ports.DeliveryStore
}

func NewGetDeliveriesQueryHandler(store ports.DeliveryStore) GetDeliveriesQueryHandler {
	return GetDeliveriesQueryHandler{store: store}
}

func (h GetDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveriesQuery,
) ([]GetDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries := h.store.Scan(ctx)
	deliveries := make([]GetDeliveriesQueryResponse, 0, len(entries))
	for _, e := range entries {
		deliveries = append(deliveries, GetDeliveriesQueryResponse{
			TrackingID: e.TrackingID,
			Provider:   e.Record.Provider(),
			Status:     e.Record.Status(),
			UpdatedAt:  e.Record.UpdatedAt(),
		})
	}

	return deliveries, nil
}
