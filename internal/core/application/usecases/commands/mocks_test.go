package commands_test

import (
	"context"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type mockOrderQueue struct {
	mock.Mock
}

func (m *mockOrderQueue) AddOrder(o *order.Order) error {
	args := m.Called(o)
	return args.Error(0)
}

type mockSelector struct {
	mock.Mock
}

func (m *mockSelector) SelectProvider() delivery.Provider {
	args := m.Called()
	return args.Get(0).(delivery.Provider)
}

type mockResolver struct {
	mock.Mock
}

func (m *mockResolver) Resolve(kind delivery.Provider) ports.DeliveryProvider {
	args := m.Called(kind)
	return args.Get(0).(ports.DeliveryProvider)
}

type mockProvider struct {
	mock.Mock
	kind delivery.Provider
}

func (m *mockProvider) Kind() delivery.Provider {
	return m.kind
}

func (m *mockProvider) Ship(ctx context.Context, shipment *delivery.Shipment) error {
	args := m.Called(ctx, shipment)
	if err := args.Error(0); err != nil {
		return err
	}
	return shipment.AssignTrackingID(kernel.NewUUID())
}
