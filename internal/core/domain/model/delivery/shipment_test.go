package delivery_test

import (
	"testing"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShipment(t *testing.T) {
	t.Run("should create an untracked shipment", func(t *testing.T) {
		s, err := delivery.NewShipment("pizza-1")

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.Equal(t, "pizza-1", s.OrderName())
		assert.Nil(t, s.TrackingID())
	})

	t.Run("should require an order name", func(t *testing.T) {
		_, err := delivery.NewShipment("  ")

		require.ErrorIs(t, err, delivery.ErrOrderNameIsRequired)
	})

	t.Run("nil shipment is not constructed", func(t *testing.T) {
		var s *delivery.Shipment

		require.ErrorIs(t, s.Validate(), delivery.ErrShipmentIsNotConstructed)
	})
}

func TestShipment_AssignTrackingID(t *testing.T) {
	s, _ := delivery.NewShipment("burger")
	id := kernel.NewUUID()

	require.NoError(t, s.AssignTrackingID(id))
	require.NotNil(t, s.TrackingID())
	assert.True(t, s.TrackingID().IsEqual(id))

	err := s.AssignTrackingID(kernel.NewUUID())
	require.ErrorIs(t, err, delivery.ErrTrackingIDAlreadySet)

	fresh, _ := delivery.NewShipment("pasta")
	require.ErrorIs(t, fresh.AssignTrackingID(kernel.UUID{}), kernel.ErrUUIDIsNotConstructed)
}
