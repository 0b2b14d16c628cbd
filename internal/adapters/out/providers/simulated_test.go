package providers_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"dispatch/internal/adapters/out/eventlog"
	"dispatch/internal/adapters/out/memory"
	"dispatch/internal/adapters/out/providers"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/tasks"
	"dispatch/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fastDelays = providers.DelayRange{Min: 5 * time.Millisecond, Max: 20 * time.Millisecond, Step: 5 * time.Millisecond}

type fixture struct {
	store    *memory.DeliveryStore
	recorder *eventlog.Recorder
	tasks    *tasks.Set
	provider *providers.Simulated
}

func newFixture(t *testing.T, kind delivery.Provider, delays providers.DelayRange, opts ...providers.Option) fixture {
	t.Helper()
	f := fixture{
		store:    memory.NewDeliveryStore(),
		recorder: eventlog.NewRecorder(),
		tasks:    &tasks.Set{},
	}
	p, err := providers.NewSimulated(kind, delays, f.store, f.recorder, ports.ClockFunc(time.Now), f.tasks,
		testutil.DiscardLogger(), opts...)
	require.NoError(t, err)
	f.provider = p
	return f
}

func TestNewSimulated(t *testing.T) {
	store := memory.NewDeliveryStore()

	_, err := providers.NewSimulated(delivery.UnknownProvider, fastDelays, store, eventlog.NewRecorder(),
		ports.ClockFunc(time.Now), &tasks.Set{}, testutil.DiscardLogger())
	require.Error(t, err)

	_, err = providers.NewSimulated(delivery.Uber, providers.DelayRange{}, store, eventlog.NewRecorder(),
		ports.ClockFunc(time.Now), &tasks.Set{}, testutil.DiscardLogger())
	require.Error(t, err)
}

func TestSimulated_Ship(t *testing.T) {
	t.Run("should insert an Ongoing record synchronously", func(t *testing.T) {
		f := newFixture(t, delivery.Uklon, providers.DelayRange{Min: time.Hour, Max: time.Hour, Step: time.Second})
		shipment, _ := delivery.NewShipment("pizza-1")

		require.NoError(t, f.provider.Ship(t.Context(), shipment))

		require.NotNil(t, shipment.TrackingID())
		entries := f.store.Scan(t.Context())
		require.Len(t, entries, 1)
		assert.True(t, entries[0].TrackingID.IsEqual(*shipment.TrackingID()))
		assert.Equal(t, delivery.Uklon, entries[0].Record.Provider())
		assert.Equal(t, delivery.Ongoing, entries[0].Record.Status())
		assert.Equal(t, 1, f.tasks.InFlight(), "completion must not run on the caller")
	})

	t.Run("should finish the record after the delay", func(t *testing.T) {
		f := newFixture(t, delivery.Uber, fastDelays)
		shipment, _ := delivery.NewShipment("burger")

		require.NoError(t, f.provider.Ship(t.Context(), shipment))
		require.NoError(t, f.tasks.Wait(t.Context()))

		entries := f.store.Scan(t.Context())
		require.Len(t, entries, 1)
		assert.Equal(t, delivery.Finished, entries[0].Record.Status())
		assert.Equal(t,
			[]delivery.EventName{delivery.ShippingStarted, delivery.ShippingCompleted},
			f.recorder.History(*shipment.TrackingID()))
	})

	t.Run("should publish the drawn delay and order name", func(t *testing.T) {
		f := newFixture(t, delivery.Uber, fastDelays, providers.WithRandom(func(n int64) int64 { return n - 1 }))
		shipment, _ := delivery.NewShipment("pasta")

		require.NoError(t, f.provider.Ship(t.Context(), shipment))
		require.NoError(t, f.tasks.Wait(t.Context()))

		started := f.recorder.ByName(delivery.ShippingStarted)
		require.Len(t, started, 1)
		assert.Equal(t, fastDelays.Max, started[0].Delay)
		assert.Equal(t, "pasta", started[0].OrderName)
		assert.Equal(t, delivery.Uber, started[0].Provider)
	})

	t.Run("should reject a shipment that was already shipped", func(t *testing.T) {
		f := newFixture(t, delivery.Uber, fastDelays)
		shipment, _ := delivery.NewShipment("pizza-2")
		require.NoError(t, f.provider.Ship(t.Context(), shipment))

		err := f.provider.Ship(t.Context(), shipment)

		require.ErrorIs(t, err, delivery.ErrTrackingIDAlreadySet)
		require.NoError(t, f.tasks.Wait(t.Context()))
		assert.Equal(t, 1, f.store.Size(t.Context()))
	})

	t.Run("should reject an unconstructed shipment", func(t *testing.T) {
		f := newFixture(t, delivery.Uber, fastDelays)

		require.Error(t, f.provider.Ship(t.Context(), &delivery.Shipment{}))
		assert.Zero(t, f.store.Size(t.Context()))
	})

	t.Run("completion survives cancellation of the shipping context", func(t *testing.T) {
		f := newFixture(t, delivery.Uber, fastDelays)
		ctx, cancel := context.WithCancel(t.Context())
		shipment, _ := delivery.NewShipment("late-night")

		require.NoError(t, f.provider.Ship(ctx, shipment))
		cancel()
		require.NoError(t, f.tasks.Wait(t.Context()))

		assert.Equal(t, delivery.Finished, f.store.Scan(t.Context())[0].Record.Status())
	})
}

func TestSimulated_ConcurrentShipments(t *testing.T) {
	f := newFixture(t, delivery.Uber, fastDelays)

	const n = 100
	ids := make(chan kernel.UUID, n)
	var wg sync.WaitGroup
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			shipment, _ := delivery.NewShipment("bulk")
			if assert.NoError(t, f.provider.Ship(t.Context(), shipment)) {
				ids <- *shipment.TrackingID()
			}
		}()
	}
	wg.Wait()
	close(ids)
	require.NoError(t, f.tasks.Wait(t.Context()))

	distinct := make(map[kernel.UUID]struct{})
	for id := range ids {
		distinct[id] = struct{}{}
	}
	assert.Len(t, distinct, n)
	assert.Equal(t, n, f.store.Size(t.Context()))
	for _, e := range f.store.Scan(t.Context()) {
		assert.Equal(t, delivery.Finished, e.Record.Status())
	}
	assert.Equal(t, n, f.recorder.Count(delivery.ShippingCompleted))
}
