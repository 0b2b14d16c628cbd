package memory_test

import (
	"sync"
	"testing"
	"time"

	"dispatch/internal/adapters/out/memory"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func newOngoing(t *testing.T, p delivery.Provider, at time.Time) delivery.Record {
	t.Helper()
	rec, err := delivery.NewRecord(p, at)
	require.NoError(t, err)
	return rec
}

func TestDeliveryStore_Insert(t *testing.T) {
	ctx := t.Context()

	t.Run("should insert an Ongoing record", func(t *testing.T) {
		store := memory.NewDeliveryStore()
		id := kernel.NewUUID()

		require.NoError(t, store.Insert(ctx, id, newOngoing(t, delivery.Uber, base)))

		assert.Equal(t, 1, store.Size(ctx))
		entries := store.Scan(ctx)
		require.Len(t, entries, 1)
		assert.True(t, entries[0].TrackingID.IsEqual(id))
		assert.Equal(t, delivery.Ongoing, entries[0].Record.Status())
	})

	t.Run("should reject a duplicate tracking id", func(t *testing.T) {
		store := memory.NewDeliveryStore()
		id := kernel.NewUUID()
		require.NoError(t, store.Insert(ctx, id, newOngoing(t, delivery.Uber, base)))

		err := store.Insert(ctx, id, newOngoing(t, delivery.Uklon, base))

		require.ErrorIs(t, err, memory.ErrTrackingIDExists)
		assert.Equal(t, delivery.Uber, store.Scan(ctx)[0].Record.Provider())
	})

	t.Run("should reject a record that is not Ongoing", func(t *testing.T) {
		store := memory.NewDeliveryStore()
		finished, err := newOngoing(t, delivery.Uber, base).Finish(base)
		require.NoError(t, err)

		err = store.Insert(ctx, kernel.NewUUID(), finished)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Zero(t, store.Size(ctx))
	})

	t.Run("should reject unconstructed values", func(t *testing.T) {
		store := memory.NewDeliveryStore()

		require.Error(t, store.Insert(ctx, kernel.UUID{}, newOngoing(t, delivery.Uber, base)))
		require.Error(t, store.Insert(ctx, kernel.NewUUID(), delivery.Record{}))
	})
}

func TestDeliveryStore_Transition(t *testing.T) {
	ctx := t.Context()

	t.Run("should move a record through its lifecycle", func(t *testing.T) {
		store := memory.NewDeliveryStore()
		id := kernel.NewUUID()
		require.NoError(t, store.Insert(ctx, id, newOngoing(t, delivery.Uklon, base)))

		finished, err := store.Transition(ctx, id, delivery.Finished, base.Add(5*time.Second))
		require.NoError(t, err)
		assert.Equal(t, delivery.Finished, finished.Status())
		assert.Equal(t, base.Add(5*time.Second), finished.UpdatedAt())

		archived, err := store.Transition(ctx, id, delivery.Archived, base.Add(6*time.Second))
		require.NoError(t, err)
		assert.Equal(t, delivery.Archived, archived.Status())
		assert.Equal(t, archived, store.Scan(ctx)[0].Record)
	})

	t.Run("should reject skipping a stage", func(t *testing.T) {
		store := memory.NewDeliveryStore()
		id := kernel.NewUUID()
		require.NoError(t, store.Insert(ctx, id, newOngoing(t, delivery.Uber, base)))

		_, err := store.Transition(ctx, id, delivery.Archived, base)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, delivery.Ongoing, store.Scan(ctx)[0].Record.Status())
	})

	t.Run("should report unknown ids", func(t *testing.T) {
		store := memory.NewDeliveryStore()

		_, err := store.Transition(ctx, kernel.NewUUID(), delivery.Finished, base)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("exactly one of two racing writers wins", func(t *testing.T) {
		store := memory.NewDeliveryStore()
		id := kernel.NewUUID()
		require.NoError(t, store.Insert(ctx, id, newOngoing(t, delivery.Uber, base)))

		var (
			wg        sync.WaitGroup
			mu        sync.Mutex
			successes int
		)
		for range 16 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, err := store.Transition(ctx, id, delivery.Finished, base); err == nil {
					mu.Lock()
					successes++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, successes)
	})
}

func TestDeliveryStore_Delete(t *testing.T) {
	ctx := t.Context()
	archive := func(t *testing.T, store *memory.DeliveryStore, at time.Time) kernel.UUID {
		t.Helper()
		id := kernel.NewUUID()
		require.NoError(t, store.Insert(ctx, id, newOngoing(t, delivery.Uber, at)))
		_, err := store.Transition(ctx, id, delivery.Finished, at)
		require.NoError(t, err)
		_, err = store.Transition(ctx, id, delivery.Archived, at)
		require.NoError(t, err)
		return id
	}

	t.Run("should delete archived records older than the cutoff", func(t *testing.T) {
		store := memory.NewDeliveryStore()
		id := archive(t, store, base)

		removed, err := store.Delete(ctx, id, base.Add(time.Minute))

		require.NoError(t, err)
		assert.Equal(t, delivery.Archived, removed.Status())
		assert.Zero(t, store.Size(ctx))
	})

	t.Run("should keep archived records inside the window", func(t *testing.T) {
		store := memory.NewDeliveryStore()
		id := archive(t, store, base)

		_, err := store.Delete(ctx, id, base)

		require.Error(t, err)
		assert.Equal(t, 1, store.Size(ctx))
	})

	t.Run("should never delete Ongoing or Finished records", func(t *testing.T) {
		store := memory.NewDeliveryStore()
		ongoing := kernel.NewUUID()
		finished := kernel.NewUUID()
		require.NoError(t, store.Insert(ctx, ongoing, newOngoing(t, delivery.Uber, base)))
		require.NoError(t, store.Insert(ctx, finished, newOngoing(t, delivery.Uklon, base)))
		_, err := store.Transition(ctx, finished, delivery.Finished, base)
		require.NoError(t, err)

		farFuture := base.Add(24 * time.Hour)
		_, err = store.Delete(ctx, ongoing, farFuture)
		require.Error(t, err)
		_, err = store.Delete(ctx, finished, farFuture)
		require.Error(t, err)
		assert.Equal(t, 2, store.Size(ctx))
	})

	t.Run("should report unknown ids", func(t *testing.T) {
		store := memory.NewDeliveryStore()

		_, err := store.Delete(ctx, kernel.NewUUID(), base)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestDeliveryStore_Scan(t *testing.T) {
	ctx := t.Context()
	store := memory.NewDeliveryStore()
	late := kernel.NewUUID()
	early := kernel.NewUUID()
	require.NoError(t, store.Insert(ctx, late, newOngoing(t, delivery.Uber, base.Add(time.Second))))
	require.NoError(t, store.Insert(ctx, early, newOngoing(t, delivery.Uklon, base)))

	entries := store.Scan(ctx)

	require.Len(t, entries, 2)
	assert.True(t, entries[0].TrackingID.IsEqual(early))
	assert.True(t, entries[1].TrackingID.IsEqual(late))

	entries[0] = delivery.Entry{}
	assert.True(t, store.Scan(ctx)[0].TrackingID.IsEqual(early), "snapshot must be a copy")
}

func TestDeliveryStore_ConcurrentInserts(t *testing.T) {
	ctx := t.Context()
	store := memory.NewDeliveryStore()

	const workers, perWorker = 10, 50
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range perWorker {
				id := kernel.NewUUID()
				rec, _ := delivery.NewRecord(delivery.Uber, base)
				assert.NoError(t, store.Insert(ctx, id, rec))
				_, err := store.Transition(ctx, id, delivery.Finished, base)
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, workers*perWorker, store.Size(ctx))
	for _, e := range store.Scan(ctx) {
		assert.Equal(t, delivery.Finished, e.Record.Status())
	}
}
