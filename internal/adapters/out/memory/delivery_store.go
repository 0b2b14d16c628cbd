// Package memory provides the in-memory DeliveryStore. All state is volatile and
// lost on process exit.
package memory

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// ErrTrackingIDExists is returned when inserting a tracking id that is already stored.
var ErrTrackingIDExists = errors.New("tracking id already exists")

var _ ports.DeliveryStore = (*DeliveryStore)(nil)

// DeliveryStore guards a map of records with one RWMutex. Every operation that
// reads and then writes a key holds the write lock for its full duration, so a
// completion task and the sweeper can never interleave on the same record.
type DeliveryStore struct {
	mu      sync.RWMutex
	records map[kernel.UUID]delivery.Record
}

func NewDeliveryStore() *DeliveryStore {
	return &DeliveryStore{
		records: make(map[kernel.UUID]delivery.Record),
	}
}

func (s *DeliveryStore) Insert(_ context.Context, id kernel.UUID, rec delivery.Record) error {
	if err := errors.Join(id.Validate(), rec.Validate()); err != nil {
		return err
	}
	if rec.Status() != delivery.Ongoing {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("records are inserted as %s, got %s", delivery.Ongoing, rec.Status()),
		)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[id]; ok {
		return fmt.Errorf("%w: %s", ErrTrackingIDExists, id)
	}
	s.records[id] = rec
	return nil
}

func (s *DeliveryStore) Transition(
	_ context.Context,
	id kernel.UUID,
	to delivery.Status,
	at time.Time,
) (delivery.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.records[id]
	if !ok {
		return delivery.Record{}, errs.NewObjectNotFoundError("trackingID", id.String())
	}

	next, err := current.TransitionTo(to, at)
	if err != nil {
		return delivery.Record{}, fmt.Errorf("tracking id %s: %w", id, err)
	}

	s.records[id] = next
	return next, nil
}

// Scan returns the records ordered by UpdatedAt, ties broken by tracking id, so
// callers and API responses see a deterministic order.
func (s *DeliveryStore) Scan(_ context.Context) []delivery.Entry {
	s.mu.RLock()
	entries := make([]delivery.Entry, 0, len(s.records))
	for id, rec := range s.records {
		entries = append(entries, delivery.Entry{TrackingID: id, Record: rec})
	}
	s.mu.RUnlock()

	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i].Record.UpdatedAt(), entries[j].Record.UpdatedAt()
		if !a.Equal(b) {
			return a.Before(b)
		}
		ai, bi := entries[i].TrackingID.Bytes(), entries[j].TrackingID.Bytes()
		return bytes.Compare(ai[:], bi[:]) < 0
	})
	return entries
}

func (s *DeliveryStore) Delete(_ context.Context, id kernel.UUID, cutoff time.Time) (delivery.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.records[id]
	if !ok {
		return delivery.Record{}, errs.NewObjectNotFoundError("trackingID", id.String())
	}
	if err := current.ValidateRemoval(cutoff); err != nil {
		return delivery.Record{}, fmt.Errorf("tracking id %s: %w", id, err)
	}

	delete(s.records, id)
	return current, nil
}

func (s *DeliveryStore) Size(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
