package services

import (
	"context"
	"time"

	"github.com/around-labs/around/core"
)

// EventService is the operation contract for the events resource. Writes
// are batched: the storage layer applies items sequentially and stops at
// the first failure, so a failed batch may be partially applied. Batches
// are an at-least-once, non-atomic write path.
type EventService struct {
	storage core.EventStorage
}

func NewEventService(storage core.EventStorage) *EventService {
	return &EventService{storage: storage}
}

// CreateBatch inserts the events and returns the rows actually inserted;
// rows colliding on created_at are skipped, never errored.
func (s *EventService) CreateBatch(ctx context.Context, events []core.Event) ([]core.Event, error) {
	return s.storage.CreateEvents(ctx, events)
}

// List returns events at or after q.Start in ascending created_at order,
// paginated by q.Offset and q.Limit.
func (s *EventService) List(ctx context.Context, q core.EventQuery) ([]core.Event, error) {
	return s.storage.ListEvents(ctx, q.Normalize())
}

// UpdateBatch replaces the non-key fields of each event keyed by
// created_at. The first item whose key does not exist fails the whole
// batch; earlier items stay applied.
func (s *EventService) UpdateBatch(ctx context.Context, events []core.Event) ([]core.Event, error) {
	return s.storage.UpdateEvents(ctx, events)
}

// DeleteBatch removes the events whose created_at keys appear in the
// payload and returns the deleted rows. A missing key fails the batch.
func (s *EventService) DeleteBatch(ctx context.Context, events []core.Event) ([]core.Event, error) {
	keys := make([]time.Time, len(events))
	for i, e := range events {
		keys[i] = e.CreatedAt
	}
	return s.storage.DeleteEvents(ctx, keys)
}
