package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/around-labs/around/core"
)

var eventEpoch = time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

// eventAt builds an event n minutes after the test epoch.
func eventAt(n int) core.Event {
	return core.Event{
		CreatedAt:   eventEpoch.Add(time.Duration(n) * time.Minute),
		UserID:      int32(n),
		Kind:        "dwell",
		XFt:         float64(n) * 1.5,
		YFt:         float64(n) * 0.5,
		DurationS:   2.0,
		Impressions: 100,
	}
}

func eventBatch(n int) []core.Event {
	batch := make([]core.Event, n)
	for i := range batch {
		batch[i] = eventAt(i)
	}
	return batch
}

// Requirement: resubmitting a batch never errors; colliding rows are
// omitted from the inserted result.
func TestEventService_CreateBatch_IdempotentOnConflict(t *testing.T) {
	ctx := context.Background()
	storage := NewFakeStorage()
	svc := NewEventService(storage)

	batch := eventBatch(4)

	first, err := svc.CreateBatch(ctx, batch)
	if err != nil {
		t.Fatalf("first CreateBatch: %v", err)
	}
	if len(first) != 4 {
		t.Fatalf("first CreateBatch inserted %d rows, want 4", len(first))
	}

	second, err := svc.CreateBatch(ctx, batch)
	if err != nil {
		t.Fatalf("second CreateBatch should not error, got %v", err)
	}
	if len(second) != 0 {
		t.Errorf("second CreateBatch inserted %d rows, want 0", len(second))
	}
	if storage.EventCount() != 4 {
		t.Errorf("EventCount = %d, want 4", storage.EventCount())
	}
}

func TestEventService_CreateBatch_PartialConflict(t *testing.T) {
	ctx := context.Background()
	svc := NewEventService(NewFakeStorage())

	if _, err := svc.CreateBatch(ctx, []core.Event{eventAt(1)}); err != nil {
		t.Fatalf("seed CreateBatch: %v", err)
	}

	inserted, err := svc.CreateBatch(ctx, []core.Event{eventAt(0), eventAt(1), eventAt(2)})
	if err != nil {
		t.Fatalf("CreateBatch: %v", err)
	}
	if len(inserted) != 2 {
		t.Fatalf("inserted %d rows, want 2 (colliding row omitted)", len(inserted))
	}
	for _, e := range inserted {
		if e.CreatedAt.Equal(eventAt(1).CreatedAt) {
			t.Errorf("colliding row %v present in inserted result", e.CreatedAt)
		}
	}
}

// Requirement: for a collection of size N, limit L and offset O return
// min(L, max(0, N-O)) items ordered non-decreasing by creation time, all
// at or after the start bound.
func TestEventService_List_PaginationBounds(t *testing.T) {
	ctx := context.Background()
	svc := NewEventService(NewFakeStorage())

	const n = 10
	if _, err := svc.CreateBatch(ctx, eventBatch(n)); err != nil {
		t.Fatalf("CreateBatch: %v", err)
	}

	tests := []struct {
		name   string
		limit  int
		offset int
		want   int
	}{
		{name: "limit inside collection", limit: 4, offset: 0, want: 4},
		{name: "limit beyond collection", limit: 50, offset: 0, want: n},
		{name: "offset shrinks the page", limit: 50, offset: 7, want: 3},
		{name: "offset past the end", limit: 4, offset: 12, want: 0},
		{name: "limit and offset interact", limit: 2, offset: 9, want: 1},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := svc.List(ctx, core.EventQuery{Start: eventEpoch, Limit: test.limit, Offset: test.offset})
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			if len(got) != test.want {
				t.Fatalf("List returned %d items, want %d", len(got), test.want)
			}
			for i := 1; i < len(got); i++ {
				if got[i].CreatedAt.Before(got[i-1].CreatedAt) {
					t.Errorf("items out of order at %d: %v before %v", i, got[i].CreatedAt, got[i-1].CreatedAt)
				}
			}
		})
	}
}

func TestEventService_List_StartBound(t *testing.T) {
	ctx := context.Background()
	svc := NewEventService(NewFakeStorage())

	if _, err := svc.CreateBatch(ctx, eventBatch(6)); err != nil {
		t.Fatalf("CreateBatch: %v", err)
	}

	start := eventAt(3).CreatedAt
	got, err := svc.List(ctx, core.EventQuery{Start: start, Limit: core.DefaultLimit})
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	if len(got) != 3 {
		t.Fatalf("List returned %d items, want 3 (indexes 3..5)", len(got))
	}
	for _, e := range got {
		if e.CreatedAt.Before(start) {
			t.Errorf("event %v precedes the start bound %v", e.CreatedAt, start)
		}
	}
}

func TestEventService_List_NormalizesPagination(t *testing.T) {
	ctx := context.Background()
	svc := NewEventService(NewFakeStorage())

	if _, err := svc.CreateBatch(ctx, eventBatch(40)); err != nil {
		t.Fatalf("CreateBatch: %v", err)
	}

	got, err := svc.List(ctx, core.EventQuery{Start: eventEpoch, Limit: 0, Offset: -3})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != core.DefaultLimit {
		t.Errorf("List returned %d items, want default limit %d", len(got), core.DefaultLimit)
	}
}

// Requirement: a batch update whose k-th item targets a nonexistent key
// reports a single failure; items before k stay applied (non-atomic).
func TestEventService_UpdateBatch_FailFast(t *testing.T) {
	ctx := context.Background()
	storage := NewFakeStorage()
	svc := NewEventService(storage)

	if _, err := svc.CreateBatch(ctx, eventBatch(3)); err != nil {
		t.Fatalf("CreateBatch: %v", err)
	}

	updatedFirst := eventAt(0)
	updatedFirst.Impressions = 999
	missing := eventAt(50) // key never inserted
	batch := []core.Event{updatedFirst, missing, eventAt(2)}

	_, err := svc.UpdateBatch(ctx, batch)

	if !errors.Is(err, core.ErrEventNotFound) {
		t.Fatalf("UpdateBatch = %v, want ErrEventNotFound", err)
	}
	// The item before the failure was applied and is not rolled back.
	got, err := svc.List(ctx, core.EventQuery{Start: eventEpoch, Limit: 1})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 1 || got[0].Impressions != 999 {
		t.Errorf("first item after failed batch = %+v, want impressions 999", got)
	}
}

func TestEventService_UpdateBatch_ReplacesAllNonKeyFields(t *testing.T) {
	ctx := context.Background()
	svc := NewEventService(NewFakeStorage())

	if _, err := svc.CreateBatch(ctx, eventBatch(1)); err != nil {
		t.Fatalf("CreateBatch: %v", err)
	}

	replacement := core.Event{
		CreatedAt:   eventAt(0).CreatedAt,
		UserID:      77,
		Kind:        "pass-by",
		XFt:         300.0,
		YFt:         80.0,
		DurationS:   0.25,
		Impressions: 4500,
	}

	updated, err := svc.UpdateBatch(ctx, []core.Event{replacement})
	if err != nil {
		t.Fatalf("UpdateBatch: %v", err)
	}
	if len(updated) != 1 {
		t.Fatalf("UpdateBatch returned %d rows, want 1", len(updated))
	}
	if !updated[0].CreatedAt.Equal(replacement.CreatedAt) {
		t.Errorf("update altered the key: %v, want %v", updated[0].CreatedAt, replacement.CreatedAt)
	}
	if updated[0].UserID != 77 || updated[0].Kind != "pass-by" || updated[0].Impressions != 4500 {
		t.Errorf("UpdateBatch = %+v, want full replacement", updated[0])
	}
}

func TestEventService_DeleteBatch(t *testing.T) {
	ctx := context.Background()
	storage := NewFakeStorage()
	svc := NewEventService(storage)

	if _, err := svc.CreateBatch(ctx, eventBatch(3)); err != nil {
		t.Fatalf("CreateBatch: %v", err)
	}

	t.Run("deletes by key set and returns the rows", func(t *testing.T) {
		deleted, err := svc.DeleteBatch(ctx, []core.Event{eventAt(0), eventAt(2)})
		if err != nil {
			t.Fatalf("DeleteBatch: %v", err)
		}
		if len(deleted) != 2 {
			t.Fatalf("DeleteBatch returned %d rows, want 2", len(deleted))
		}
		if storage.EventCount() != 1 {
			t.Errorf("EventCount = %d, want 1", storage.EventCount())
		}
	})

	t.Run("missing key fails the batch", func(t *testing.T) {
		_, err := svc.DeleteBatch(ctx, []core.Event{eventAt(1), eventAt(40)})
		if !errors.Is(err, core.ErrEventNotFound) {
			t.Fatalf("DeleteBatch = %v, want ErrEventNotFound", err)
		}
		// Fail-fast, not rollback: the item before the failure is gone.
		if storage.HasEvent(eventAt(1).CreatedAt) {
			t.Errorf("event before the failing item should have been deleted")
		}
	})
}
