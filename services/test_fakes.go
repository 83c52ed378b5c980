package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/around-labs/around/core"
)

// FakeStorage is a test-only fake implementing core.Storage. It stores
// rows in maps and exposes error fields for behavior injection. Its batch
// methods mirror the real adapter's contract: sequential application,
// conflict-skip on insert, fail-fast on the first missing key.
type FakeStorage struct {
	mu     sync.RWMutex
	users  map[int32]core.User
	events map[int64]core.Event // keyed by created_at in unix nanos

	createErr error
	getErr    error
	updateErr error
	deleteErr error
}

var _ core.Storage = (*FakeStorage)(nil)

func NewFakeStorage() *FakeStorage {
	return &FakeStorage{
		users:  make(map[int32]core.User),
		events: make(map[int64]core.Event),
	}
}

func (f *FakeStorage) CreateUser(_ context.Context, u *core.User) (*core.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	if _, exists := f.users[u.ID]; exists {
		// Conflict-tolerant insert: the colliding row is skipped.
		return nil, nil
	}
	f.users[u.ID] = *u
	stored := f.users[u.ID]
	return &stored, nil
}

func (f *FakeStorage) GetUser(_ context.Context, id int32) (*core.User, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.users[id]
	if !ok {
		return nil, core.ErrUserNotFound
	}
	return &u, nil
}

func (f *FakeStorage) UpdateUser(_ context.Context, u *core.User) (*core.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	if _, exists := f.users[u.ID]; !exists {
		return nil, core.ErrUserNotFound
	}
	f.users[u.ID] = *u
	stored := f.users[u.ID]
	return &stored, nil
}

func (f *FakeStorage) DeleteUser(_ context.Context, id int32) (*core.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return nil, f.deleteErr
	}
	u, ok := f.users[id]
	if !ok {
		return nil, core.ErrUserNotFound
	}
	delete(f.users, id)
	return &u, nil
}

func (f *FakeStorage) CreateEvents(_ context.Context, events []core.Event) ([]core.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	inserted := make([]core.Event, 0, len(events))
	for _, e := range events {
		key := e.CreatedAt.UnixNano()
		if _, exists := f.events[key]; exists {
			continue
		}
		f.events[key] = e
		inserted = append(inserted, e)
	}
	return inserted, nil
}

func (f *FakeStorage) ListEvents(_ context.Context, q core.EventQuery) ([]core.Event, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	matched := make([]core.Event, 0, len(f.events))
	for _, e := range f.events {
		if !e.CreatedAt.Before(q.Start) {
			matched = append(matched, e)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.Before(matched[j].CreatedAt)
	})
	if q.Offset >= len(matched) {
		return []core.Event{}, nil
	}
	matched = matched[q.Offset:]
	if q.Limit < len(matched) {
		matched = matched[:q.Limit]
	}
	return matched, nil
}

func (f *FakeStorage) UpdateEvents(_ context.Context, events []core.Event) ([]core.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	updated := make([]core.Event, 0, len(events))
	for _, e := range events {
		key := e.CreatedAt.UnixNano()
		if _, exists := f.events[key]; !exists {
			// Fail fast; earlier updates in the batch stay applied.
			return nil, core.ErrEventNotFound
		}
		f.events[key] = e
		updated = append(updated, e)
	}
	return updated, nil
}

func (f *FakeStorage) DeleteEvents(_ context.Context, keys []time.Time) ([]core.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return nil, f.deleteErr
	}
	deleted := make([]core.Event, 0, len(keys))
	for _, k := range keys {
		key := k.UnixNano()
		e, exists := f.events[key]
		if !exists {
			return nil, core.ErrEventNotFound
		}
		delete(f.events, key)
		deleted = append(deleted, e)
	}
	return deleted, nil
}

// Test helper methods

func (f *FakeStorage) SetCreateError(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createErr = err
}

func (f *FakeStorage) SetGetError(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.getErr = err
}

func (f *FakeStorage) SetUpdateError(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updateErr = err
}

func (f *FakeStorage) SetDeleteError(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleteErr = err
}

func (f *FakeStorage) UserCount() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.users)
}

func (f *FakeStorage) EventCount() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.events)
}

func (f *FakeStorage) HasEvent(createdAt time.Time) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	_, ok := f.events[createdAt.UnixNano()]
	return ok
}
