package core

import (
	"context"
	"time"
)

// UserStorage persists users. Writes return the row as stored so handlers
// can echo it back to the client.
type UserStorage interface {
	// CreateUser inserts the user. A uniqueness collision on id is not an
	// error: the row is skipped and (nil, nil) is returned.
	CreateUser(ctx context.Context, u *User) (*User, error)

	// GetUser returns ErrUserNotFound when id does not exist.
	GetUser(ctx context.Context, id int32) (*User, error)

	// UpdateUser replaces every field but the id. Returns ErrUserNotFound
	// when id does not exist.
	UpdateUser(ctx context.Context, u *User) (*User, error)

	// DeleteUser removes the row and returns it. Returns ErrUserNotFound
	// when id does not exist.
	DeleteUser(ctx context.Context, id int32) (*User, error)
}

// EventStorage persists events in batches. Batch methods run their
// per-item statements sequentially on one checked-out connection and stop
// at the first failure; earlier items stay applied (batches are not
// transactional).
type EventStorage interface {
	// CreateEvents inserts each event, skipping rows that collide on
	// created_at, and returns the rows actually inserted.
	CreateEvents(ctx context.Context, events []Event) ([]Event, error)

	// ListEvents returns events with created_at >= q.Start, ordered
	// ascending by created_at, bounded by q.Offset and q.Limit.
	ListEvents(ctx context.Context, q EventQuery) ([]Event, error)

	// UpdateEvents replaces all non-key fields of each event keyed by
	// created_at. An item whose key does not exist fails the batch with
	// ErrEventNotFound.
	UpdateEvents(ctx context.Context, events []Event) ([]Event, error)

	// DeleteEvents removes the rows matching the given keys and returns
	// them. A missing key fails the batch with ErrEventNotFound.
	DeleteEvents(ctx context.Context, keys []time.Time) ([]Event, error)
}

// Storage is everything the API needs from the backing store.
type Storage interface {
	UserStorage
	EventStorage
}
