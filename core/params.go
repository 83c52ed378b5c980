package core

import "time"

// Collection query defaults, applied when the client omits a parameter.
const (
	DefaultLimit  = 32
	DefaultOffset = 0
)

// EventQuery bounds an event listing: a time lower-bound plus
// offset/limit pagination over the created_at-ascending order.
type EventQuery struct {
	Start  time.Time
	Limit  int
	Offset int
}

// DefaultEventQuery is the query used when no parameters are supplied.
// Start defaults to the instant the request is handled.
func DefaultEventQuery(now time.Time) EventQuery {
	return EventQuery{Start: now, Limit: DefaultLimit, Offset: DefaultOffset}
}

// Normalize clamps out-of-range pagination values back to the defaults.
func (q EventQuery) Normalize() EventQuery {
	if q.Limit <= 0 {
		q.Limit = DefaultLimit
	}
	if q.Offset < 0 {
		q.Offset = DefaultOffset
	}
	return q
}
