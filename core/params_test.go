package core

import (
	"testing"
	"time"
)

// Requirement: omitted parameters fall back to limit 32, offset 0 and
// start = the instant the request is handled.
func TestDefaultEventQuery(t *testing.T) {
	now := time.Date(2025, 7, 4, 10, 0, 0, 0, time.UTC)

	q := DefaultEventQuery(now)

	if q.Limit != 32 {
		t.Errorf("Limit = %d, want 32", q.Limit)
	}
	if q.Offset != 0 {
		t.Errorf("Offset = %d, want 0", q.Offset)
	}
	if !q.Start.Equal(now) {
		t.Errorf("Start = %v, want %v", q.Start, now)
	}
}

func TestEventQuery_Normalize(t *testing.T) {
	tests := []struct {
		name       string
		in         EventQuery
		wantLimit  int
		wantOffset int
	}{
		{name: "valid values pass through", in: EventQuery{Limit: 5, Offset: 10}, wantLimit: 5, wantOffset: 10},
		{name: "zero limit falls back to default", in: EventQuery{Limit: 0, Offset: 3}, wantLimit: DefaultLimit, wantOffset: 3},
		{name: "negative values fall back to defaults", in: EventQuery{Limit: -1, Offset: -9}, wantLimit: DefaultLimit, wantOffset: DefaultOffset},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := test.in.Normalize()
			if got.Limit != test.wantLimit {
				t.Errorf("Limit = %d, want %d", got.Limit, test.wantLimit)
			}
			if got.Offset != test.wantOffset {
				t.Errorf("Offset = %d, want %d", got.Offset, test.wantOffset)
			}
		})
	}
}
