package core

import "time"

// User is a row in the users table. The id is supplied by the client and
// uniquely identifies the user; updates replace every other field.
type User struct {
	ID             int32   `json:"id"`
	Name           string  `json:"name"`
	Fingerprint    string  `json:"fingerprint"`
	TimezoneOffset *int32  `json:"timezone_offset"`
	FavoriteTeam   *string `json:"favorite_team"`
	DarkMode       *bool   `json:"dark_mode"`
}

// Event is a row in the events table. CreatedAt is the natural key: it
// both identifies the event and orders the collection, so updates keyed
// by it must never alter it.
type Event struct {
	CreatedAt   time.Time `json:"created_at"`
	UserID      int32     `json:"user_id"`
	Kind        string    `json:"kind"`
	XFt         float64   `json:"x_ft"`
	YFt         float64   `json:"y_ft"`
	DurationS   float64   `json:"duration_s"`
	Impressions int32     `json:"impressions"`
}
