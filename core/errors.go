package core

import "errors"

// Storage outcome errors
var (
	ErrUserNotFound  = errors.New("user not found")  // 404
	ErrEventNotFound = errors.New("event not found") // 404
)

// Validation errors (client input, rejected before storage is touched)
var (
	ErrNameRequired        = errors.New("name is required")              // 400
	ErrFingerprintRequired = errors.New("fingerprint is required")       // 400
	ErrKindRequired        = errors.New("kind is required")              // 400
	ErrCreatedAtRequired   = errors.New("created_at is required")        // 400
	ErrInvalidUserID       = errors.New("user id must be an integer")    // 400
	ErrInvalidLimit        = errors.New("limit must be an integer")      // 400
	ErrInvalidOffset       = errors.New("offset must be an integer")     // 400
	ErrInvalidStart        = errors.New("start must be an RFC3339 time") // 400
)

// Config errors (server-side configuration)
var (
	ErrDatabaseURLRequired = errors.New("DATABASE_URL is required")
)
