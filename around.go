package around

import (
	"github.com/around-labs/around/core"
	"github.com/around-labs/around/services"
)

// interfaces
type (
	UserStorage  = core.UserStorage
	EventStorage = core.EventStorage
	Storage      = core.Storage
)

// envelope shapes
type (
	Request[T any]  = core.Request[T]
	Envelope[T any] = core.Envelope[T]
	ErrorEnvelope   = core.ErrorEnvelope
	APIError        = core.APIError
)

// resources
type (
	User       = core.User
	Event      = core.Event
	EventQuery = core.EventQuery
)

// services
type (
	UserService  = services.UserService
	EventService = services.EventService
)

const (
	DefaultLimit  = core.DefaultLimit
	DefaultOffset = core.DefaultOffset
)

// Constructors & helpers (convenience re-exports)
var (
	NewUserService    = services.NewUserService
	NewEventService   = services.NewEventService
	DefaultEventQuery = core.DefaultEventQuery
	Fail              = core.Fail
)

// Ok wraps a payload in the success envelope.
func Ok[T any](data T, links string) Envelope[T] {
	return core.Ok(data, links)
}

var (
	ErrUserNotFound  = core.ErrUserNotFound
	ErrEventNotFound = core.ErrEventNotFound
)

var (
	ErrNameRequired        = core.ErrNameRequired
	ErrFingerprintRequired = core.ErrFingerprintRequired
	ErrKindRequired        = core.ErrKindRequired
	ErrCreatedAtRequired   = core.ErrCreatedAtRequired
	ErrInvalidUserID       = core.ErrInvalidUserID
	ErrInvalidLimit        = core.ErrInvalidLimit
	ErrInvalidOffset       = core.ErrInvalidOffset
	ErrInvalidStart        = core.ErrInvalidStart
)

var (
	ErrDatabaseURLRequired = core.ErrDatabaseURLRequired
)
