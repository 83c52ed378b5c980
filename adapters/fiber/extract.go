package fiber

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/around-labs/around"
)

// Extractors turn raw request data into typed values. Every failure here
// short-circuits to the validation branch of the response mapper before
// any handler logic or storage access runs.

func userBody(c fiber.Ctx) (around.User, error) {
	var req around.Request[around.User]
	if err := c.Bind().Body(&req); err != nil {
		return around.User{}, err
	}
	if err := validateUser(req.Data); err != nil {
		return around.User{}, err
	}
	return req.Data, nil
}

func eventsBody(c fiber.Ctx) ([]around.Event, error) {
	var req around.Request[[]around.Event]
	if err := c.Bind().Body(&req); err != nil {
		return nil, err
	}
	for i, e := range req.Data {
		if err := validateEvent(e); err != nil {
			return nil, fmt.Errorf("data[%d]: %w", i, err)
		}
	}
	return req.Data, nil
}

func validateUser(u around.User) error {
	if u.Name == "" {
		return around.ErrNameRequired
	}
	if u.Fingerprint == "" {
		return around.ErrFingerprintRequired
	}
	return nil
}

func validateEvent(e around.Event) error {
	if e.CreatedAt.IsZero() {
		return around.ErrCreatedAtRequired
	}
	if e.Kind == "" {
		return around.ErrKindRequired
	}
	return nil
}

func pathUserID(c fiber.Ctx) (int32, error) {
	raw := c.Params("id")
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", around.ErrInvalidUserID, raw)
	}
	return int32(id), nil
}

// eventQuery reads limit, offset and start with their documented
// defaults: 32, 0 and the instant the request is handled.
func eventQuery(c fiber.Ctx) (around.EventQuery, error) {
	q := around.DefaultEventQuery(time.Now().UTC())

	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return q, fmt.Errorf("%w: %q", around.ErrInvalidLimit, raw)
		}
		q.Limit = limit
	}
	if raw := c.Query("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil {
			return q, fmt.Errorf("%w: %q", around.ErrInvalidOffset, raw)
		}
		q.Offset = offset
	}
	if raw := c.Query("start"); raw != "" {
		start, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return q, fmt.Errorf("%w: %q", around.ErrInvalidStart, raw)
		}
		q.Start = start
	}
	return q, nil
}
