package fiber

import (
	"github.com/gofiber/fiber/v3"
)

func (a *Adapter) createEvents(c fiber.Ctx) error {
	events, err := eventsBody(c)
	if err != nil {
		return respondValidationError(c, err)
	}

	inserted, err := a.events.CreateBatch(c.Context(), events)
	if err != nil {
		return respondStorageError(c, err)
	}
	return respondData(c, fiber.StatusAccepted, inserted)
}

func (a *Adapter) listEvents(c fiber.Ctx) error {
	q, err := eventQuery(c)
	if err != nil {
		return respondValidationError(c, err)
	}

	events, err := a.events.List(c.Context(), q)
	if err != nil {
		return respondStorageError(c, err)
	}
	return respondData(c, fiber.StatusOK, events)
}

func (a *Adapter) updateEvents(c fiber.Ctx) error {
	events, err := eventsBody(c)
	if err != nil {
		return respondValidationError(c, err)
	}

	updated, err := a.events.UpdateBatch(c.Context(), events)
	if err != nil {
		return respondStorageError(c, err)
	}
	return respondData(c, fiber.StatusAccepted, updated)
}

func (a *Adapter) deleteEvents(c fiber.Ctx) error {
	events, err := eventsBody(c)
	if err != nil {
		return respondValidationError(c, err)
	}

	deleted, err := a.events.DeleteBatch(c.Context(), events)
	if err != nil {
		return respondStorageError(c, err)
	}
	return respondData(c, fiber.StatusAccepted, deleted)
}
