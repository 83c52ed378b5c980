package fiber

import (
	"github.com/gofiber/fiber/v3"
)

func (a *Adapter) createUser(c fiber.Ctx) error {
	user, err := userBody(c)
	if err != nil {
		return respondValidationError(c, err)
	}

	created, err := a.users.Create(c.Context(), &user)
	if err != nil {
		return respondStorageError(c, err)
	}
	// created is nil when the id collided and the row was skipped.
	return respondData(c, fiber.StatusAccepted, created)
}

func (a *Adapter) getUser(c fiber.Ctx) error {
	id, err := pathUserID(c)
	if err != nil {
		return respondValidationError(c, err)
	}

	user, err := a.users.Get(c.Context(), id)
	if err != nil {
		return respondStorageError(c, err)
	}
	return respondData(c, fiber.StatusOK, user)
}

func (a *Adapter) updateUser(c fiber.Ctx) error {
	user, err := userBody(c)
	if err != nil {
		return respondValidationError(c, err)
	}

	updated, err := a.users.Update(c.Context(), &user)
	if err != nil {
		return respondStorageError(c, err)
	}
	return respondData(c, fiber.StatusAccepted, updated)
}

func (a *Adapter) deleteUser(c fiber.Ctx) error {
	id, err := pathUserID(c)
	if err != nil {
		return respondValidationError(c, err)
	}

	deleted, err := a.users.Delete(c.Context(), id)
	if err != nil {
		return respondStorageError(c, err)
	}
	return respondData(c, fiber.StatusAccepted, deleted)
}
