package fiber

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"github.com/around-labs/around"
)

// The single translation from operation outcomes to responses, applied
// identically by every handler: Ok envelope with 200 for pure reads and
// 202 for applied writes, error envelope otherwise. No retries happen
// here; a storage failure is reported once, immediately.

func respondData(c fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(around.Ok(data, c.Path()))
}

func respondStorageError(c fiber.Ctx, err error) error {
	if errors.Is(err, around.ErrUserNotFound) || errors.Is(err, around.ErrEventNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(around.Fail("404", err.Error()))
	}
	// Everything else the backend reports is surfaced verbatim as a
	// 400-class failure.
	return c.Status(fiber.StatusBadRequest).JSON(around.Fail("400", err.Error()))
}

// respondValidationError reports a boundary failure. The descriptor
// carries the parser's own status when it reports one, "400" otherwise,
// and always travels on a client-error response code.
func respondValidationError(c fiber.Ctx, err error) error {
	status := "400"
	var fe *fiber.Error
	if errors.As(err, &fe) {
		status = strconv.Itoa(fe.Code)
	}
	return c.Status(fiber.StatusBadRequest).JSON(around.Fail(status, err.Error()))
}

func routeNotFound(c fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(around.Fail("404", "path not found"))
}
