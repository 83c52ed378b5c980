package fiber

import (
	"strconv"

	"github.com/gofiber/fiber/v3"
)

// docs serves the machine-readable API description.
func (a *Adapter) docs(c fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(openAPIDocument)
}

var openAPIDocument = fiber.Map{
	"openapi": "3.1.0",
	"info": fiber.Map{
		"title":   "around",
		"version": "0.1.0",
	},
	"paths": fiber.Map{
		"/v0/users/": fiber.Map{
			"post": operation("createUser", "Insert a user; an id collision skips the row.", 202),
			"put":  operation("updateUser", "Replace all fields of a user by id.", 202),
		},
		"/v0/users/{id}": fiber.Map{
			"get":    operation("selectUser", "Fetch a user by id.", 200),
			"delete": operation("deleteUser", "Delete a user by id and return the removed row.", 202),
		},
		"/v0/events/": fiber.Map{
			"post":   operation("createEvents", "Insert a batch of events; colliding rows are skipped.", 202),
			"get":    operation("selectEvents", "List events from start, ordered by creation time, paginated by offset and limit.", 200),
			"put":    operation("updateEvents", "Replace all non-key fields of each event by created_at.", 202),
			"delete": operation("deleteEvents", "Delete events by the created_at keys in the payload.", 202),
		},
		"/v0/docs/": fiber.Map{
			"get": operation("openapi", "This document.", 200),
		},
	},
	"components": fiber.Map{
		"schemas": fiber.Map{
			"User": fiber.Map{
				"type":     "object",
				"required": []string{"id", "name", "fingerprint"},
				"properties": fiber.Map{
					"id":              fiber.Map{"type": "integer", "format": "int32"},
					"name":            fiber.Map{"type": "string"},
					"fingerprint":     fiber.Map{"type": "string"},
					"timezone_offset": fiber.Map{"type": []string{"integer", "null"}, "format": "int32"},
					"favorite_team":   fiber.Map{"type": []string{"string", "null"}},
					"dark_mode":       fiber.Map{"type": []string{"boolean", "null"}},
				},
			},
			"Event": fiber.Map{
				"type":     "object",
				"required": []string{"created_at", "user_id", "kind"},
				"properties": fiber.Map{
					"created_at":  fiber.Map{"type": "string", "format": "date-time"},
					"user_id":     fiber.Map{"type": "integer", "format": "int32"},
					"kind":        fiber.Map{"type": "string"},
					"x_ft":        fiber.Map{"type": "number", "format": "double"},
					"y_ft":        fiber.Map{"type": "number", "format": "double"},
					"duration_s":  fiber.Map{"type": "number", "format": "double"},
					"impressions": fiber.Map{"type": "integer", "format": "int32"},
				},
			},
		},
	},
}

func operation(id, summary string, status int) fiber.Map {
	return fiber.Map{
		"operationId": id,
		"summary":     summary,
		"responses": fiber.Map{
			strconv.Itoa(status): fiber.Map{"description": summary},
		},
	}
}
