package fiber

import (
	"github.com/gofiber/fiber/v3"

	"github.com/around-labs/around"
)

// Adapter mounts the versioned resource routes on a fiber app.
type Adapter struct {
	app    *fiber.App
	users  *around.UserService
	events *around.EventService
}

func New(app *fiber.App, users *around.UserService, events *around.EventService) *Adapter {
	return &Adapter{app: app, users: users, events: events}
}

// RegisterRoutes wires the /v0 surface. The trailing Use is the fallback:
// any request no route matched gets the uniform 404 envelope.
func (a *Adapter) RegisterRoutes() {
	v0 := a.app.Group("/v0")

	users := v0.Group("/users")
	users.Post("/", a.createUser)
	users.Get("/:id", a.getUser)
	users.Put("/", a.updateUser)
	users.Delete("/:id", a.deleteUser)

	events := v0.Group("/events")
	events.Post("/", a.createEvents)
	events.Get("/", a.listEvents)
	events.Put("/", a.updateEvents)
	events.Delete("/", a.deleteEvents)

	v0.Get("/docs", a.docs)

	a.app.Use(routeNotFound)
}
