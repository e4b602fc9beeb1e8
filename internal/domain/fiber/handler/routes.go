package handler

import "github.com/gofiber/fiber/v2"

type routeRegistrar interface {
	RegisterRoutes(router fiber.Router)
}

// Register mounts every handler under /api/v1.
func Register(app *fiber.App, handlers ...routeRegistrar) {
	api := app.Group("/api/v1")
	for _, h := range handlers {
		h.RegisterRoutes(api)
	}
}
