package handlers

import (
	"sports-community-system/middleware"
	"sports-community-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupAdminRoutes(app *fiber.App, eventService *services.EventService, userService *services.UserService, statsService *services.StatsService) {
	admin := app.Group("/admin", middleware.UserContextMiddleware())

	admin.Get("/events/pending", func(c *fiber.Ctx) error {
		events, err := eventService.ListPending(middleware.IdentityFrom(c))
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(events)
	})

	admin.Put("/events/:id/approve", func(c *fiber.Ctx) error {
		event, err := eventService.Approve(middleware.IdentityFrom(c), c.Params("id"))
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(event)
	})

	admin.Put("/events/:id/reject", func(c *fiber.Ctx) error {
		event, err := eventService.Reject(middleware.IdentityFrom(c), c.Params("id"))
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(event)
	})

	// Entry point for the external results-reporting process.
	admin.Post("/users/:id/results", func(c *fiber.Ctx) error {
		var report services.ResultReport
		if err := c.BodyParser(&report); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON", "details": err.Error()})
		}
		user, err := userService.RecordResult(middleware.IdentityFrom(c), c.Params("id"), report)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(user)
	})

	app.Get("/stats", middleware.UserContextMiddleware(), func(c *fiber.Ctx) error {
		stats, err := statsService.Platform(middleware.IdentityFrom(c))
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(stats)
	})
}
