package handlers

import (
	"sports-community-system/middleware"
	"sports-community-system/models"
	"sports-community-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupEventRoutes(app *fiber.App, eventService *services.EventService) {
	// Listing visibility depends on who is asking, so the identity is
	// optional here rather than required.
	app.Get("/events", middleware.OptionalUserContext(), func(c *fiber.Ctx) error {
		filter := models.EventFilter{
			SportType: c.Query("sport_type"),
			Location:  c.Query("location"),
			Status:    c.Query("status"),
		}
		events, err := eventService.List(middleware.IdentityFrom(c), filter)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(events)
	})

	// Registered before /events/:id so "slug" is not taken for an id.
	app.Get("/events/slug/:slug", func(c *fiber.Ctx) error {
		event, err := eventService.GetBySlug(c.Params("slug"))
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(event)
	})

	app.Get("/events/:id", func(c *fiber.Ctx) error {
		event, err := eventService.Get(c.Params("id"))
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(event)
	})

	app.Post("/events", middleware.UserContextMiddleware(), func(c *fiber.Ctx) error {
		var input models.EventCreate
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON", "details": err.Error()})
		}
		event, err := eventService.Create(middleware.IdentityFrom(c), input)
		if err != nil {
			return writeError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(event)
	})

	app.Put("/events/:id", middleware.UserContextMiddleware(), func(c *fiber.Ctx) error {
		var input models.EventUpdate
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON", "details": err.Error()})
		}
		event, err := eventService.Update(middleware.IdentityFrom(c), c.Params("id"), input)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(event)
	})

	app.Post("/events/:id/image", middleware.UserContextMiddleware(), func(c *fiber.Ctx) error {
		file, err := c.FormFile("image")
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "image file is required"})
		}
		event, err := eventService.AttachImage(middleware.IdentityFrom(c), c.Params("id"), file)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(event)
	})
}
