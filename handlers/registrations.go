package handlers

import (
	"sports-community-system/middleware"
	"sports-community-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupRegistrationRoutes(app *fiber.App, registrationService *services.RegistrationService) {
	app.Post("/registrations", middleware.UserContextMiddleware(), func(c *fiber.Ctx) error {
		var req struct {
			EventID string `json:"event_id"`
		}
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON", "details": err.Error()})
		}
		reg, err := registrationService.Register(middleware.IdentityFrom(c), req.EventID)
		if err != nil {
			return writeError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(reg)
	})

	app.Get("/registrations/user", middleware.UserContextMiddleware(), func(c *fiber.Ctx) error {
		regs, err := registrationService.ListUserRegistrations(middleware.IdentityFrom(c))
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(regs)
	})

	app.Get("/registrations/event/:event_id", func(c *fiber.Ctx) error {
		regs, err := registrationService.ListEventRegistrations(c.Params("event_id"))
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(regs)
	})
}
