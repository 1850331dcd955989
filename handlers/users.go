package handlers

import (
	"sports-community-system/middleware"
	"sports-community-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App, userService *services.UserService) {
	// Account provisioning, called by the credential service after a
	// successful signup. Sits behind the gateway token like everything else.
	app.Post("/users", func(c *fiber.Ctx) error {
		var input services.AccountCreate
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON", "details": err.Error()})
		}
		user, err := userService.CreateAccount(input)
		if err != nil {
			return writeError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(user)
	})

	app.Get("/users/me", middleware.UserContextMiddleware(), func(c *fiber.Ctx) error {
		user, err := userService.Profile(middleware.IdentityFrom(c))
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(user)
	})

	app.Patch("/users/me", middleware.UserContextMiddleware(), func(c *fiber.Ctx) error {
		var input services.ProfileUpdate
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON", "details": err.Error()})
		}
		user, err := userService.UpdateProfile(middleware.IdentityFrom(c), input)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(user)
	})
}
