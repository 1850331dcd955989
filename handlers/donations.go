package handlers

import (
	"sports-community-system/models"
	"sports-community-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupDonationRoutes(app *fiber.App, donationService *services.DonationService) {
	// Donations are anonymous-capable: no user context needed.
	app.Post("/donations", func(c *fiber.Ctx) error {
		var input models.DonationCreate
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON", "details": err.Error()})
		}
		donation, err := donationService.Create(input)
		if err != nil {
			return writeError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(donation)
	})

	app.Get("/donations/event/:event_id/total", func(c *fiber.Ctx) error {
		count, sum, err := donationService.EventDonationTotals(c.Params("event_id"))
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(fiber.Map{"count": count, "total_amount": sum})
	})

	app.Get("/donations/event/:event_id", func(c *fiber.Ctx) error {
		donations, err := donationService.ListEventDonations(c.Params("event_id"))
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(donations)
	})
}
