package handlers

import (
	"errors"
	"log"

	"sports-community-system/models"

	"github.com/gofiber/fiber/v2"
)

// writeError translates a domain error into the HTTP contract:
// validation and expired deadlines are 400, missing entities 404,
// role failures 403, state/duplicate/capacity conflicts 409, anything
// unrecognized 500.
func writeError(c *fiber.Ctx, err error) error {
	var ve *models.ValidationError
	switch {
	case errors.As(err, &ve):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ve.Error()})
	case errors.Is(err, models.ErrDeadlineExpired):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, models.ErrEventNotFound),
		errors.Is(err, models.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, models.ErrNotAuthorized):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, models.ErrEventNotOpen),
		errors.Is(err, models.ErrEventNotPending),
		errors.Is(err, models.ErrAlreadyRegistered),
		errors.Is(err, models.ErrEventFull),
		errors.Is(err, models.ErrEmailTaken):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	default:
		log.Printf("ERROR %s %s: %v", c.Method(), c.Path(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}
}
