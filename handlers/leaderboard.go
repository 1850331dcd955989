package handlers

import (
	"strconv"

	"sports-community-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupLeaderboardRoutes(app *fiber.App, leaderboardService *services.LeaderboardService) {
	app.Get("/leaderboard", func(c *fiber.Ctx) error {
		limit, _ := strconv.Atoi(c.Query("limit", "50"))
		entries, err := leaderboardService.Compute(limit)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(entries)
	})
}
