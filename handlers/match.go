package handlers

import (
	"roster-game-system/middleware"
	"roster-game-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupMatchRoutes(app *fiber.App, matchService *services.MatchService, jwtSecret string) {
	api := app.Group("/api", middleware.AuthRequired(jwtSecret))

	api.Get("/match", func(c *fiber.Ctx) error {
		teamID := c.Query("teamId")
		if teamID == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "teamId query parameter is required",
			})
		}

		res, err := matchService.PlayMatch(accountID(c), teamID)
		if err != nil {
			return fail(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": res.Summary,
			"data":    res,
		})
	})

	// Exhibition between two named teams: result only, no ledger movement.
	api.Get("/match/exhibition", func(c *fiber.Ctx) error {
		teamAID := c.Query("teamAId")
		teamBID := c.Query("teamBId")
		if teamAID == "" || teamBID == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "teamAId and teamBId query parameters are required",
			})
		}

		res, err := matchService.Exhibition(teamAID, teamBID)
		if err != nil {
			return fail(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": res.Summary,
			"data":    res,
		})
	})
}
