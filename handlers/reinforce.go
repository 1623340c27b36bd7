package handlers

import (
	"roster-game-system/middleware"
	"roster-game-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupReinforceRoutes(app *fiber.App, reinforceService *services.ReinforceService, jwtSecret string) {
	api := app.Group("/api", middleware.AuthRequired(jwtSecret))

	api.Patch("/reinforce/:copyId", func(c *fiber.Ctx) error {
		type Req struct {
			Sacrifice bool `json:"sacrifice"`
		}
		var req Req
		if len(c.Body()) > 0 {
			if err := c.BodyParser(&req); err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": "invalid JSON",
					"cause": err.Error(),
				})
			}
		}

		res, err := reinforceService.Reinforce(accountID(c), c.Params("copyId"), req.Sacrifice)
		if err != nil {
			return fail(c, err)
		}

		// A failed or broken attempt is still a committed game result, so it
		// answers 200 like a success.
		var msg string
		switch res.Outcome {
		case services.ReinforceSucceeded:
			msg = "reinforcement succeeded!"
		case services.ReinforceFailed:
			msg = "reinforcement failed..."
		case services.ReinforceBroken:
			if res.Deleted {
				msg = "the copy broke during reinforcement and was destroyed!"
			} else {
				msg = "the copy broke during reinforcement! stats and force were reset."
			}
		}
		return c.JSON(fiber.Map{
			"message": msg,
			"data":    res,
		})
	})
}
