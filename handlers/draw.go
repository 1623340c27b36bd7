package handlers

import (
	"fmt"

	"roster-game-system/middleware"
	"roster-game-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupDrawRoutes(app *fiber.App, drawService *services.DrawService, jwtSecret string) {
	api := app.Group("/api", middleware.AuthRequired(jwtSecret))

	api.Post("/gatcha", func(c *fiber.Ctx) error {
		res, err := drawService.Draw(accountID(c))
		if err != nil {
			return fail(c, err)
		}

		msg := fmt.Sprintf("you drew a tier %s character!", res.Tier)
		if res.Duplicate {
			msg += " already owned, so the stack grew by one."
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": msg,
			"data":    res,
		})
	})

	api.Get("/gatcha/list", func(c *fiber.Ctx) error {
		copies, err := drawService.ListOwned(accountID(c))
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(fiber.Map{"data": copies})
	})
}
