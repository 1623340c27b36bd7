package handlers

import (
	"roster-game-system/middleware"
	"roster-game-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupMilestoneRoutes(app *fiber.App, milestoneService *services.MilestoneService, jwtSecret string) {
	api := app.Group("/api", middleware.AuthRequired(jwtSecret))

	api.Patch("/milestones/check", func(c *fiber.Ctx) error {
		granted, err := milestoneService.CheckAndGrant(accountID(c))
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(fiber.Map{
			"message": "milestones checked and rewards granted",
			"granted": granted,
		})
	})

	api.Get("/milestones", func(c *fiber.Ctx) error {
		grants, err := milestoneService.ListGranted(accountID(c))
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(fiber.Map{"data": grants})
	})
}
