package handlers

import (
	"roster-game-system/middleware"
	"roster-game-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupTeamRoutes(app *fiber.App, teamService *services.TeamService, jwtSecret string) {
	api := app.Group("/api", middleware.AuthRequired(jwtSecret))

	api.Post("/teams", func(c *fiber.Ctx) error {
		type Req struct {
			Name    string   `json:"name"`
			CopyIDs []string `json:"copy_ids"`
		}
		var req Req
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid JSON",
				"cause": err.Error(),
			})
		}

		team, err := teamService.Create(accountID(c), req.Name, req.CopyIDs)
		if err != nil {
			return fail(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": "team created",
			"team_id": team.ID,
		})
	})

	api.Get("/teams", func(c *fiber.Ctx) error {
		teams, err := teamService.List()
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(fiber.Map{"data": teams})
	})

	api.Put("/teams/:teamId", func(c *fiber.Ctx) error {
		type Req struct {
			CopyID    string `json:"copy_id"`
			NewCopyID string `json:"new_copy_id"`
		}
		var req Req
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid JSON",
				"cause": err.Error(),
			})
		}

		if err := teamService.SwapMember(accountID(c), c.Params("teamId"), req.CopyID, req.NewCopyID); err != nil {
			return fail(c, err)
		}
		return c.JSON(fiber.Map{"message": "team member replaced"})
	})
}
