package handlers

import (
	"roster-game-system/services"

	"github.com/gofiber/fiber/v2"
)

// Catalog CRUD. Open like the rest of the admin-facing surface; a real
// deployment puts this behind the gateway's role checks.
func SetupCharacterRoutes(app *fiber.App, characterService *services.CharacterService) {
	api := app.Group("/api")

	api.Post("/characters", func(c *fiber.Ctx) error {
		var in services.TemplateInput
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid JSON",
				"cause": err.Error(),
			})
		}
		tpl, err := characterService.Create(in)
		if err != nil {
			return fail(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message":   "character template created",
			"character": tpl,
		})
	})

	api.Get("/characters", func(c *fiber.Ctx) error {
		tpls, err := characterService.List()
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(fiber.Map{"data": tpls})
	})

	api.Get("/characters/:id", func(c *fiber.Ctx) error {
		tpl, err := characterService.Get(c.Params("id"))
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(fiber.Map{"character": tpl})
	})

	api.Put("/characters/:id", func(c *fiber.Ctx) error {
		var in services.TemplateInput
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid JSON",
				"cause": err.Error(),
			})
		}
		tpl, err := characterService.Update(c.Params("id"), in)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(fiber.Map{
			"message":   "character template updated",
			"character": tpl,
		})
	})

	api.Delete("/characters/:id", func(c *fiber.Ctx) error {
		tpl, err := characterService.Delete(c.Params("id"))
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(fiber.Map{
			"message":   "character template deleted",
			"character": tpl,
		})
	})
}
