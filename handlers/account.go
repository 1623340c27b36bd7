package handlers

import (
	"roster-game-system/middleware"
	"roster-game-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupAccountRoutes(app *fiber.App, accountService *services.AccountService, jwtSecret string) {
	api := app.Group("/api")

	api.Post("/sign-up", func(c *fiber.Ctx) error {
		type Req struct {
			ID              string `json:"id"`
			Password        string `json:"password"`
			ConfirmPassword string `json:"confirm_password"`
			NickName        string `json:"nick_name"`
		}
		var req Req
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid JSON",
				"cause": err.Error(),
			})
		}

		account, err := accountService.SignUp(req.ID, req.Password, req.ConfirmPassword, req.NickName)
		if err != nil {
			return fail(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"id":        account.ID,
			"login_id":  account.LoginID,
			"nick_name": account.NickName,
		})
	})

	api.Post("/sign-in", func(c *fiber.Ctx) error {
		type Req struct {
			NickName string `json:"nick_name"`
			Password string `json:"password"`
		}
		var req Req
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid JSON",
				"cause": err.Error(),
			})
		}

		token, account, err := accountService.SignIn(req.NickName, req.Password)
		if err != nil {
			return fail(c, err)
		}
		c.Cookie(&fiber.Cookie{
			Name:  "authorization",
			Value: "Bearer " + token,
		})
		return c.JSON(fiber.Map{
			"message": "signed in",
			"token":   token,
			"account": fiber.Map{
				"id":        account.ID,
				"nick_name": account.NickName,
			},
		})
	})

	api.Get("/me", middleware.AuthRequired(jwtSecret), func(c *fiber.Ctx) error {
		account, err := accountService.Get(accountID(c))
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(account)
	})
}
