package handlers

import (
	"errors"

	"roster-game-system/services"

	"github.com/gofiber/fiber/v2"
)

// fail maps a taxonomy error onto its HTTP status. Unknown errors become 500
// with the cause attached for the logs-adjacent consumer.
func fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrCopyNotFound),
		errors.Is(err, services.ErrTeamNotFound),
		errors.Is(err, services.ErrTemplateNotFound),
		errors.Is(err, services.ErrAccountNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})

	case errors.Is(err, services.ErrStoreConflict):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})

	case errors.Is(err, services.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})

	case errors.Is(err, services.ErrLoginTaken):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})

	case errors.Is(err, services.ErrInsufficientFunds),
		errors.Is(err, services.ErrInsufficientDuplicates),
		errors.Is(err, services.ErrMaxLevelReached),
		errors.Is(err, services.ErrIncompleteTeam),
		errors.Is(err, services.ErrNoEligibleOpponent),
		errors.Is(err, services.ErrNotTeamOwner),
		errors.Is(err, services.ErrInvalidLoginID),
		errors.Is(err, services.ErrWeakPassword),
		errors.Is(err, services.ErrPasswordMismatch),
		errors.Is(err, services.ErrInvalidTemplate):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})

	case errors.Is(err, services.ErrEmptyTierPool):
		// Catalog integrity problem, not a user mistake.
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})

	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "internal error",
			"cause": err.Error(),
		})
	}
}

func accountID(c *fiber.Ctx) string {
	id, _ := c.Locals("account_id").(string)
	return id
}
