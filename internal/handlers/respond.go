package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/scrapiteazy/scrapeazy-backend/internal/apperr"
)

// respondError maps an application error to its transport status. Internal
// detail is logged, never leaked.
func respondError(c *fiber.Ctx, err error) error {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		if appErr.Kind == apperr.KindInternal {
			log.Printf("❌ %s %s: %v", c.Method(), c.Path(), err)
			return c.Status(appErr.Code).JSON(fiber.Map{
				"success": false,
				"message": "Internal server error",
			})
		}
		return c.Status(appErr.Code).JSON(fiber.Map{
			"success": false,
			"message": appErr.Message,
		})
	}

	log.Printf("❌ unexpected error on %s %s: %v", c.Method(), c.Path(), err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"message": "Internal server error",
	})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}
