package server

import (
	"spec-sync/core/errors"

	"github.com/gofiber/fiber/v2"
)

// StatusCode maps a service error onto an HTTP status.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, errors.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, errors.ErrInvalidInput):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// SendError writes err as {"error": "..."} with its mapped status.
func SendError(c *fiber.Ctx, err error) error {
	return c.Status(StatusCode(err)).JSON(fiber.Map{
		"error": err.Error(),
	})
}
