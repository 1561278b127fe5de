package handlers

import (
	"errors"

	"Maltio-Backend/domain"

	"github.com/gofiber/fiber/v2"
)

// errorStatus picks the HTTP status for a service error. Anything unknown is
// reported as a bad request.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrRecipeNotFound),
		errors.Is(err, domain.ErrRecipeVersionNotFound),
		errors.Is(err, domain.ErrBrewNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrUnauthorizedRecipeAccess),
		errors.Is(err, domain.ErrUnauthorizedBrewAccess):
		return fiber.StatusForbidden
	default:
		return fiber.StatusBadRequest
	}
}
