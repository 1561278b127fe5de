package middleware

import (
	"strings"

	"Maltio-Backend/domain"
	"Maltio-Backend/internal/api/presenters"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"
)

// IdentityMiddleware stores the caller id from UserIDHeader in
// c.Locals("user_id"). Requests without a valid id are rejected. The stored
// id is a copy, so it stays valid after the request buffer is reused.
func (m *middleware) IdentityMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := strings.TrimSpace(c.Get(UserIDHeader))
		if userID == "" {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedIdentity, domain.ErrMissingUserID)
		}
		if _, err := uuid.Parse(userID); err != nil {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedIdentity, domain.ErrParseUUID)
		}

		c.Locals("user_id", utils.CopyString(userID))
		return c.Next()
	}
}
