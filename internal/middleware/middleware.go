package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// UserIDHeader carries the caller identity set by the gateway in front of the
// API.
const UserIDHeader = "X-User-ID"

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		IdentityMiddleware() fiber.Handler
	}

	middleware struct{}
)

func NewMiddleware() Middleware {
	return &middleware{}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, " + UserIDHeader,
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	})
}
