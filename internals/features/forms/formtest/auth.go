package formtest

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"formku_backend/internals/constants"
	helper "formku_backend/internals/helpers"
)

// FakeAuth pengganti middleware JWT di test: "Authorization: Bearer <user uuid>"
// langsung dipakai sebagai user_id.
func FakeAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		h := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
		id := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if h == "" || id == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - No token provided")
		}
		c.Locals(constants.LocalsUserID, id)
		return c.Next()
	}
}

// Passthrough handler no-op, mis. pengganti rate limiter.
func Passthrough() fiber.Handler {
	return func(c *fiber.Ctx) error { return c.Next() }
}
