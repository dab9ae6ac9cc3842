package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"formku_backend/internals/constants"
	helper "formku_backend/internals/helpers"
)

// GetUserIDFromToken mengambil user_id yang sudah diverifikasi middleware auth.
// Tidak ada identitas (atau formatnya rusak) selalu dianggap unauthenticated.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	switch t := c.Locals(constants.LocalsUserID).(type) {
	case uuid.UUID:
		if t != uuid.Nil {
			return t, nil
		}
	case string:
		if id, err := uuid.Parse(strings.TrimSpace(t)); err == nil && id != uuid.Nil {
			return id, nil
		}
	}
	return uuid.Nil, helper.NewUnauthenticatedError("Unauthorized - please log in")
}

// ParseUUIDParam membaca path param sebagai UUID.
func ParseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimSpace(c.Params(name)))
}
