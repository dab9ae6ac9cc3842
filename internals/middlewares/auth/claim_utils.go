// internals/middlewares/auth/claims_utils.go
package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"formku_backend/internals/constants"
	authService "formku_backend/internals/features/users/auth/service"
)

/* ======== Extractors ======== */

func extractBearerToken(c *fiber.Ctx) (string, error) {
	auth := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if auth == "" {
		return "", errors.New("Unauthorized - No token provided")
	}

	// toleransi spasi ganda & case-insensitive
	fields := strings.Fields(auth)
	if len(fields) != 2 || !strings.EqualFold(fields[0], "Bearer") {
		return "", errors.New("Unauthorized - Invalid token format")
	}

	// buang kutip di kiri/kanan
	tok := strings.Trim(strings.TrimSpace(fields[1]), "\"'")
	if tok == "" {
		return "", errors.New("Unauthorized - Empty token")
	}
	return tok, nil
}

/* ======== Store claims to Locals ======== */

func storeBasicClaimsToLocals(c *fiber.Ctx, claims *authService.AccessClaims) {
	if claims.Email != "" {
		c.Locals(constants.LocalsUserEmail, claims.Email)
	}
	if claims.UserName != "" {
		c.Locals(constants.LocalsUserName, claims.UserName)
	}
}
