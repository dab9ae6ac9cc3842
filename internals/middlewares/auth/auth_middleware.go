// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"context"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"formku_backend/internals/constants"
	authService "formku_backend/internals/features/users/auth/service"
	helper "formku_backend/internals/helpers"
)

// BlacklistChecker dipenuhi oleh auth repository.
type BlacklistChecker interface {
	IsTokenBlacklisted(ctx context.Context, token string) (bool, error)
}

// AuthMiddleware memverifikasi bearer token sebelum handler owner-scoped jalan.
// Token hilang/invalid/expired/blacklisted -> 401, logika route tidak dieksekusi.
func AuthMiddleware(blacklist BlacklistChecker, secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// 1) Ambil Authorization
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
		}

		// 2) Parse & verifikasi JWT (signature + exp)
		claims, err := authService.ParseAccessToken(tokenString, secret)
		if err != nil {
			if errors.Is(err, authService.ErrMissingSecret) {
				log.Println("[ERROR] JWT_SECRET kosong")
				return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
			}
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - Invalid or expired token")
		}

		// 3) Cek blacklist (token yang sudah logout)
		if blacklist != nil {
			listed, err := blacklist.IsTokenBlacklisted(c.UserContext(), tokenString)
			if err != nil {
				log.Println("[ERROR] DB error saat cek blacklist:", err)
				return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
			}
			if listed {
				return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - Token is blacklisted")
			}
		}

		// 4) Simpan identitas ke context request
		userID, err := claims.UserID()
		if err != nil || userID == uuid.Nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - Invalid token subject")
		}
		c.Locals(constants.LocalsUserID, userID.String())
		c.Locals(constants.LocalsToken, tokenString)
		storeBasicClaimsToLocals(c, claims)

		return c.Next()
	}
}
