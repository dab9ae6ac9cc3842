// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	controller "formku_backend/internals/features/users/auth/controller"
	rateLimiter "formku_backend/internals/middlewares"
)

// AuthRoutes
// Base: /api/auth
//   - register/login publik (rate limited)
//   - logout/me lewat middleware auth
func AuthRoutes(app *fiber.App, authMiddleware fiber.Handler, authController *controller.AuthController) {
	baseAuth := app.Group("/api/auth")

	baseAuth.Post("/login", rateLimiter.LoginRateLimiter(), authController.Login)
	baseAuth.Post("/register", rateLimiter.RegisterRateLimiter(), authController.Register)

	baseAuth.Post("/logout", authMiddleware, authController.Logout)
	baseAuth.Get("/me", authMiddleware, authController.Me)
}
