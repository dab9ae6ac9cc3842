package details

import (
	"github.com/gofiber/fiber/v2"

	"formku_backend/internals/configs"
	authController "formku_backend/internals/features/users/auth/controller"
	authRepo "formku_backend/internals/features/users/auth/repository"
	authRoute "formku_backend/internals/features/users/auth/route"
	authService "formku_backend/internals/features/users/auth/service"
)

// AuthRoutes /api/auth/*
func AuthRoutes(app *fiber.App, authMiddleware fiber.Handler, repo authRepo.AuthRepository) {
	svc := authService.NewAuthService(repo, configs.JWTSecret, configs.JWTAccessTTL)
	authRoute.AuthRoutes(app, authMiddleware, authController.NewAuthController(svc))
}
