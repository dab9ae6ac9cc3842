package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"formku_backend/internals/configs"
	"formku_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware global: recover, access log, CORS, rate limit.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(CorsMiddleware(configs.CorsAllowOrigins))
	app.Use(GlobalRateLimiter())
}
