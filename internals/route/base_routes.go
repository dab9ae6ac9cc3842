package routes

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
)

// BaseRoutes root + health check. ping dipisah supaya bisa diganti saat test.
func BaseRoutes(app *fiber.App, ping func() error) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Formku API is running 🚀")
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		dbStatus := "Connected"
		serverStatus := "OK"
		httpStatus := fiber.StatusOK

		if ping == nil || ping() != nil {
			dbStatus = "Database connection error"
			serverStatus = "DOWN"
			httpStatus = fiber.StatusServiceUnavailable
		}

		return c.Status(httpStatus).JSON(fiber.Map{
			"status":         serverStatus,
			"database":       dbStatus,
			"server_time":    time.Now().Format(time.RFC3339),
			"uptime_seconds": int(time.Since(startTime).Seconds()),
			"environment":    os.Getenv("RAILWAY_ENVIRONMENT"),
		})
	})
}
