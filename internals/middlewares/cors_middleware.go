// middlewares/cors.go

package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CorsMiddleware membuat middleware CORS dari daftar origin (CORS_ALLOW_ORIGINS).
// Origin "*" tidak boleh dipakai bareng credentials (fiber panic), jadi credentials dimatikan.
func CorsMiddleware(origins []string) fiber.Handler {
	joined := strings.Join(origins, ", ")
	return cors.New(cors.Config{
		AllowOrigins:     joined,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Request-ID",
		ExposeHeaders:    "Content-Disposition, X-Request-ID",
		AllowCredentials: !strings.Contains(joined, "*"),
	})
}
