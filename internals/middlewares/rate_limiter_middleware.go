package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func newIPLimiter(max int, window time.Duration, message string) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"success":    false,
				"message":    message,
				"error_code": "RATE_LIMITED",
			})
		},
	})
}

// Global limiter: untuk semua endpoint biasa
func GlobalRateLimiter() fiber.Handler {
	return newIPLimiter(100, 1*time.Minute, "Too many requests. Please try again later.")
}

// Rate limiter untuk login route (lebih ketat)
func LoginRateLimiter() fiber.Handler {
	return newIPLimiter(5, 1*time.Minute, "Too many login attempts. Please try again in a moment.")
}

// Rate limiter untuk register route
func RegisterRateLimiter() fiber.Handler {
	return newIPLimiter(3, 5*time.Minute, "Too many registration attempts. Please wait a few minutes.")
}

// Rate limiter untuk submit jawaban publik (anti spam form)
func SubmitRateLimiter() fiber.Handler {
	return newIPLimiter(20, 1*time.Minute, "Too many submissions. Please try again later.")
}
