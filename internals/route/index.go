// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"formku_backend/internals/configs"
	database "formku_backend/internals/databases"
	authRepo "formku_backend/internals/features/users/auth/repository"
	authMiddleware "formku_backend/internals/middlewares/auth"
	routeDetails "formku_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, database.Ping)

	repo := authRepo.NewAuthRepository(db)
	requireAuth := authMiddleware.AuthMiddleware(repo, configs.JWTSecret)

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, requireAuth, repo)

	// ===================== FORMS / RESPONSES =====================
	// publik & owner ada di group yang sama, auth dipasang per route
	log.Println("[INFO] Setting up FormsRoutes...")
	api := app.Group("/api")
	routeDetails.FormsRoutes(api, requireAuth, db)

	log.Println("[INFO] All routes registered.")
}
