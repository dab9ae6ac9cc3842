package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	formRoute "formku_backend/internals/features/forms/forms/route"
	responseRoute "formku_backend/internals/features/forms/responses/route"
)

// ✅ Forms + responses
// Contoh akses: /api/forms, /api/forms/public/:id, /api/responses/export/:formId
func FormsRoutes(api fiber.Router, authMiddleware fiber.Handler, db *gorm.DB) {
	formRoute.FormRoutes(api, authMiddleware, db)
	responseRoute.ResponseRoutes(api, authMiddleware, db)
}
