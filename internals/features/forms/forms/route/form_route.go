// file: internals/features/forms/forms/route/form_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	formController "formku_backend/internals/features/forms/forms/controller"
	formRepo "formku_backend/internals/features/forms/forms/repository"
	formService "formku_backend/internals/features/forms/forms/service"
)

// FormRoutes
// Base: /api/forms
func FormRoutes(api fiber.Router, authMiddleware fiber.Handler, db *gorm.DB) {
	svc := formService.NewFormService(formRepo.NewFormRepository(db))
	MountFormRoutes(api, authMiddleware, formController.NewFormController(svc))
}

// MountFormRoutes dipisah dari FormRoutes supaya controller bisa dipasang di atas repo apa saja.
func MountFormRoutes(api fiber.Router, authMiddleware fiber.Handler, ctl *formController.FormController) {
	forms := api.Group("/forms")

	// publik (tanpa token), harus sebelum /:id
	forms.Get("/public/:id", ctl.GetPublic)

	// owner
	forms.Get("/", authMiddleware, ctl.List)
	forms.Post("/", authMiddleware, ctl.Create)
	forms.Get("/:id", authMiddleware, ctl.Get)
	forms.Put("/:id", authMiddleware, ctl.Update)
	forms.Delete("/:id", authMiddleware, ctl.Delete)
}
