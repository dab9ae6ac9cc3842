// file: internals/features/forms/responses/route/response_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	formRepo "formku_backend/internals/features/forms/forms/repository"
	responseController "formku_backend/internals/features/forms/responses/controller"
	responseRepo "formku_backend/internals/features/forms/responses/repository"
	responseService "formku_backend/internals/features/forms/responses/service"
	rateLimiter "formku_backend/internals/middlewares"
)

// ResponseRoutes
// Base: /api/responses
//   - POST /            publik, rate limited
//   - /form, /export, /stats  hanya owner form
func ResponseRoutes(api fiber.Router, authMiddleware fiber.Handler, db *gorm.DB) {
	svc := responseService.NewResponseService(
		formRepo.NewFormRepository(db),
		responseRepo.NewResponseRepository(db),
	)
	MountResponseRoutes(api, authMiddleware, rateLimiter.SubmitRateLimiter(), responseController.NewResponseController(svc))
}

func MountResponseRoutes(api fiber.Router, authMiddleware, submitLimiter fiber.Handler, ctl *responseController.ResponseController) {
	r := api.Group("/responses")

	r.Post("/", submitLimiter, ctl.Submit)

	r.Get("/form/:formId", authMiddleware, ctl.ListByForm)
	r.Get("/export/:formId", authMiddleware, ctl.ExportCSV)
	r.Get("/stats/:formId", authMiddleware, ctl.Stats)
}
