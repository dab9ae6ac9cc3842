// file: internals/features/forms/forms/controller/form_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	formDTO "formku_backend/internals/features/forms/forms/dto"
	formService "formku_backend/internals/features/forms/forms/service"
	helper "formku_backend/internals/helpers"
	helperAuth "formku_backend/internals/helpers/auth"
)

type FormController struct {
	Service   *formService.FormService
	Validator *validator.Validate
}

func NewFormController(svc *formService.FormService) *FormController {
	return &FormController{Service: svc, Validator: validator.New()}
}

// GET /api/forms
func (fc *FormController) List(c *fiber.Ctx) error {
	ownerID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	rows, err := fc.Service.List(c.UserContext(), ownerID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonList(c, "ok", formDTO.FromModelForms(rows))
}

// GET /api/forms/:id
func (fc *FormController) Get(c *fiber.Ctx) error {
	ownerID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	formID, err := helperAuth.ParseUUIDParam(c, "id")
	if err != nil {
		// id rusak diperlakukan sama dengan id yang tidak ada
		return helper.JsonError(c, fiber.StatusNotFound, "Form not found")
	}
	m, err := fc.Service.Get(c.UserContext(), ownerID, formID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "ok", formDTO.FromModelForm(m))
}

// GET /api/forms/public/:id (tanpa login)
func (fc *FormController) GetPublic(c *fiber.Ctx) error {
	formID, err := helperAuth.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Form not found or inactive")
	}
	m, err := fc.Service.GetPublic(c.UserContext(), formID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "ok", formDTO.FromModelPublicForm(m))
}

// POST /api/forms
func (fc *FormController) Create(c *fiber.Ctx) error {
	ownerID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	var req formDTO.CreateFormRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := fc.Validator.Struct(&req); err != nil {
		return helper.JsonFromError(c, err)
	}

	m, err := fc.Service.Create(c.UserContext(), ownerID, req)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonCreated(c, "Form created", formDTO.FromModelForm(m))
}

// PUT /api/forms/:id
func (fc *FormController) Update(c *fiber.Ctx) error {
	ownerID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	formID, err := helperAuth.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Form not found")
	}

	var req formDTO.UpdateFormRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := fc.Validator.Struct(&req); err != nil {
		return helper.JsonFromError(c, err)
	}
	if req.Questions != nil {
		for i := range *req.Questions {
			if err := fc.Validator.Struct(&(*req.Questions)[i]); err != nil {
				return helper.JsonFromError(c, err)
			}
		}
	}

	m, err := fc.Service.Update(c.UserContext(), ownerID, formID, req)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonUpdated(c, "Form updated", formDTO.FromModelForm(m))
}

// DELETE /api/forms/:id
func (fc *FormController) Delete(c *fiber.Ctx) error {
	ownerID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	formID, err := helperAuth.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Form not found")
	}
	if err := fc.Service.Delete(c.UserContext(), ownerID, formID); err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonDeleted(c, "Form deleted", fiber.Map{"id": formID})
}
