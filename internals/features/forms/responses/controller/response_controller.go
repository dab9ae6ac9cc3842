// file: internals/features/forms/responses/controller/response_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	responseDTO "formku_backend/internals/features/forms/responses/dto"
	responseModel "formku_backend/internals/features/forms/responses/model"
	responseService "formku_backend/internals/features/forms/responses/service"
	helper "formku_backend/internals/helpers"
	helperAuth "formku_backend/internals/helpers/auth"
)

type ResponseController struct {
	Service   *responseService.ResponseService
	Validator *validator.Validate
}

func NewResponseController(svc *responseService.ResponseService) *ResponseController {
	return &ResponseController{Service: svc, Validator: validator.New()}
}

// POST /api/responses (publik)
func (rc *ResponseController) Submit(c *fiber.Ctx) error {
	var req responseDTO.SubmitResponseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if strings.TrimSpace(req.FormID) == "" || req.Responses == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Form ID and responses are required")
	}
	formID := req.ParsedFormID()
	if formID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Form not found or inactive")
	}

	answers, invalid := req.Answers()
	if len(invalid) > 0 {
		return helper.JsonFromError(c, helper.NewFieldValidationError("Invalid answer value", invalid))
	}

	meta := responseModel.SubmitterMeta{
		IPAddress: c.IP(),
		UserAgent: c.Get(fiber.HeaderUserAgent),
	}
	resp, count, err := rc.Service.Submit(c.UserContext(), formID, responseModel.Answers(answers), meta)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonCreated(c, "Response submitted successfully", responseDTO.SubmitResultDTO{
		ResponseID:    resp.FormResponseID,
		ResponseCount: count,
	})
}

// GET /api/responses/form/:formId?q=&sort=&page=&per_page=
func (rc *ResponseController) ListByForm(c *fiber.Ctx) error {
	ownerID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	formID, err := helperAuth.ParseUUIDParam(c, "formId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Form not found")
	}

	var q responseDTO.ListResponsesQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid query")
	}
	q.Sort = strings.ToLower(strings.TrimSpace(q.Sort))
	if err := rc.Validator.Struct(&q); err != nil {
		return helper.JsonFromError(c, err)
	}

	rows, err := rc.Service.List(c.UserContext(), ownerID, formID, responseService.ListFilter{
		Query:     q.Q,
		Ascending: q.Sort == "asc",
	})
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	// paging opsional (?page=&per_page=), tanpa itu list dikirim utuh
	if p := helper.ParseFiber(c, helper.ResponseListOpts); p.Enabled {
		start, end := p.Window(len(rows))
		return helper.JsonPaginated(c, "ok", responseDTO.FromModelResponses(rows[start:end]), helper.BuildMeta(int64(len(rows)), p))
	}
	return helper.JsonList(c, "ok", responseDTO.FromModelResponses(rows))
}

// GET /api/responses/export/:formId -> text/csv attachment
func (rc *ResponseController) ExportCSV(c *fiber.Ctx) error {
	ownerID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	formID, err := helperAuth.ParseUUIDParam(c, "formId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Form not found")
	}

	filename, body, err := rc.Service.ExportCSV(c.UserContext(), ownerID, formID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	c.Attachment(filename)
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	return c.Status(fiber.StatusOK).Send(body)
}

// GET /api/responses/stats/:formId
func (rc *ResponseController) Stats(c *fiber.Ctx) error {
	ownerID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	formID, err := helperAuth.ParseUUIDParam(c, "formId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Form not found")
	}
	st, err := rc.Service.Stats(c.UserContext(), ownerID, formID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "ok", st)
}
