package route

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	formDTO "formku_backend/internals/features/forms/forms/dto"
	formModel "formku_backend/internals/features/forms/forms/model"
	formService "formku_backend/internals/features/forms/forms/service"
	"formku_backend/internals/features/forms/formtest"
	responseController "formku_backend/internals/features/forms/responses/controller"
	responseService "formku_backend/internals/features/forms/responses/service"
)

type harness struct {
	app   *fiber.App
	forms *formService.FormService
	owner uuid.UUID
}

func newHarness() *harness {
	st := formtest.NewStore()
	app := fiber.New()
	svc := responseService.NewResponseService(st, st)
	MountResponseRoutes(app.Group("/api"), formtest.FakeAuth(), formtest.Passthrough(), responseController.NewResponseController(svc))
	return &harness{app: app, forms: formService.NewFormService(st), owner: uuid.New()}
}

func (h *harness) form(t *testing.T) *formModel.FormModel {
	t.Helper()
	no := false
	m, err := h.forms.Create(context.Background(), h.owner, formDTO.CreateFormRequest{
		Title: "Quick Poll",
		Questions: []formDTO.QuestionRequest{
			{Type: "text", Question: "Name"},
			{Type: "text", Question: "Comment", Required: &no},
		},
	})
	require.NoError(t, err)
	return m
}

func (h *harness) request(t *testing.T, method, path, user, body string) *http.Response {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "route-test")
	if user != "" {
		req.Header.Set("Authorization", "Bearer "+user)
	}
	res, err := h.app.Test(req, -1)
	require.NoError(t, err)
	return res
}

func decode(t *testing.T, res *http.Response) map[string]any {
	t.Helper()
	defer res.Body.Close()
	out := map[string]any{}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&out))
	return out
}

func submitBody(formID string, answers map[string]string) string {
	b, _ := json.Marshal(map[string]any{"formId": formID, "responses": answers})
	return string(b)
}

func TestSubmit_PublicFlow(t *testing.T) {
	h := newHarness()
	m := h.form(t)
	name := m.Questions[0].FormQuestionID.String()

	res := h.request(t, http.MethodPost, "/api/responses", "", submitBody(m.FormID.String(), map[string]string{name: "Ana"}))
	require.Equal(t, fiber.StatusCreated, res.StatusCode)
	body := decode(t, res)
	data := body["data"].(map[string]any)
	assert.NotEmpty(t, data["responseId"])
	assert.EqualValues(t, 1, data["responseCount"])

	res = h.request(t, http.MethodPost, "/api/responses", "", submitBody(m.FormID.String(), map[string]string{}))
	assert.Equal(t, fiber.StatusBadRequest, res.StatusCode)
	body = decode(t, res)
	assert.Equal(t, "Please fill in all required fields", body["message"])
	assert.Equal(t, []any{name}, body["errors"].(map[string]any)["responses"])
}

func TestSubmit_ScalarAnswers(t *testing.T) {
	h := newHarness()
	m := h.form(t)
	name := m.Questions[0].FormQuestionID.String()
	comment := m.Questions[1].FormQuestionID.String()
	owner := h.owner.String()

	res := h.request(t, http.MethodPost, "/api/responses", "", `{"formId":"`+m.FormID.String()+`","responses":{"`+name+`":42,"`+comment+`":true}}`)
	require.Equal(t, fiber.StatusCreated, res.StatusCode)

	res = h.request(t, http.MethodGet, "/api/responses/form/"+m.FormID.String(), owner, "")
	require.Equal(t, fiber.StatusOK, res.StatusCode)
	got := decode(t, res)["data"].([]any)[0].(map[string]any)["responses"].(map[string]any)
	assert.Equal(t, "42", got[name])
	assert.Equal(t, "true", got[comment])

	// null dianggap kosong, jadi pertanyaan wajib tetap kurang
	res = h.request(t, http.MethodPost, "/api/responses", "", `{"formId":"`+m.FormID.String()+`","responses":{"`+name+`":null}}`)
	assert.Equal(t, fiber.StatusBadRequest, res.StatusCode)
	assert.Equal(t, "Please fill in all required fields", decode(t, res)["message"])

	res = h.request(t, http.MethodPost, "/api/responses", "", `{"formId":"`+m.FormID.String()+`","responses":{"`+name+`":{"x":1}}}`)
	assert.Equal(t, fiber.StatusBadRequest, res.StatusCode)
	body := decode(t, res)
	assert.Contains(t, body["errors"].(map[string]any), "responses."+name)
}

func TestSubmit_BadInput(t *testing.T) {
	h := newHarness()

	res := h.request(t, http.MethodPost, "/api/responses", "", `{"formId": ""}`)
	assert.Equal(t, fiber.StatusBadRequest, res.StatusCode)

	res = h.request(t, http.MethodPost, "/api/responses", "", `{"formId": "`+uuid.NewString()+`"}`)
	assert.Equal(t, fiber.StatusBadRequest, res.StatusCode)

	res = h.request(t, http.MethodPost, "/api/responses", "", submitBody("nope", map[string]string{}))
	assert.Equal(t, fiber.StatusNotFound, res.StatusCode)

	res = h.request(t, http.MethodPost, "/api/responses", "", submitBody(uuid.NewString(), map[string]string{}))
	assert.Equal(t, fiber.StatusNotFound, res.StatusCode)
}

func TestOwnerEndpoints(t *testing.T) {
	h := newHarness()
	m := h.form(t)
	name := m.Questions[0].FormQuestionID.String()
	owner := h.owner.String()

	for _, v := range []string{`Dewi "D"`, "Budi"} {
		res := h.request(t, http.MethodPost, "/api/responses", "", submitBody(m.FormID.String(), map[string]string{name: v}))
		require.Equal(t, fiber.StatusCreated, res.StatusCode)
	}

	// list
	res := h.request(t, http.MethodGet, "/api/responses/form/"+m.FormID.String(), owner, "")
	require.Equal(t, fiber.StatusOK, res.StatusCode)
	body := decode(t, res)
	assert.EqualValues(t, 2, body["count"])
	first := body["data"].([]any)[0].(map[string]any)
	assert.Equal(t, "Budi", first["responses"].(map[string]any)[name])
	assert.Equal(t, "route-test", first["userAgent"])

	res = h.request(t, http.MethodGet, "/api/responses/form/"+m.FormID.String()+"?sort=asc&q=dewi", owner, "")
	require.Equal(t, fiber.StatusOK, res.StatusCode)
	assert.EqualValues(t, 1, decode(t, res)["count"])

	res = h.request(t, http.MethodGet, "/api/responses/form/"+m.FormID.String()+"?page=2&per_page=1", owner, "")
	require.Equal(t, fiber.StatusOK, res.StatusCode)
	body = decode(t, res)
	require.Len(t, body["data"], 1)
	assert.Equal(t, `Dewi "D"`, body["data"].([]any)[0].(map[string]any)["responses"].(map[string]any)[name])
	pg := body["pagination"].(map[string]any)
	assert.EqualValues(t, 2, pg["total"])
	assert.Equal(t, false, pg["has_next"])

	res = h.request(t, http.MethodGet, "/api/responses/form/"+m.FormID.String()+"?sort=sideways", owner, "")
	assert.Equal(t, fiber.StatusBadRequest, res.StatusCode)

	// export
	res = h.request(t, http.MethodGet, "/api/responses/export/"+m.FormID.String(), owner, "")
	require.Equal(t, fiber.StatusOK, res.StatusCode)
	assert.Contains(t, res.Header.Get(fiber.HeaderContentType), "text/csv")
	assert.Equal(t, `attachment; filename="quick-poll-responses.csv"`, res.Header.Get(fiber.HeaderContentDisposition))
	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	lines := strings.Split(string(raw), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Submitted At,Name,Comment", lines[0])
	assert.True(t, strings.HasSuffix(lines[1], `,"Budi",""`), lines[1])
	assert.True(t, strings.HasSuffix(lines[2], `,"Dewi ""D""",""`), lines[2])

	// stats
	res = h.request(t, http.MethodGet, "/api/responses/stats/"+m.FormID.String(), owner, "")
	require.Equal(t, fiber.StatusOK, res.StatusCode)
	stats := decode(t, res)["data"].(map[string]any)
	assert.EqualValues(t, 2, stats["totalResponses"])
}

func TestOwnerEndpoints_AccessControl(t *testing.T) {
	h := newHarness()
	m := h.form(t)

	for _, p := range []string{"form", "export", "stats"} {
		path := fmt.Sprintf("/api/responses/%s/%s", p, m.FormID)

		res := h.request(t, http.MethodGet, path, "", "")
		assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode, p)

		res = h.request(t, http.MethodGet, path, uuid.NewString(), "")
		assert.Equal(t, fiber.StatusNotFound, res.StatusCode, p)

		res = h.request(t, http.MethodGet, fmt.Sprintf("/api/responses/%s/bad-id", p), h.owner.String(), "")
		assert.Equal(t, fiber.StatusNotFound, res.StatusCode, p)
	}
}
