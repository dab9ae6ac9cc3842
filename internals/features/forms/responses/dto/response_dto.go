// file: internals/features/forms/responses/dto/response_dto.go
package dto

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	responseModel "formku_backend/internals/features/forms/responses/model"
)

/* =========================================================
   REQUEST
========================================================= */

// POST /api/responses (publik)
// Jawaban boleh string/number/bool/null; semuanya disimpan sebagai string.
type SubmitResponseRequest struct {
	FormID    string         `json:"formId"`
	Responses map[string]any `json:"responses"`
}

// Answers konversi jawaban ke string. null -> "", number pakai format terpendek.
// Object/array ditolak, key-nya dikembalikan di invalid.
func (r SubmitResponseRequest) Answers() (answers map[string]string, invalid map[string][]string) {
	answers = make(map[string]string, len(r.Responses))
	for k, v := range r.Responses {
		s, ok := scalarString(v)
		if !ok {
			if invalid == nil {
				invalid = map[string][]string{}
			}
			invalid["responses."+k] = []string{"answer must be a string, number, or boolean"}
			continue
		}
		answers[k] = s
	}
	return answers, invalid
}

func scalarString(v any) (string, bool) {
	switch x := v.(type) {
	case nil:
		return "", true
	case string:
		return x, true
	case bool:
		return strconv.FormatBool(x), true
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), true
	case json.Number:
		return x.String(), true
	default:
		return "", false
	}
}

// ParsedFormID formId dari body; invalid -> uuid.Nil.
func (r SubmitResponseRequest) ParsedFormID() uuid.UUID {
	id, err := uuid.Parse(strings.TrimSpace(r.FormID))
	if err != nil {
		return uuid.Nil
	}
	return id
}

// GET /api/responses/form/:formId?q=&sort=asc|desc
type ListResponsesQuery struct {
	Q    string `query:"q"`
	Sort string `query:"sort" validate:"omitempty,oneof=asc desc"`
}

/* =========================================================
   RESPONSE
========================================================= */

type SubmitResultDTO struct {
	ResponseID    uuid.UUID `json:"responseId"`
	ResponseCount int       `json:"responseCount"`
}

type FormResponseDTO struct {
	ID          uuid.UUID         `json:"id"`
	FormID      uuid.UUID         `json:"formId"`
	Responses   map[string]string `json:"responses"`
	SubmittedAt time.Time         `json:"submittedAt"`
	IPAddress   *string           `json:"ipAddress,omitempty"`
	UserAgent   *string           `json:"userAgent,omitempty"`
}

func FromModelResponse(m *responseModel.FormResponseModel) FormResponseDTO {
	return FormResponseDTO{
		ID:          m.FormResponseID,
		FormID:      m.FormResponseFormID,
		Responses:   m.AnswerMap(),
		SubmittedAt: m.FormResponseCreatedAt,
		IPAddress:   m.FormResponseIPAddress,
		UserAgent:   m.FormResponseUserAgent,
	}
}

func FromModelResponses(rows []responseModel.FormResponseModel) []FormResponseDTO {
	out := make([]FormResponseDTO, 0, len(rows))
	for i := range rows {
		out = append(out, FromModelResponse(&rows[i]))
	}
	return out
}
