// file: internals/features/forms/forms/dto/form_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	formModel "formku_backend/internals/features/forms/forms/model"
)

/* =========================================================
   REQUEST
========================================================= */

// QuestionRequest satu pertanyaan dari form builder.
// "text" diterima sebagai alias "question".
type QuestionRequest struct {
	ID       string   `json:"id"`
	Type     string   `json:"type" validate:"omitempty,oneof=text multiple-choice"`
	Text     string   `json:"text" validate:"max=1000"`
	Question string   `json:"question" validate:"max=1000"`
	Options  []string `json:"options" validate:"max=50,dive,max=500"`
	Required *bool    `json:"required"`
}

// Prompt teks pertanyaan (question, fallback ke text), sudah di-trim.
func (q QuestionRequest) Prompt() string {
	if t := strings.TrimSpace(q.Question); t != "" {
		return t
	}
	return strings.TrimSpace(q.Text)
}

func (q QuestionRequest) IsRequired() bool {
	return q.Required == nil || *q.Required
}

// ParsedID id yang dikirim client (kosong/invalid -> uuid.Nil).
func (q QuestionRequest) ParsedID() uuid.UUID {
	id, err := uuid.Parse(strings.TrimSpace(q.ID))
	if err != nil {
		return uuid.Nil
	}
	return id
}

// POST /forms
type CreateFormRequest struct {
	Title       string            `json:"title" validate:"max=200"`
	Description *string           `json:"description" validate:"omitempty,max=2000"`
	Questions   []QuestionRequest `json:"questions" validate:"max=200,dive"`
	IsActive    *bool             `json:"isActive"`
}

// PUT /forms/:id
// Field yang tidak dikirim (nil) dibiarkan seperti sebelumnya.
type UpdateFormRequest struct {
	Title       *string            `json:"title" validate:"omitempty,max=200"`
	Description *string            `json:"description" validate:"omitempty,max=2000"`
	Questions   *[]QuestionRequest `json:"questions"`
	IsActive    *bool              `json:"isActive"`
}

/* =========================================================
   RESPONSE
========================================================= */

type QuestionDTO struct {
	ID       uuid.UUID              `json:"id"`
	Type     formModel.QuestionType `json:"type"`
	Question string                 `json:"question"`
	Options  []string               `json:"options,omitempty"`
	Required bool                   `json:"required"`
}

type FormDTO struct {
	ID            uuid.UUID     `json:"id"`
	Title         string        `json:"title"`
	Description   *string       `json:"description,omitempty"`
	Questions     []QuestionDTO `json:"questions"`
	OwnerID       uuid.UUID     `json:"ownerId"`
	IsActive      bool          `json:"isActive"`
	ResponseCount int           `json:"responseCount"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

func FromModelForm(m *formModel.FormModel) FormDTO {
	qs := make([]QuestionDTO, 0, len(m.Questions))
	for _, q := range m.Questions {
		qs = append(qs, QuestionDTO{
			ID:       q.FormQuestionID,
			Type:     q.FormQuestionType,
			Question: q.FormQuestionText,
			Options:  []string(q.FormQuestionOptions),
			Required: q.FormQuestionRequired,
		})
	}
	return FormDTO{
		ID:            m.FormID,
		Title:         m.FormTitle,
		Description:   m.FormDescription,
		Questions:     qs,
		OwnerID:       m.FormOwnerID,
		IsActive:      m.FormIsActive,
		ResponseCount: m.FormResponseCount,
		CreatedAt:     m.FormCreatedAt,
		UpdatedAt:     m.FormUpdatedAt,
	}
}

func FromModelForms(rows []formModel.FormModel) []FormDTO {
	out := make([]FormDTO, 0, len(rows))
	for i := range rows {
		out = append(out, FromModelForm(&rows[i]))
	}
	return out
}

// PublicFormDTO versi publik: tanpa owner & counter.
type PublicFormDTO struct {
	ID          uuid.UUID     `json:"id"`
	Title       string        `json:"title"`
	Description *string       `json:"description,omitempty"`
	Questions   []QuestionDTO `json:"questions"`
	IsActive    bool          `json:"isActive"`
}

func FromModelPublicForm(m *formModel.FormModel) PublicFormDTO {
	full := FromModelForm(m)
	return PublicFormDTO{
		ID:          full.ID,
		Title:       full.Title,
		Description: full.Description,
		Questions:   full.Questions,
		IsActive:    full.IsActive,
	}
}
