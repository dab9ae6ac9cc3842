// file: internals/features/forms/forms/model/form_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type QuestionType string

const (
	QuestionTypeText           QuestionType = "text"
	QuestionTypeMultipleChoice QuestionType = "multiple-choice"
)

// FormModel: satu form milik satu owner. Pertanyaan disimpan di form_questions,
// urut berdasarkan form_question_position.
type FormModel struct {
	FormID            uuid.UUID `gorm:"column:form_id;type:uuid;primaryKey" json:"form_id"`
	FormOwnerID       uuid.UUID `gorm:"column:form_owner_id;type:uuid;not null;index:idx_forms_owner_created,priority:1" json:"form_owner_id"`
	FormTitle         string    `gorm:"column:form_title;type:varchar(200);not null" json:"form_title"`
	FormDescription   *string   `gorm:"column:form_description;type:text" json:"form_description,omitempty"`
	FormIsActive      bool      `gorm:"column:form_is_active;not null" json:"form_is_active"`
	FormResponseCount int       `gorm:"column:form_response_count;not null;default:0" json:"form_response_count"`

	FormCreatedAt time.Time `gorm:"column:form_created_at;autoCreateTime;index:idx_forms_owner_created,priority:2,sort:desc" json:"form_created_at"`
	FormUpdatedAt time.Time `gorm:"column:form_updated_at;autoUpdateTime" json:"form_updated_at"`

	Questions []FormQuestionModel `gorm:"foreignKey:FormQuestionFormID;references:FormID;constraint:OnDelete:CASCADE" json:"questions"`
}

func (FormModel) TableName() string { return "forms" }

// FormQuestionModel: pertanyaan di dalam form. ID-nya stabil selama form hidup
// karena dipakai sebagai key map jawaban.
type FormQuestionModel struct {
	FormQuestionID       uuid.UUID      `gorm:"column:form_question_id;type:uuid;primaryKey" json:"form_question_id"`
	FormQuestionFormID   uuid.UUID      `gorm:"column:form_question_form_id;type:uuid;not null;index" json:"form_question_form_id"`
	FormQuestionPosition int            `gorm:"column:form_question_position;not null" json:"form_question_position"`
	FormQuestionType     QuestionType   `gorm:"column:form_question_type;type:varchar(20);not null;default:'text'" json:"form_question_type"`
	FormQuestionText     string         `gorm:"column:form_question_text;type:text;not null" json:"form_question_text"`
	FormQuestionOptions  pq.StringArray `gorm:"column:form_question_options;type:text[]" json:"form_question_options,omitempty"`
	FormQuestionRequired bool           `gorm:"column:form_question_required;not null" json:"form_question_required"`
}

func (FormQuestionModel) TableName() string { return "form_questions" }

// ------------------------
// Helpers
// ------------------------

func (q *FormQuestionModel) IsMultipleChoice() bool {
	return q.FormQuestionType == QuestionTypeMultipleChoice
}

// ParseQuestionType: kosong -> text; selain dua tipe yang dikenal -> ok=false.
func ParseQuestionType(s string) (QuestionType, bool) {
	switch QuestionType(strings.ToLower(strings.TrimSpace(s))) {
	case "", QuestionTypeText:
		return QuestionTypeText, true
	case QuestionTypeMultipleChoice:
		return QuestionTypeMultipleChoice, true
	default:
		return "", false
	}
}

// RequiredQuestions mengembalikan pertanyaan wajib sesuai urutan form.
func (m *FormModel) RequiredQuestions() []FormQuestionModel {
	out := make([]FormQuestionModel, 0, len(m.Questions))
	for _, q := range m.Questions {
		if q.FormQuestionRequired {
			out = append(out, q)
		}
	}
	return out
}

// QuestionIDs set id pertanyaan yang ada sekarang.
func (m *FormModel) QuestionIDs() map[uuid.UUID]struct{} {
	out := make(map[uuid.UUID]struct{}, len(m.Questions))
	for _, q := range m.Questions {
		out[q.FormQuestionID] = struct{}{}
	}
	return out
}

// Clone deep copy (slice pertanyaan & opsi ikut di-copy).
func (m FormModel) Clone() FormModel {
	out := m
	if m.FormDescription != nil {
		d := *m.FormDescription
		out.FormDescription = &d
	}
	if m.Questions != nil {
		out.Questions = make([]FormQuestionModel, len(m.Questions))
		for i, q := range m.Questions {
			if q.FormQuestionOptions != nil {
				q.FormQuestionOptions = append(pq.StringArray(nil), q.FormQuestionOptions...)
			}
			out.Questions[i] = q
		}
	}
	return out
}
