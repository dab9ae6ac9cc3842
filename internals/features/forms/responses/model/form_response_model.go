// file: internals/features/forms/responses/model/form_response_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	formModel "formku_backend/internals/features/forms/forms/model"
)

// Answers: question id (string) -> jawaban. Key di luar daftar pertanyaan tetap disimpan.
type Answers map[string]string

// FormResponseModel: satu submission publik. Tidak pernah di-update setelah dibuat,
// hanya ikut terhapus saat form-nya dihapus.
type FormResponseModel struct {
	FormResponseID        uuid.UUID                  `gorm:"column:form_response_id;type:uuid;primaryKey" json:"form_response_id"`
	FormResponseFormID    uuid.UUID                  `gorm:"column:form_response_form_id;type:uuid;not null;index:idx_form_responses_form_created,priority:1" json:"form_response_form_id"`
	FormResponseAnswers   datatypes.JSONType[Answers] `gorm:"column:form_response_answers;type:jsonb;not null" json:"form_response_answers"`
	FormResponseIPAddress *string                    `gorm:"column:form_response_ip_address;type:varchar(64)" json:"form_response_ip_address,omitempty"`
	FormResponseUserAgent *string                    `gorm:"column:form_response_user_agent;type:text" json:"form_response_user_agent,omitempty"`

	FormResponseCreatedAt time.Time `gorm:"column:form_response_created_at;autoCreateTime;index:idx_form_responses_form_created,priority:2,sort:desc" json:"form_response_created_at"`

	Form *formModel.FormModel `gorm:"foreignKey:FormResponseFormID;references:FormID;constraint:OnDelete:CASCADE" json:"-"`
}

func (FormResponseModel) TableName() string { return "form_responses" }

// AnswerMap akses map jawaban; tidak pernah nil.
func (m *FormResponseModel) AnswerMap() Answers {
	a := m.FormResponseAnswers.Data()
	if a == nil {
		return Answers{}
	}
	return a
}

// SubmitterMeta info request pengirim; hanya informasi, tidak dipakai logika bisnis.
type SubmitterMeta struct {
	IPAddress string
	UserAgent string
}

func (s SubmitterMeta) ipPtr() *string { return strPtr(s.IPAddress) }
func (s SubmitterMeta) uaPtr() *string { return strPtr(s.UserAgent) }

// NewFormResponse membangun model baru dengan copy dari answers.
func NewFormResponse(formID uuid.UUID, answers Answers, meta SubmitterMeta) *FormResponseModel {
	cp := make(Answers, len(answers))
	for k, v := range answers {
		cp[k] = v
	}
	return &FormResponseModel{
		FormResponseID:        uuid.New(),
		FormResponseFormID:    formID,
		FormResponseAnswers:   datatypes.NewJSONType(cp),
		FormResponseIPAddress: meta.ipPtr(),
		FormResponseUserAgent: meta.uaPtr(),
	}
}

func strPtr(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
