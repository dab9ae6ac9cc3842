// file: internals/features/forms/responses/service/response_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"formku_backend/internals/constants"
	formModel "formku_backend/internals/features/forms/forms/model"
	formRepo "formku_backend/internals/features/forms/forms/repository"
	responseModel "formku_backend/internals/features/forms/responses/model"
	responseRepo "formku_backend/internals/features/forms/responses/repository"
	helper "formku_backend/internals/helpers"
)

const (
	msgFormNotFound         = "Form not found"
	msgFormNotFoundInactive = "Form not found or inactive"
	msgRequiredFields       = "Please fill in all required fields"
)

type ResponseService struct {
	Forms     formRepo.FormRepository
	Responses responseRepo.ResponseRepository
}

func NewResponseService(forms formRepo.FormRepository, responses responseRepo.ResponseRepository) *ResponseService {
	return &ResponseService{Forms: forms, Responses: responses}
}

// ListFilter opsi list response (semua opsional).
type ListFilter struct {
	Query     string // substring (case-insensitive) di nilai jawaban
	Ascending bool   // default: terbaru dulu
}

// FormStats ringkasan response satu form; tanggal dalam UTC (YYYY-MM-DD).
type FormStats struct {
	TotalResponses  int            `json:"totalResponses"`
	ResponsesByDate map[string]int `json:"responsesByDate"`
}

/* =========================================================
   PUBLIC: submit
========================================================= */

// Submit menyimpan satu response untuk form aktif dan menaikkan response_count.
func (s *ResponseService) Submit(ctx context.Context, formID uuid.UUID, answers responseModel.Answers, meta responseModel.SubmitterMeta) (*responseModel.FormResponseModel, int, error) {
	if answers == nil {
		return nil, 0, helper.NewValidationError("Form ID and responses are required")
	}

	form, err := s.Forms.FindActive(ctx, formID)
	if err != nil {
		return nil, 0, notFoundOr(err, msgFormNotFoundInactive)
	}

	tooLong := map[string][]string{}
	for k, v := range answers {
		if utf8.RuneCountInString(v) > constants.AnswerMaxLen {
			tooLong["responses."+k] = []string{fmt.Sprintf("answer must be at most %d characters", constants.AnswerMaxLen)}
		}
	}
	if len(tooLong) > 0 {
		return nil, 0, helper.NewFieldValidationError("Answer too long", tooLong)
	}

	if missing := missingRequired(form, answers); len(missing) > 0 {
		return nil, 0, helper.NewFieldValidationError(msgRequiredFields, map[string][]string{
			"responses": missing,
		})
	}

	resp := responseModel.NewFormResponse(form.FormID, answers, meta)
	count, err := s.Responses.CreateWithCounter(ctx, resp)
	if err != nil {
		// form bisa dinonaktifkan/dihapus di antara baca dan commit
		return nil, 0, notFoundOr(err, msgFormNotFoundInactive)
	}
	log.Printf("[INFO] response submitted form=%s response=%s count=%d", form.FormID, resp.FormResponseID, count)
	return resp, count, nil
}

// missingRequired: id pertanyaan wajib yang jawabannya tidak ada / kosong setelah trim.
func missingRequired(form *formModel.FormModel, answers responseModel.Answers) []string {
	var missing []string
	for _, q := range form.RequiredQuestions() {
		id := q.FormQuestionID.String()
		if strings.TrimSpace(answers[id]) == "" {
			missing = append(missing, id)
		}
	}
	return missing
}

/* =========================================================
   OWNER: list / export / stats
========================================================= */

func (s *ResponseService) ownedForm(ctx context.Context, ownerID, formID uuid.UUID) (*formModel.FormModel, error) {
	if ownerID == uuid.Nil {
		return nil, helper.NewUnauthenticatedError("Unauthorized - please log in")
	}
	form, err := s.Forms.FindByOwner(ctx, ownerID, formID)
	if err != nil {
		return nil, notFoundOr(err, msgFormNotFound)
	}
	return form, nil
}

// List response milik form (hanya owner).
func (s *ResponseService) List(ctx context.Context, ownerID, formID uuid.UUID, f ListFilter) ([]responseModel.FormResponseModel, error) {
	if _, err := s.ownedForm(ctx, ownerID, formID); err != nil {
		return nil, err
	}
	rows, err := s.Responses.ListByForm(ctx, formID)
	if err != nil {
		return nil, err
	}

	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
		filtered := rows[:0]
		for _, r := range rows {
			if matchesAnswer(r.AnswerMap(), q) {
				filtered = append(filtered, r)
			}
		}
		rows = filtered
	}
	if f.Ascending {
		for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
			rows[i], rows[j] = rows[j], rows[i]
		}
	}
	return rows, nil
}

func matchesAnswer(a responseModel.Answers, lowerQuery string) bool {
	for _, v := range a {
		if strings.Contains(strings.ToLower(v), lowerQuery) {
			return true
		}
	}
	return false
}

// ExportCSV mengembalikan nama file + isi CSV semua response form.
func (s *ResponseService) ExportCSV(ctx context.Context, ownerID, formID uuid.UUID) (string, []byte, error) {
	form, err := s.ownedForm(ctx, ownerID, formID)
	if err != nil {
		return "", nil, err
	}
	rows, err := s.Responses.ListByForm(ctx, formID)
	if err != nil {
		return "", nil, err
	}
	return ExportFilename(form.FormTitle), BuildResponsesCSV(form, rows), nil
}

// Stats total response + jumlah per hari.
func (s *ResponseService) Stats(ctx context.Context, ownerID, formID uuid.UUID) (*FormStats, error) {
	if _, err := s.ownedForm(ctx, ownerID, formID); err != nil {
		return nil, err
	}
	rows, err := s.Responses.ListByForm(ctx, formID)
	if err != nil {
		return nil, err
	}

	out := &FormStats{TotalResponses: len(rows), ResponsesByDate: map[string]int{}}
	for i := range rows {
		out.ResponsesByDate[rows[i].FormResponseCreatedAt.UTC().Format("2006-01-02")]++
	}
	return out, nil
}

func notFoundOr(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.NewNotFoundError(msg)
	}
	return err
}
