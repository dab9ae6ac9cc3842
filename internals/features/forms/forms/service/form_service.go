// file: internals/features/forms/forms/service/form_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"formku_backend/internals/constants"
	formDTO "formku_backend/internals/features/forms/forms/dto"
	formModel "formku_backend/internals/features/forms/forms/model"
	formRepo "formku_backend/internals/features/forms/forms/repository"
	helper "formku_backend/internals/helpers"
)

const msgFormNotFound = "Form not found"

type FormService struct {
	Repo formRepo.FormRepository
}

func NewFormService(repo formRepo.FormRepository) *FormService {
	return &FormService{Repo: repo}
}

// requireOwner: tanpa identitas caller, operasi owner-scoped ditolak sebelum menyentuh DB.
func requireOwner(ownerID uuid.UUID) error {
	if ownerID == uuid.Nil {
		return helper.NewUnauthenticatedError("Unauthorized - please log in")
	}
	return nil
}

func notFoundOr(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.NewNotFoundError(msg)
	}
	return err
}

/* =========================================================
   READ
========================================================= */

// List semua form milik owner, terbaru dulu.
func (s *FormService) List(ctx context.Context, ownerID uuid.UUID) ([]formModel.FormModel, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}
	return s.Repo.ListByOwner(ctx, ownerID)
}

// Get form milik owner. Form milik orang lain = not found.
func (s *FormService) Get(ctx context.Context, ownerID, formID uuid.UUID) (*formModel.FormModel, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}
	m, err := s.Repo.FindByOwner(ctx, ownerID, formID)
	if err != nil {
		return nil, notFoundOr(err, msgFormNotFound)
	}
	return m, nil
}

// GetPublic hanya untuk form aktif; form nonaktif tidak bisa dibedakan dari yang tidak ada.
func (s *FormService) GetPublic(ctx context.Context, formID uuid.UUID) (*formModel.FormModel, error) {
	m, err := s.Repo.FindActive(ctx, formID)
	if err != nil {
		return nil, notFoundOr(err, "Form not found or inactive")
	}
	return m, nil
}

/* =========================================================
   WRITE
========================================================= */

func (s *FormService) Create(ctx context.Context, ownerID uuid.UUID, req formDTO.CreateFormRequest) (*formModel.FormModel, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, helper.NewValidationError("Title and questions are required")
	}

	formID := uuid.New()
	questions, err := buildQuestions(formID, req.Questions, nil)
	if err != nil {
		return nil, err
	}

	m := &formModel.FormModel{
		FormID:            formID,
		FormOwnerID:       ownerID,
		FormTitle:         title,
		FormDescription:   trimPtr(req.Description),
		FormIsActive:      req.IsActive == nil || *req.IsActive,
		FormResponseCount: 0,
		Questions:         questions,
	}
	if err := s.Repo.Create(ctx, m); err != nil {
		return nil, err
	}
	log.Printf("[INFO] form created id=%s owner=%s questions=%d", m.FormID, ownerID, len(questions))
	return m, nil
}

// Update: field yang nil di request dibiarkan. Pertanyaan yang dikirim ulang dengan id
// lamanya tetap memakai id itu, supaya jawaban lama masih terpetakan.
func (s *FormService) Update(ctx context.Context, ownerID, formID uuid.UUID, req formDTO.UpdateFormRequest) (*formModel.FormModel, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}
	m, err := s.Repo.FindByOwner(ctx, ownerID, formID)
	if err != nil {
		return nil, notFoundOr(err, msgFormNotFound)
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, helper.NewValidationError("Title is required")
		}
		m.FormTitle = title
	}
	if req.Description != nil {
		m.FormDescription = trimPtr(req.Description)
	}
	if req.IsActive != nil {
		m.FormIsActive = *req.IsActive
	}
	if req.Questions != nil {
		questions, err := buildQuestions(m.FormID, *req.Questions, m.QuestionIDs())
		if err != nil {
			return nil, err
		}
		m.Questions = questions
	}

	if err := s.Repo.Update(ctx, m); err != nil {
		return nil, notFoundOr(err, msgFormNotFound)
	}

	fresh, err := s.Repo.FindByOwner(ctx, ownerID, formID)
	if err != nil {
		return nil, notFoundOr(err, msgFormNotFound)
	}
	return fresh, nil
}

// Delete form + semua response-nya.
func (s *FormService) Delete(ctx context.Context, ownerID, formID uuid.UUID) error {
	if err := requireOwner(ownerID); err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, ownerID, formID); err != nil {
		return notFoundOr(err, msgFormNotFound)
	}
	log.Printf("[INFO] form deleted id=%s owner=%s", formID, ownerID)
	return nil
}

/* =========================================================
   Helpers
========================================================= */

// buildQuestions mengubah input builder jadi model pertanyaan.
// Pertanyaan dengan teks kosong dibuang diam-diam (bukan error); kalau setelah itu
// tidak ada pertanyaan tersisa, request ditolak.
// keep: id pertanyaan lama yang boleh dipakai ulang (nil saat create).
func buildQuestions(formID uuid.UUID, in []formDTO.QuestionRequest, keep map[uuid.UUID]struct{}) ([]formModel.FormQuestionModel, error) {
	out := make([]formModel.FormQuestionModel, 0, len(in))
	used := make(map[uuid.UUID]struct{}, len(in))

	for i, q := range in {
		text := q.Prompt()
		if text == "" {
			continue
		}
		qType, ok := formModel.ParseQuestionType(q.Type)
		if !ok {
			return nil, helper.NewFieldValidationError("Invalid question type", map[string][]string{
				fmt.Sprintf("questions[%d].type", i): {"type must be one of: text multiple-choice"},
			})
		}

		id := q.ParsedID()
		_, known := keep[id]
		_, dup := used[id]
		if id == uuid.Nil || !known || dup {
			id = uuid.New()
		}
		used[id] = struct{}{}

		var options pq.StringArray
		if qType == formModel.QuestionTypeMultipleChoice {
			options = make(pq.StringArray, 0, len(q.Options))
			for _, o := range q.Options {
				if o = strings.TrimSpace(o); o != "" {
					options = append(options, o)
				}
			}
		}

		out = append(out, formModel.FormQuestionModel{
			FormQuestionID:       id,
			FormQuestionFormID:   formID,
			FormQuestionPosition: len(out),
			FormQuestionType:     qType,
			FormQuestionText:     text,
			FormQuestionOptions:  options,
			FormQuestionRequired: q.IsRequired(),
		})
	}

	if len(out) == 0 {
		return nil, helper.NewValidationError("Title and questions are required")
	}
	if len(out) > constants.FormMaxQuestions {
		return nil, helper.NewValidationError(fmt.Sprintf("A form can have at most %d questions", constants.FormMaxQuestions))
	}
	return out, nil
}

func trimPtr(p *string) *string {
	if p == nil {
		return nil
	}
	s := strings.TrimSpace(*p)
	if s == "" {
		return nil
	}
	return &s
}
