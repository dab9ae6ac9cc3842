// file: internals/features/forms/forms/repository/form_repository.go
package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	formModel "formku_backend/internals/features/forms/forms/model"
	responseModel "formku_backend/internals/features/forms/responses/model"
)

// FormRepository akses data form. Semua query owner-scoped memakai filter
// form_owner_id; "tidak ketemu" selalu gorm.ErrRecordNotFound.
type FormRepository interface {
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]formModel.FormModel, error)
	FindByOwner(ctx context.Context, ownerID, formID uuid.UUID) (*formModel.FormModel, error)
	FindActive(ctx context.Context, formID uuid.UUID) (*formModel.FormModel, error)
	Create(ctx context.Context, form *formModel.FormModel) error
	// Update mengganti title/description/is_active + seluruh pertanyaan dalam satu transaksi.
	Update(ctx context.Context, form *formModel.FormModel) error
	// Delete menghapus form beserta semua response-nya dalam satu transaksi.
	Delete(ctx context.Context, ownerID, formID uuid.UUID) error
}

type formRepository struct {
	db *gorm.DB
}

func NewFormRepository(db *gorm.DB) FormRepository {
	return &formRepository{db: db}
}

func withQuestions(db *gorm.DB) *gorm.DB {
	return db.Preload("Questions", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("form_question_position ASC")
	})
}

func (r *formRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]formModel.FormModel, error) {
	var rows []formModel.FormModel
	err := withQuestions(r.db.WithContext(ctx)).
		Where("form_owner_id = ?", ownerID).
		Order("form_created_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *formRepository) FindByOwner(ctx context.Context, ownerID, formID uuid.UUID) (*formModel.FormModel, error) {
	var m formModel.FormModel
	if err := withQuestions(r.db.WithContext(ctx)).
		Where("form_id = ? AND form_owner_id = ?", formID, ownerID).
		First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *formRepository) FindActive(ctx context.Context, formID uuid.UUID) (*formModel.FormModel, error) {
	var m formModel.FormModel
	if err := withQuestions(r.db.WithContext(ctx)).
		Where("form_id = ? AND form_is_active = ?", formID, true).
		First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *formRepository) Create(ctx context.Context, form *formModel.FormModel) error {
	// GORM ikut insert form.Questions (has-many) dalam transaksi yang sama
	return r.db.WithContext(ctx).Create(form).Error
}

func (r *formRepository) Update(ctx context.Context, form *formModel.FormModel) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&formModel.FormModel{}).
			Where("form_id = ? AND form_owner_id = ?", form.FormID, form.FormOwnerID).
			Updates(map[string]any{
				"form_title":       form.FormTitle,
				"form_description": form.FormDescription,
				"form_is_active":   form.FormIsActive,
				"form_updated_at":  time.Now().UTC(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		if err := tx.Where("form_question_form_id = ?", form.FormID).
			Delete(&formModel.FormQuestionModel{}).Error; err != nil {
			return err
		}
		if len(form.Questions) == 0 {
			return nil
		}
		for i := range form.Questions {
			form.Questions[i].FormQuestionFormID = form.FormID
		}
		return tx.Create(&form.Questions).Error
	})
}

func (r *formRepository) Delete(ctx context.Context, ownerID, formID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// kunci baris form supaya submit yang bersamaan menunggu sampai delete selesai
		var m formModel.FormModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("form_id").
			Where("form_id = ? AND form_owner_id = ?", formID, ownerID).
			First(&m).Error; err != nil {
			return err
		}

		if err := tx.Where("form_response_form_id = ?", formID).
			Delete(&responseModel.FormResponseModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("form_question_form_id = ?", formID).
			Delete(&formModel.FormQuestionModel{}).Error; err != nil {
			return err
		}
		return tx.Where("form_id = ?", formID).Delete(&formModel.FormModel{}).Error
	})
}
