// file: internals/features/forms/responses/repository/response_repository.go
package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	formModel "formku_backend/internals/features/forms/forms/model"
	responseModel "formku_backend/internals/features/forms/responses/model"
)

type ResponseRepository interface {
	// CreateWithCounter insert response + response_count+1 dalam satu transaksi.
	// Form yang hilang/nonaktif pada saat commit -> gorm.ErrRecordNotFound.
	// Mengembalikan nilai counter setelah increment.
	CreateWithCounter(ctx context.Context, resp *responseModel.FormResponseModel) (int, error)
	// ListByForm semua response milik form, terbaru dulu.
	ListByForm(ctx context.Context, formID uuid.UUID) ([]responseModel.FormResponseModel, error)
}

type responseRepository struct {
	db *gorm.DB
}

func NewResponseRepository(db *gorm.DB) ResponseRepository {
	return &responseRepository{db: db}
}

func (r *responseRepository) CreateWithCounter(ctx context.Context, resp *responseModel.FormResponseModel) (int, error) {
	var count int
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// increment dulu: row form ikut terkunci sampai commit, jadi delete paralel menunggu
		var f formModel.FormModel
		res := tx.Model(&f).
			Clauses(clause.Returning{Columns: []clause.Column{{Name: "form_response_count"}}}).
			Where("form_id = ? AND form_is_active = ?", resp.FormResponseFormID, true).
			UpdateColumn("form_response_count", gorm.Expr("form_response_count + ?", 1))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		count = f.FormResponseCount

		return tx.Create(resp).Error
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *responseRepository) ListByForm(ctx context.Context, formID uuid.UUID) ([]responseModel.FormResponseModel, error) {
	var rows []responseModel.FormResponseModel
	err := r.db.WithContext(ctx).
		Where("form_response_form_id = ?", formID).
		Order("form_response_created_at DESC").
		Order("form_response_id DESC").
		Find(&rows).Error
	return rows, err
}
