// internals/features/users/auth/repository/auth_repository.go
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	authModel "formku_backend/internals/features/users/auth/model"
)

// ErrDuplicateEmail dikembalikan CreateUser kalau email sudah terdaftar.
var ErrDuplicateEmail = errors.New("email already registered")

type AuthRepository interface {
	CreateUser(ctx context.Context, user *authModel.UserModel) error
	FindUserByEmail(ctx context.Context, email string) (*authModel.UserModel, error)
	FindUserByID(ctx context.Context, id uuid.UUID) (*authModel.UserModel, error)

	BlacklistToken(ctx context.Context, token string, expiredAt time.Time) error
	IsTokenBlacklisted(ctx context.Context, token string) (bool, error)
	PurgeExpiredBlacklist(ctx context.Context, before time.Time) (int64, error)
}

type authRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) AuthRepository {
	return &authRepository{db: db}
}

/* ====================== USER ====================== */

func (r *authRepository) CreateUser(ctx context.Context, user *authModel.UserModel) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateEmail
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *authRepository) FindUserByEmail(ctx context.Context, email string) (*authModel.UserModel, error) {
	var user authModel.UserModel
	if err := r.db.WithContext(ctx).Where("LOWER(email) = LOWER(?)", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *authRepository) FindUserByID(ctx context.Context, id uuid.UUID) (*authModel.UserModel, error) {
	var user authModel.UserModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

/* ====================== TOKEN BLACKLIST ====================== */

func (r *authRepository) BlacklistToken(ctx context.Context, token string, expiredAt time.Time) error {
	// logout dua kali dengan token sama tidak boleh error
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "token"}}, DoNothing: true}).
		Create(&authModel.TokenBlacklist{Token: token, ExpiredAt: expiredAt}).Error
}

func (r *authRepository) IsTokenBlacklisted(ctx context.Context, token string) (bool, error) {
	var exists bool
	err := r.db.WithContext(ctx).
		Raw(`SELECT EXISTS(SELECT 1 FROM token_blacklist WHERE token = ?)`, token).
		Scan(&exists).Error
	return exists, err
}

func (r *authRepository) PurgeExpiredBlacklist(ctx context.Context, before time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("expired_at < ?", before).
		Delete(&authModel.TokenBlacklist{})
	return res.RowsAffected, res.Error
}
