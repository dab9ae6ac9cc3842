package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	authHelper "formku_backend/internals/features/users/auth/helper"
	authModel "formku_backend/internals/features/users/auth/model"
	authRepo "formku_backend/internals/features/users/auth/repository"
	helper "formku_backend/internals/helpers"
)

/* ==========================
   Types
========================== */

type RegisterInput struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResult dikirim ke client setelah register/login.
type AuthResult struct {
	Token     string              `json:"token"`
	ExpiresAt time.Time           `json:"expiresAt"`
	User      authModel.UserModel `json:"user"`
}

type AuthService struct {
	Repo      authRepo.AuthRepository
	Secret    string
	AccessTTL time.Duration
	Now       func() time.Time
}

func NewAuthService(repo authRepo.AuthRepository, secret string, accessTTL time.Duration) *AuthService {
	if accessTTL <= 0 {
		accessTTL = 24 * time.Hour
	}
	return &AuthService{Repo: repo, Secret: secret, AccessTTL: accessTTL, Now: func() time.Time { return time.Now().UTC() }}
}

/* ==========================
   REGISTER
========================== */

func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Name = strings.TrimSpace(in.Name)
	if err := authHelper.ValidateRegisterInput(in.Name, in.Email, in.Password); err != nil {
		return nil, helper.NewValidationError(err.Error())
	}

	hash, err := authHelper.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	user := authModel.UserModel{
		ID:       uuid.New(),
		UserName: in.Name,
		Email:    in.Email,
		Password: hash,
		IsActive: true,
	}
	if err := s.Repo.CreateUser(ctx, &user); err != nil {
		if errors.Is(err, authRepo.ErrDuplicateEmail) {
			return nil, helper.NewValidationError("Email already registered")
		}
		return nil, err
	}
	log.Printf("[INFO] user registered id=%s", user.ID)
	return s.issue(user)
}

/* ==========================
   LOGIN
========================== */

func (s *AuthService) Login(ctx context.Context, in LoginInput) (*AuthResult, error) {
	user, err := s.Repo.FindUserByEmail(ctx, strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.NewUnauthenticatedError("Invalid email or password")
		}
		return nil, err
	}
	if err := authHelper.CheckPasswordHash(user.Password, in.Password); err != nil {
		return nil, helper.NewUnauthenticatedError("Invalid email or password")
	}
	if !user.IsActive {
		return nil, helper.NewUnauthenticatedError("Account is disabled")
	}
	return s.issue(*user)
}

/* ==========================
   LOGOUT / ME
========================== */

// Logout memasukkan token ke blacklist sampai exp-nya lewat.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	claims, err := ParseAccessToken(token, s.Secret)
	if err != nil {
		return helper.NewUnauthenticatedError("Unauthorized - invalid token")
	}
	return s.Repo.BlacklistToken(ctx, token, claims.ExpiresAt.Time)
}

func (s *AuthService) Me(ctx context.Context, userID uuid.UUID) (*authModel.UserModel, error) {
	if userID == uuid.Nil {
		return nil, helper.NewUnauthenticatedError("Unauthorized - please log in")
	}
	user, err := s.Repo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.NewNotFoundError("User not found")
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) issue(user authModel.UserModel) (*AuthResult, error) {
	token, exp, err := IssueAccessToken(user, s.Secret, s.AccessTTL, s.Now())
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, ExpiresAt: exp, User: user}, nil
}
