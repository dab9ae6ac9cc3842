// Package authtest: AuthRepository in-memory untuk test.
package authtest

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	authModel "formku_backend/internals/features/users/auth/model"
	authRepo "formku_backend/internals/features/users/auth/repository"
)

var _ authRepo.AuthRepository = (*Repo)(nil)

type Repo struct {
	mu        sync.Mutex
	users     map[uuid.UUID]authModel.UserModel
	blacklist map[string]time.Time
}

func NewRepo() *Repo {
	return &Repo{
		users:     map[uuid.UUID]authModel.UserModel{},
		blacklist: map[string]time.Time{},
	}
}

func (r *Repo) CreateUser(_ context.Context, user *authModel.UserModel) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, user.Email) {
			return authRepo.ErrDuplicateEmail
		}
	}
	r.users[user.ID] = *user
	return nil
}

func (r *Repo) FindUserByEmail(_ context.Context, email string) (*authModel.UserModel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			cp := u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *Repo) FindUserByID(_ context.Context, id uuid.UUID) (*authModel.UserModel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &u, nil
}

func (r *Repo) BlacklistToken(_ context.Context, token string, expiredAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.blacklist[token]; !ok {
		r.blacklist[token] = expiredAt
	}
	return nil
}

func (r *Repo) IsTokenBlacklisted(_ context.Context, token string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.blacklist[token]
	return ok, nil
}

func (r *Repo) PurgeExpiredBlacklist(_ context.Context, before time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for tok, exp := range r.blacklist {
		if exp.Before(before) {
			delete(r.blacklist, tok)
			n++
		}
	}
	return n, nil
}

// BlacklistSize jumlah token di blacklist.
func (r *Repo) BlacklistSize() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.blacklist)
}
