// internals/features/users/auth/service/token_service.go
package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	authModel "formku_backend/internals/features/users/auth/model"
)

var (
	ErrMissingSecret = errors.New("jwt secret is not configured")
	ErrInvalidToken  = errors.New("invalid token")
)

// AccessClaims isi access token. Field "id" dibaca middleware auth.
type AccessClaims struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	UserName string `json:"user_name"`
	jwt.RegisteredClaims
}

func (c AccessClaims) UserID() (uuid.UUID, error) {
	return uuid.Parse(strings.TrimSpace(c.ID))
}

// IssueAccessToken menandatangani access token HS256 untuk user.
func IssueAccessToken(user authModel.UserModel, secret string, ttl time.Duration, now time.Time) (string, time.Time, error) {
	if strings.TrimSpace(secret) == "" {
		return "", time.Time{}, ErrMissingSecret
	}
	exp := now.Add(ttl)
	claims := AccessClaims{
		ID:       user.ID.String(),
		Email:    user.Email,
		UserName: user.UserName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
			ID:        uuid.NewString(),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// ParseAccessToken verifikasi signature + exp, lalu kembalikan klaimnya.
func ParseAccessToken(tokenString, secret string) (*AccessClaims, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, ErrMissingSecret
	}
	claims := &AccessClaims{}
	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !tok.Valid {
		return nil, ErrInvalidToken
	}
	if claims.ExpiresAt == nil {
		return nil, fmt.Errorf("%w: token has no exp", ErrInvalidToken)
	}
	if _, err := claims.UserID(); err != nil {
		return nil, fmt.Errorf("%w: invalid user id", ErrInvalidToken)
	}
	return claims, nil
}
