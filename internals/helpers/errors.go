package helper

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Kelas error yang dikenal boundary HTTP. Service membungkus error-nya
// dengan salah satu sentinel ini lewat AppError.
var (
	ErrValidation      = errors.New("validation error")
	ErrNotFound        = errors.New("not found")
	ErrUnauthenticated = errors.New("unauthenticated")
)

// AppError membawa kelas error + pesan yang aman ditampilkan ke client.
type AppError struct {
	Kind    error
	Message string
	Fields  map[string][]string
}

func (e *AppError) Error() string {
	if e.Message == "" {
		return e.Kind.Error()
	}
	return e.Kind.Error() + ": " + e.Message
}

func (e *AppError) Unwrap() error { return e.Kind }

func NewValidationError(message string) error {
	return &AppError{Kind: ErrValidation, Message: message}
}

// NewFieldValidationError dipakai kalau client perlu tahu field mana yang gagal.
func NewFieldValidationError(message string, fields map[string][]string) error {
	return &AppError{Kind: ErrValidation, Message: message, Fields: fields}
}

func NewNotFoundError(message string) error {
	return &AppError{Kind: ErrNotFound, Message: message}
}

func NewUnauthenticatedError(message string) error {
	return &AppError{Kind: ErrUnauthenticated, Message: message}
}

// JsonFromError memetakan error dari service ke status HTTP + pesan aman.
// Error tak dikenal dicatat di log dan dibalas 500 tanpa detail internal.
func JsonFromError(c *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		switch {
		case errors.Is(appErr.Kind, ErrValidation):
			if len(appErr.Fields) > 0 {
				return JsonValidationError(c, appErr.Message, appErr.Fields)
			}
			return JsonError(c, fiber.StatusBadRequest, appErr.Message)
		case errors.Is(appErr.Kind, ErrNotFound):
			return JsonError(c, fiber.StatusNotFound, appErr.Message)
		case errors.Is(appErr.Kind, ErrUnauthenticated):
			return JsonError(c, fiber.StatusUnauthorized, appErr.Message)
		}
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		return JsonValidationError(c, "validation failed", ValidationFields(ve))
	}

	var fe *fiber.Error
	if errors.As(err, &fe) && fe.Code < 500 {
		return JsonError(c, fe.Code, fe.Message)
	}

	log.Printf("[ERROR] %s %s: %v", c.Method(), c.OriginalURL(), err)
	return JsonError(c, fiber.StatusInternalServerError, "Internal server error")
}

// ValidationFields mengubah error validator.v10 jadi map field -> pesan.
func ValidationFields(ve validator.ValidationErrors) map[string][]string {
	out := make(map[string][]string, len(ve))
	for _, fe := range ve {
		field := fe.Namespace()
		if i := strings.Index(field, "."); i >= 0 {
			field = field[i+1:]
		}
		out[field] = append(out[field], validationMessage(fe))
	}
	return out
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "max":
		return fe.Field() + " must be at most " + fe.Param() + " characters/items"
	case "min":
		return fe.Field() + " must be at least " + fe.Param() + " characters/items"
	case "oneof":
		return fe.Field() + " must be one of: " + fe.Param()
	case "email":
		return "invalid email format"
	case "uuid", "uuid4":
		return fe.Field() + " must be a valid UUID"
	default:
		return fe.Field() + " is invalid"
	}
}
