package helpers

import (
	"errors"
	"regexp"
	"strings"
)

var (
	reLetter = regexp.MustCompile(`[A-Za-z]`)
	reNumber = regexp.MustCompile(`[0-9]`)
	reEmail  = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

func isAlphaNumeric(s string) bool {
	return reLetter.MatchString(s) && reNumber.MatchString(s)
}

// Validasi Email (regex simple)
func isValidEmail(email string) bool {
	return reEmail.MatchString(email)
}

// ValidateRegisterInput cek aturan yang tidak tertangkap tag validator.
func ValidateRegisterInput(name, email, password string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("name is required")
	}
	if !isValidEmail(strings.TrimSpace(email)) {
		return errors.New("invalid email format")
	}
	if len(password) < 8 || !isAlphaNumeric(password) {
		return errors.New("password must be at least 8 characters and contain letters and numbers")
	}
	return nil
}
