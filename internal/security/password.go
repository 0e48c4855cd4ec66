package security

import (
	"unicode"

	"github.com/ebeyer/lapwise/internal/apperr"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLen = 8

// ValidatePassword enforces the account password rules: at least eight
// characters, at least one digit, at least one letter.
func ValidatePassword(password string) error {
	if len(password) < minPasswordLen {
		return apperr.Validationf("password", "Password shorter than %d characters.", minPasswordLen)
	}
	var hasDigit, hasLetter bool
	for _, c := range password {
		if unicode.IsDigit(c) {
			hasDigit = true
		}
		if unicode.IsLetter(c) {
			hasLetter = true
		}
	}
	if !hasDigit {
		return apperr.Validation("password", "Password needs at least one digit.")
	}
	if !hasLetter {
		return apperr.Validation("password", "Password needs at least one letter.")
	}
	return nil
}

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func VerifyPassword(password, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
}
