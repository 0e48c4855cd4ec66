package security

import (
	"errors"
	"testing"

	"github.com/ebeyer/lapwise/internal/apperr"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"letters and digit", "secret123", false},
		{"exactly eight chars", "abcdefg1", false},
		{"too short", "abc1", true},
		{"no digit", "abcdefgh", true},
		{"no letter", "12345678", true},
		{"empty", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantErr {
				var ve *apperr.ValidationError
				if !errors.As(err, &ve) {
					t.Fatalf("err = %v, want ValidationError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestHashAndVerifyPassword(t *testing.T) {
	hashed, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hashed == "secret123" {
		t.Fatal("hash must differ from the plaintext")
	}
	if !VerifyPassword("secret123", hashed) {
		t.Error("correct password should verify")
	}
	if VerifyPassword("wrong456", hashed) {
		t.Error("wrong password must not verify")
	}
}
