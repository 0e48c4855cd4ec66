package security

import (
	"errors"
	"strconv"
	"time"

	"github.com/ebeyer/lapwise/config"
	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("token is invalid or expired")

// TokenMaker issues and resolves the bearer tokens used by the HTTP layer.
// A token carries only the subject user id; the acting user is re-read from
// the database on every request.
type TokenMaker struct {
	secret   []byte
	lifetime time.Duration
}

func NewTokenMaker(cfg *config.Config) *TokenMaker {
	return &TokenMaker{
		secret:   []byte(cfg.JWT.Secret),
		lifetime: time.Duration(cfg.JWT.ExpireMinutes) * time.Minute,
	}
}

func (m *TokenMaker) Generate(userID uint) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(uint64(userID), 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.lifetime)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Resolve returns the subject user id of a valid token.
func (m *TokenMaker) Resolve(tokenString string) (uint, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&jwt.RegisteredClaims{},
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, ErrInvalidToken
			}
			return m.secret, nil
		},
	)
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return 0, ErrInvalidToken
	}
	id, err := strconv.ParseUint(claims.Subject, 10, 32)
	if err != nil {
		return 0, ErrInvalidToken
	}
	return uint(id), nil
}
