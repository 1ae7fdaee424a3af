// Package token issues and verifies the signed bearer tokens that carry
// a user's identity between requests.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned by Parse for any token that cannot be
// trusted: bad signature, wrong algorithm, malformed structure or
// passed expiry. Verification is all-or-nothing.
var ErrInvalidToken = errors.New("invalid token")

// Generator defines the interface for token generation.
type Generator interface {
	// GenerateToken creates a signed token for the given user.
	GenerateToken(userID uint) (string, error)
}

// Verifier defines the interface for token verification.
type Verifier interface {
	// Parse validates a token and returns the subject user ID.
	Parse(tokenStr string) (uint, error)
}

// Service implements Generator and Verifier with HMAC-SHA256 signing.
// The secret is read once at startup and never mutated afterwards.
type Service struct {
	secret     []byte
	expiration time.Duration
}

// NewService creates a token service with the provided secret and expiration duration.
func NewService(secret string, expiration time.Duration) *Service {
	return &Service{
		secret:     []byte(secret),
		expiration: expiration,
	}
}

// GenerateToken creates a signed JWT with standard claims.
// The subject is the user's ID; email and role are resolved from the
// store on every request, not embedded in the token.
func (s *Service) GenerateToken(userID uint) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID,
		"iat": now.Unix(),
		"exp": now.Add(s.expiration).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Parse validates the signature and expiry of a token and extracts the
// subject user ID. Every failure mode collapses into ErrInvalidToken.
func (s *Service) Parse(tokenStr string) (uint, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		// Only HMAC is accepted; anything else is a forgery attempt.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrInvalidToken
	}
	sub, ok := claims["sub"].(float64) // JWT numbers are decoded as float64
	if !ok {
		return 0, ErrInvalidToken
	}

	return uint(sub), nil
}
