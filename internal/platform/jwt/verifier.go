package jwtmw

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// Verification errors. Callers treat all three identically (reject the
// request); they exist so logs can tell a tampered token from a stale one.
var (
	// ErrTokenMalformed is returned when the token cannot be parsed at all.
	ErrTokenMalformed = errors.New("token is malformed")

	// ErrTokenExpired is returned when the token is past its expiry.
	ErrTokenExpired = errors.New("token has expired")

	// ErrTokenInvalid is returned when the signature does not verify or the
	// claims are unusable.
	ErrTokenInvalid = errors.New("token is invalid")
)

// Verifier defines the interface for JWT token verification.
type Verifier interface {
	// VerifyToken checks the signature and expiry of a token and returns
	// the user ID it asserts.
	VerifyToken(token string) (uint, error)
}

// verifier implements the Verifier interface.
type verifier struct {
	secret []byte
}

// NewVerifier creates a new JWT verifier with the provided signing secret.
func NewVerifier(secret string) Verifier {
	return &verifier{secret: []byte(secret)}
}

// VerifyToken parses and validates a token, classifying failures as
// malformed, expired, or invalid.
func (v *verifier) VerifyToken(tokenStr string) (uint, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		// Check signing algorithm (only HMAC allowed)
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return v.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return 0, ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenExpired):
			return 0, ErrTokenExpired
		default:
			return 0, ErrTokenInvalid
		}
	}
	if !token.Valid {
		return 0, ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrTokenInvalid
	}
	sub, ok := claims["sub"].(float64) // JWT numbers are decoded as float64
	if !ok || sub <= 0 {
		return 0, ErrTokenInvalid
	}

	return uint(sub), nil
}
