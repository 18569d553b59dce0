package jwtmw

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// createTokenWithSecret はテスト用に指定されたシークレットとユーザーIDで署名済みJWTトークンを生成します。
func createTokenWithSecret(secret string, userID uint, expiration time.Duration) string {
	claims := jwt.MapClaims{
		"sub":   float64(userID),
		"exp":   time.Now().Add(expiration).Unix(),
		"iat":   time.Now().Unix(),
		"email": "test@example.com",
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, _ := token.SignedString([]byte(secret))
	return signed
}

// TestVerifyToken_Valid は有効なトークンからユーザーIDが取り出せることを検証します。
func TestVerifyToken_Valid(t *testing.T) {
	const secret = "verify-test-secret"
	v := NewVerifier(secret)

	tests := []struct {
		name   string
		userID uint
	}{
		{"user id 1", 1},
		{"user id 42", 42},
		{"user id 999", 999},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userID, err := v.VerifyToken(createTokenWithSecret(secret, tt.userID, time.Hour))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if userID != tt.userID {
				t.Errorf("expected userID %d, got %d", tt.userID, userID)
			}
		})
	}
}

// TestVerifyToken_FailureClasses は失敗がMalformed/Expired/Invalidに分類されることを検証します。
func TestVerifyToken_FailureClasses(t *testing.T) {
	const secret = "verify-test-secret"
	v := NewVerifier(secret)

	tests := []struct {
		name        string
		token       string
		expectedErr error
	}{
		{"garbage string", "randomstring", ErrTokenMalformed},
		{"malformed structure", "not.a.valid.token", ErrTokenMalformed},
		{"empty token", "", ErrTokenMalformed},
		{"wrong secret", createTokenWithSecret("wrong-secret", 1, time.Hour), ErrTokenInvalid},
		{"expired token", createTokenWithSecret(secret, 1, -time.Hour), ErrTokenExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userID, err := v.VerifyToken(tt.token)
			if !errors.Is(err, tt.expectedErr) {
				t.Errorf("expected error %v, got %v", tt.expectedErr, err)
			}
			if userID != 0 {
				t.Errorf("expected zero userID on failure, got %d", userID)
			}
		})
	}
}

// TestVerifyToken_InvalidSigningMethod はnoneアルゴリズム（未署名）のトークンが拒否されることを検証します。
func TestVerifyToken_InvalidSigningMethod(t *testing.T) {
	v := NewVerifier("verify-test-secret")

	// Create token with "none" algorithm (unsigned)
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": float64(1),
		"exp": time.Now().Add(time.Hour).Unix(),
		"iat": time.Now().Unix(),
	})
	tokenStr, _ := token.SignedString(jwt.UnsafeAllowNoneSignatureType)

	if _, err := v.VerifyToken(tokenStr); err == nil {
		t.Error("expected unsigned token to be rejected")
	}
}

// TestVerifyToken_MissingSubject はsubクレームのないトークンが拒否されることを検証します。
func TestVerifyToken_MissingSubject(t *testing.T) {
	const secret = "verify-test-secret"
	v := NewVerifier(secret)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
		"iat": time.Now().Unix(),
	})
	tokenStr, _ := token.SignedString([]byte(secret))

	if _, err := v.VerifyToken(tokenStr); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid, got %v", err)
	}
}
