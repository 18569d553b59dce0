package jwtmw

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

// TestMain はテスト実行前にGinをテストモードに設定します。
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// mockUserResolver is a mock implementation of the UserResolver interface.
type mockUserResolver struct {
	ExistsFunc func(ctx context.Context, userID uint) (bool, error)
}

// Exists is the mock implementation of the Exists method.
func (m *mockUserResolver) Exists(ctx context.Context, userID uint) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, userID)
	}
	return true, nil // Default: user exists
}

const testSecret = "middleware-test-secret"

func newTestContext(t *testing.T, authHeader string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		c.Request.Header.Set("Authorization", authHeader)
	}
	return c, w
}

// TestAuthRequired_MissingBearerToken はBearerトークンがない場合やプレフィックスが不正な場合に401が返されることを検証します。
func TestAuthRequired_MissingBearerToken(t *testing.T) {
	tests := []struct {
		name       string
		authHeader string
	}{
		{"no header", ""},
		{"basic auth", "Basic dXNlcjpwYXNz"},
		{"bearer lowercase", "bearer token123"},
		{"no space after Bearer", "Bearertoken123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestContext(t, tt.authHeader)

			handler := AuthRequired(NewVerifier(testSecret), &mockUserResolver{})
			handler(c)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
			}
			if !c.IsAborted() {
				t.Error("expected request to be aborted")
			}
		})
	}
}

// TestAuthRequired_InvalidToken は不正なトークン（改ざん・期限切れ等）で401が返されることを検証します。
func TestAuthRequired_InvalidToken(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"malformed token", "not.a.valid.token"},
		{"random string", "randomstring"},
		{"wrong secret", createTokenWithSecret("wrong-secret", 1, time.Hour)},
		{"expired token", createTokenWithSecret(testSecret, 1, -time.Hour)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestContext(t, "Bearer "+tt.token)

			handler := AuthRequired(NewVerifier(testSecret), &mockUserResolver{})
			handler(c)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
			}
		})
	}
}

// TestAuthRequired_DeletedUser はトークン発行後に削除されたユーザーで401が返されることを検証します。
func TestAuthRequired_DeletedUser(t *testing.T) {
	c, w := newTestContext(t, "Bearer "+createTokenWithSecret(testSecret, 7, time.Hour))

	resolver := &mockUserResolver{
		ExistsFunc: func(ctx context.Context, userID uint) (bool, error) {
			return false, nil
		},
	}
	handler := AuthRequired(NewVerifier(testSecret), resolver)
	handler(c)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
}

// TestAuthRequired_ResolverError はユーザー解決の失敗で500が返されることを検証します。
func TestAuthRequired_ResolverError(t *testing.T) {
	c, w := newTestContext(t, "Bearer "+createTokenWithSecret(testSecret, 7, time.Hour))

	resolver := &mockUserResolver{
		ExistsFunc: func(ctx context.Context, userID uint) (bool, error) {
			return false, errors.New("database down")
		},
	}
	handler := AuthRequired(NewVerifier(testSecret), resolver)
	handler(c)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
}

// TestAuthRequired_ValidToken は有効なトークンでリクエストが通過し、コンテキストにユーザーIDが設定されることを検証します。
func TestAuthRequired_ValidToken(t *testing.T) {
	tests := []struct {
		name           string
		userID         uint
		expectedUserID uint
	}{
		{"user id 1", 1, 1},
		{"user id 42", 42, 42},
		{"user id 999", 999, 999},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var resolvedID uint
			resolver := &mockUserResolver{
				ExistsFunc: func(ctx context.Context, userID uint) (bool, error) {
					resolvedID = userID
					return true, nil
				},
			}

			c, w := newTestContext(t, "Bearer "+createTokenWithSecret(testSecret, tt.userID, time.Hour))

			handler := AuthRequired(NewVerifier(testSecret), resolver)
			handler(c)

			if c.IsAborted() {
				t.Errorf("expected request not to be aborted, response: %s", w.Body.String())
				return
			}
			if resolvedID != tt.expectedUserID {
				t.Errorf("expected resolver to receive userID %d, got %d", tt.expectedUserID, resolvedID)
			}

			userID, ok := UserID(c)
			if !ok {
				t.Fatal("expected userID to be set in context")
			}
			if userID != tt.expectedUserID {
				t.Errorf("expected userID %d, got %d", tt.expectedUserID, userID)
			}
		})
	}
}
