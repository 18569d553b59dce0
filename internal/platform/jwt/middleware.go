package jwtmw

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"recipe_backend/internal/api"
)

// ContextUserID is the gin context key under which the authenticated user's
// ID is stored. It is the only channel by which handlers learn who is calling.
const ContextUserID = "userID"

// UserResolver checks that the user a token asserts still exists.
// Goの慣例に従い、インターフェースはプロバイダーではなくコンシューマー（middleware）が定義します。
type UserResolver interface {
	// Exists reports whether a user with the given ID is present in the store.
	Exists(ctx context.Context, userID uint) (bool, error)
}

// AuthRequired returns a Gin middleware function that validates bearer tokens,
// resolves them to an existing user and restricts access to authenticated
// users only.
func AuthRequired(verifier Verifier, users UserResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Get Authorization header
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Not authorized"})
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		// 2. Verify signature and expiry
		userID, err := verifier.VerifyToken(tokenStr)
		if err != nil {
			// Reason is for diagnostics only; the caller sees a uniform 401
			slog.Warn("token rejected", "reason", err, "remote_addr", c.ClientIP())
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Not authorized"})
			return
		}

		// 3. Resolve the asserted user; a token may outlive its account
		ok, err := users.Exists(c.Request.Context(), userID)
		if err != nil {
			slog.Error("user lookup failed", "error", err, "user_id", userID)
			c.AbortWithStatusJSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Internal server error"})
			return
		}
		if !ok {
			slog.Warn("token references missing user", "user_id", userID, "remote_addr", c.ClientIP())
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Not authorized"})
			return
		}

		// 4. Attach the identity and pass control to the next handler
		c.Set(ContextUserID, userID)
		c.Next()
	}
}

// UserID extracts the authenticated user's ID set by AuthRequired.
func UserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
