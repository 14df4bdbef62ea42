package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"blog-api/pkg/jwt"

	"github.com/gin-gonic/gin"
)

const (
	UserIDKey         = "user_id"
	UsernameKey       = "username"
	UserRoleKey       = "user_role"
	TokenIDKey        = "token_id"
	TokenExpiresAtKey = "token_expires_at"
)

// TokenRevocationChecker reports whether a token id was revoked before expiry.
type TokenRevocationChecker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// AuthMiddleware rejects requests without a valid bearer token with 401.
// revocations may be nil, in which case tokens are trusted until they expire.
func AuthMiddleware(jwtService *jwt.Service, revocations TokenRevocationChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || strings.TrimSpace(tokenString) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header must be a Bearer token"})
			return
		}

		claims, err := jwtService.ValidateToken(strings.TrimSpace(tokenString))
		if err != nil {
			message := "Invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				message = "Token expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": message})
			return
		}

		if revocations != nil {
			revoked, err := revocations.IsRevoked(c.Request.Context(), claims.ID)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Token revocation check failed"})
				return
			}
			if revoked {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token revoked"})
				return
			}
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(UsernameKey, claims.Username)
		c.Set(UserRoleKey, claims.Role)
		c.Set(TokenIDKey, claims.ID)
		var expiresAt time.Time
		if claims.ExpiresAt != nil {
			expiresAt = claims.ExpiresAt.Time
		}
		c.Set(TokenExpiresAtKey, expiresAt)
		c.Next()
	}
}

// RequireRoles must run after AuthMiddleware. Callers without an identity get
// 401, callers whose role is not listed get 403.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(UserRoleKey)
		if c.GetString(UserIDKey) == "" || role == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	}
}
