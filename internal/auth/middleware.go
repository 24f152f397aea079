package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"agroadvisor/internal/repository"
)

const (
	// ContextUserID is the gin context key holding the authenticated
	// caller's uuid.UUID.
	ContextUserID = "authUserID"
	// ContextToken is the gin context key holding the raw bearer token.
	ContextToken = "authToken"
)

// Middleware rejects requests without a valid, non-revoked bearer token
// and stores the caller's identity in the gin context.
func Middleware(issuer *Issuer, tokens repository.TokenRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c.GetHeader("Authorization"))
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		userID, _, err := issuer.Verify(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}
		revoked, err := tokens.IsRevoked(c.Request.Context(), raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "auth check failed"})
			return
		}
		if revoked {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token revoked"})
			return
		}
		c.Set(ContextUserID, userID)
		c.Set(ContextToken, raw)
		c.Next()
	}
}

// UserID returns the authenticated caller's ID set by Middleware.
func UserID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}
