package middleware

import (
	"net/http"

	"wisecrackr-be/internal/auth"

	"github.com/gin-gonic/gin"
)

// SellerKey is the gin context key holding the authenticated seller username.
const SellerKey = "seller"

// TokenVerifier is the slice of the token service the middleware needs.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// AuthRequired verifies the bearer token and stashes its subject in the
// request context. Requests without a valid token never reach the handler.
func AuthRequired(tokens TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := auth.ExtractAccessToken(c.Request)
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization token required"})
			return
		}

		subject, err := tokens.Verify(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(SellerKey, subject)
		c.Next()
	}
}

// SellerFrom returns the authenticated seller username set by AuthRequired.
func SellerFrom(c *gin.Context) (string, bool) {
	v, ok := c.Get(SellerKey)
	if !ok {
		return "", false
	}
	username, ok := v.(string)
	return username, ok && username != ""
}
