package identity

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const ctxKey = "identity"

// Middleware gates authenticated routes. Anonymous reads (the channel
// list) are mounted outside the gated group.
func Middleware(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "missing token"})
			return
		}

		ident, err := verifier.Verify(strings.TrimPrefix(h, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid token"})
			return
		}

		c.Set(ctxKey, ident)
		c.Next()
	}
}

func MustIdentity(c *gin.Context) Identity {
	v, _ := c.Get(ctxKey)
	return v.(Identity)
}
