package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ashiskumarwork/SmartNotesAI-backend/internal/domain/auth"
)

const authClaimsKey = "auth_claims"

func setClaims(c *gin.Context, claims auth.Claims) {
	c.Set(authClaimsKey, claims)
}

// mustClaims returns the claims set by authMiddleware, aborting with 401 when absent.
func mustClaims(c *gin.Context) (auth.Claims, bool) {
	value, ok := c.Get(authClaimsKey)
	if ok {
		if claims, ok := value.(auth.Claims); ok {
			return claims, true
		}
	}
	abortWithError(c, NewHTTPError(http.StatusUnauthorized, "invalid_token", "No token provided.", nil))
	return auth.Claims{}, false
}
