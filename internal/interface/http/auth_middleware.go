package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ashiskumarwork/SmartNotesAI-backend/internal/domain/auth"
	apperrors "github.com/ashiskumarwork/SmartNotesAI-backend/pkg/errors"
)

func authMiddleware(svc auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if header == "" || len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abortWithError(c, NewHTTPError(http.StatusUnauthorized, "invalid_token", "No token provided.", nil))
			return
		}
		claims, err := svc.ValidateToken(c.Request.Context(), strings.TrimSpace(parts[1]))
		if err != nil {
			if !apperrors.IsCode(err, "invalid_token") {
				abortWithError(c, fromDomainError(err))
				return
			}
			abortWithError(c, NewHTTPError(http.StatusUnauthorized, "invalid_token", "Invalid or expired token.", err))
			return
		}
		setClaims(c, claims)
		c.Next()
	}
}
