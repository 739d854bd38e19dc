package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/AbdulAleem24/STT-Library-management-system-sub002/internal/service"
	"github.com/AbdulAleem24/STT-Library-management-system-sub002/internal/token"
	"github.com/AbdulAleem24/STT-Library-management-system-sub002/pkg/response"
)

// claimsKey is where verified token claims land in the gin context.
const claimsKey = "auth_claims"

// RequireAuth verifies the Authorization bearer token before protected
// handlers run. It authenticates only; no role or permission checks happen here.
func RequireAuth(issuer *token.Issuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		const prefix = "Bearer "
		if !strings.HasPrefix(header, prefix) {
			response.WriteError(c, service.ErrUnauthorized)
			return
		}
		claims, err := issuer.Verify(strings.TrimSpace(header[len(prefix):]))
		if err != nil {
			response.WriteError(c, service.ErrUnauthorized)
			return
		}
		c.Set(claimsKey, claims)
		c.Next()
	}
}
