package middleware

import (
	"net/http"

	"libraryhub/models"
	"libraryhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequireAuth rejects requests without a principal.
func RequireAuth() gin.HandlerFunc {
	return RequireRoles()
}

// RequireRoles admits a principal whose role is in allowed. An empty allow-list admits any principal.
// A missing principal is 401; a role outside the list is 403.
func RequireRoles(allowed ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := GetPrincipal(c)
		if principal == nil {
			authDenials.WithLabelValues("unauthenticated").Inc()
			utils.JSONError(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		if len(allowed) > 0 && !principal.HasRole(allowed...) {
			authDenials.WithLabelValues("forbidden").Inc()
			utils.GetLogger().Warn("Role not permitted",
				zap.String("userId", principal.ID),
				zap.String("role", string(principal.Role)),
				zap.String("path", c.FullPath()),
			)
			utils.JSONError(c, http.StatusForbidden, "Forbidden")
			return
		}
		c.Next()
	}
}
