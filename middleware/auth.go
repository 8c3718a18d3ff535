package middleware

import (
	"strings"

	"libraryhub/models"
	"libraryhub/services/auth"
	"libraryhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	principalKey = "principal"
	claimsKey    = "tokenClaims"
)

// Authenticate resolves a bearer token into a Principal and stores it on the context.
// It never rejects a request; guards decide what an anonymous caller may do.
func Authenticate(authSvc auth.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.Next()
			return
		}
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if tokenString == "" {
			c.Next()
			return
		}

		principal, claims, err := authSvc.ResolvePrincipal(c.Request.Context(), tokenString)
		if err != nil {
			utils.GetLogger().Debug("Bearer token rejected", zap.String("path", c.Request.URL.Path), zap.Error(err))
			c.Next()
			return
		}
		c.Set(principalKey, principal)
		c.Set(claimsKey, claims)
		c.Next()
	}
}

// GetPrincipal returns the authenticated caller, or nil.
func GetPrincipal(c *gin.Context) *models.Principal {
	v, ok := c.Get(principalKey)
	if !ok {
		return nil
	}
	p, _ := v.(*models.Principal)
	return p
}

// GetClaims returns the claims of the token that authenticated the request, or nil.
func GetClaims(c *gin.Context) *utils.TokenClaims {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*utils.TokenClaims)
	return claims
}
