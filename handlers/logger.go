package handlers

import (
	"net/http"
	"strconv"

	"libraryhub/middleware"
	"libraryhub/models"
	"libraryhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// requestLogger returns the global logger annotated with the request route and caller.
func requestLogger(c *gin.Context) *zap.Logger {
	logger := utils.GetLogger().With(zap.String("method", c.Request.Method), zap.String("path", c.FullPath()))
	if p := middleware.GetPrincipal(c); p != nil {
		logger = logger.With(zap.String("userId", p.ID))
	}
	return logger
}

// principal returns the caller. Routes using it sit behind middleware.RequireRoles.
func principal(c *gin.Context) *models.Principal {
	return middleware.GetPrincipal(c)
}

// bindJSON binds the request body, answering 400 itself on failure.
func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		requestLogger(c).Debug("Invalid request body", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, utils.BindingMessage(err))
		return false
	}
	return true
}

// queryInt64 parses an optional non-negative integer query parameter.
func queryInt64(c *gin.Context, name string) (int64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v < 0 {
		utils.JSONError(c, http.StatusBadRequest, name+" must be a non-negative integer")
		return 0, false
	}
	return v, true
}
