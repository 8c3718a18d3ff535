package handlers

import (
	"net/http"

	"libraryhub/models"
	"libraryhub/services/theme"
	"libraryhub/utils"

	"github.com/gin-gonic/gin"
)

// ThemeHandler serves the site-wide theme.
type ThemeHandler struct {
	ThemeService theme.ThemeService
}

func NewThemeHandler(ts theme.ThemeService) *ThemeHandler {
	return &ThemeHandler{ThemeService: ts}
}

// GetThemeHandler handles GET /admin/theme.
func (h *ThemeHandler) GetThemeHandler(c *gin.Context) {
	t, err := h.ThemeService.GetTheme(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"theme": t})
}

// SaveThemeHandler handles POST /admin/theme.
func (h *ThemeHandler) SaveThemeHandler(c *gin.Context) {
	var req models.ThemeRequest
	if !bindJSON(c, &req) {
		return
	}
	t, err := h.ThemeService.SaveTheme(c.Request.Context(), principal(c), req)
	if err != nil {
		utils.RespondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"theme": t})
}
