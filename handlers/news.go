package handlers

import (
	"net/http"

	"libraryhub/models"
	"libraryhub/services/news"
	"libraryhub/utils"

	"github.com/gin-gonic/gin"
)

// NewsHandler serves news and events.
type NewsHandler struct {
	NewsService news.NewsService
}

func NewNewsHandler(ns news.NewsService) *NewsHandler {
	return &NewsHandler{NewsService: ns}
}

// ListNewsHandler handles GET /news. Signed-in members also see members-only entries.
func (h *NewsHandler) ListNewsHandler(c *gin.Context) {
	items, err := h.NewsService.ListPublished(c.Request.Context(), principal(c))
	if err != nil {
		utils.RespondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"news": items})
}

// AdminListNewsHandler handles GET /admin/news and returns a bare array of summaries.
func (h *NewsHandler) AdminListNewsHandler(c *gin.Context) {
	rows, err := h.NewsService.ListAll(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, rows)
}

// CreateNewsHandler handles POST /admin/news.
func (h *NewsHandler) CreateNewsHandler(c *gin.Context) {
	var req models.CreateNewsRequest
	if !bindJSON(c, &req) {
		return
	}
	item, err := h.NewsService.Create(c.Request.Context(), principal(c), req)
	if err != nil {
		utils.RespondError(c, err, "")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"news": item})
}

// UpdateNewsHandler handles PATCH /admin/news/:id.
func (h *NewsHandler) UpdateNewsHandler(c *gin.Context) {
	var req models.UpdateNewsRequest
	if !bindJSON(c, &req) {
		return
	}
	item, err := h.NewsService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.RespondError(c, err, "News entry not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"news": item})
}

// DeleteNewsHandler handles DELETE /admin/news/:id.
func (h *NewsHandler) DeleteNewsHandler(c *gin.Context) {
	if err := h.NewsService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.RespondError(c, err, "News entry not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
