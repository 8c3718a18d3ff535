package handlers

import (
	"net/http"

	"libraryhub/models"
	"libraryhub/services/content"
	"libraryhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContentHandler serves e-books, the gallery and content moderation.
type ContentHandler struct {
	ContentService content.ContentService
}

func NewContentHandler(cs content.ContentService) *ContentHandler {
	return &ContentHandler{ContentService: cs}
}

func contentType(c *gin.Context) (models.ContentType, bool) {
	t := models.ContentType(c.Param("type"))
	if !t.IsValid() {
		utils.JSONError(c, http.StatusBadRequest, "type must be one of ebook, gallery, document")
		return "", false
	}
	return t, true
}

// CreateContentHandler handles POST /content/:type.
func (h *ContentHandler) CreateContentHandler(c *gin.Context) {
	t, ok := contentType(c)
	if !ok {
		return
	}
	var req models.CreateContentRequest
	if !bindJSON(c, &req) {
		return
	}
	item, err := h.ContentService.CreateContent(c.Request.Context(), principal(c), t, req)
	if err != nil {
		utils.RespondError(c, err, "")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"content": item})
}

// SetVisibilityHandler handles PATCH /content/:type/:id/visibility.
func (h *ContentHandler) SetVisibilityHandler(c *gin.Context) {
	t, ok := contentType(c)
	if !ok {
		return
	}
	var req models.VisibilityRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.ContentService.SetVisibility(c.Request.Context(), t, c.Param("id"), req.Visibility); err != nil {
		utils.RespondError(c, err, "Content not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Visibility updated to " + string(req.Visibility)})
}

// DeleteContentHandler handles DELETE /content/:type/:id.
func (h *ContentHandler) DeleteContentHandler(c *gin.Context) {
	t, ok := contentType(c)
	if !ok {
		return
	}
	if err := h.ContentService.DeleteContent(c.Request.Context(), t, c.Param("id")); err != nil {
		utils.RespondError(c, err, "Content not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// ListEbooksHandler handles GET /member/ebooks.
func (h *ContentHandler) ListEbooksHandler(c *gin.Context) {
	items, err := h.ContentService.ListEbooks(c.Request.Context(), principal(c))
	if err != nil {
		utils.RespondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "ebooks": items})
}

// GetEbookHandler handles GET /member/ebooks/:id.
func (h *ContentHandler) GetEbookHandler(c *gin.Context) {
	item, err := h.ContentService.GetEbook(c.Request.Context(), principal(c), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err, "Ebook not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "ebook": item})
}

// GalleryHandler handles GET /gallery. A store failure degrades to an empty gallery.
func (h *ContentHandler) GalleryHandler(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
	items, err := h.ContentService.ListGallery(c.Request.Context())
	if err != nil {
		requestLogger(c).Error("Failed to load gallery", zap.Error(err))
		items = []models.Content{}
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}
