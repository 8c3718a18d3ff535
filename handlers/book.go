package handlers

import (
	"net/http"
	"strings"

	"libraryhub/models"
	"libraryhub/services/catalog"
	"libraryhub/utils"

	"github.com/gin-gonic/gin"
)

// BookHandler serves the catalog.
type BookHandler struct {
	CatalogService catalog.CatalogService
}

func NewBookHandler(cs catalog.CatalogService) *BookHandler {
	return &BookHandler{CatalogService: cs}
}

// ListBooksHandler handles GET /books.
func (h *BookHandler) ListBooksHandler(c *gin.Context) {
	limit, ok := queryInt64(c, "limit")
	if !ok {
		return
	}
	offset, ok := queryInt64(c, "offset")
	if !ok {
		return
	}
	books, total, err := h.CatalogService.ListBooks(c.Request.Context(), models.BookFilter{
		Query:  strings.TrimSpace(c.Query("q")),
		Genre:  strings.TrimSpace(c.Query("genre")),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		utils.RespondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"books": books, "total": total})
}

// GetBookHandler handles GET /books/:id.
func (h *BookHandler) GetBookHandler(c *gin.Context) {
	book, err := h.CatalogService.GetBook(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err, "Book not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"book": book})
}

// CreateBookHandler handles POST /books.
func (h *BookHandler) CreateBookHandler(c *gin.Context) {
	var req models.CreateBookRequest
	if !bindJSON(c, &req) {
		return
	}
	book, err := h.CatalogService.CreateBook(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err, "")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"book": book})
}

// UpdateBookHandler handles PATCH /books/:id and echoes the stored record.
func (h *BookHandler) UpdateBookHandler(c *gin.Context) {
	var req models.UpdateBookRequest
	if !bindJSON(c, &req) {
		return
	}
	book, err := h.CatalogService.UpdateBook(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.RespondError(c, err, "Book not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"book": book})
}

// DeleteBookHandler handles DELETE /books/:id.
func (h *BookHandler) DeleteBookHandler(c *gin.Context) {
	if err := h.CatalogService.DeleteBook(c.Request.Context(), c.Param("id")); err != nil {
		utils.RespondError(c, err, "Book not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
