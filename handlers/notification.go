package handlers

import (
	"fmt"
	"net/http"

	"libraryhub/models"
	"libraryhub/services/notification"
	"libraryhub/utils"

	"github.com/gin-gonic/gin"
)

// NotificationHandler serves the caller's inbox and staff broadcasts.
type NotificationHandler struct {
	NotificationService notification.NotificationService
}

func NewNotificationHandler(ns notification.NotificationService) *NotificationHandler {
	return &NotificationHandler{NotificationService: ns}
}

// ListNotificationsHandler handles GET /notifications.
func (h *NotificationHandler) ListNotificationsHandler(c *gin.Context) {
	items, unread, err := h.NotificationService.List(c.Request.Context(), principal(c))
	if err != nil {
		utils.RespondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": items, "unread": unread})
}

// MarkReadHandler handles PATCH /notifications/:id/read.
func (h *NotificationHandler) MarkReadHandler(c *gin.Context) {
	if err := h.NotificationService.MarkRead(c.Request.Context(), principal(c), c.Param("id")); err != nil {
		utils.RespondError(c, err, "Notification not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Notification marked as read"})
}

// MarkAllReadHandler handles PATCH /notifications/read-all.
func (h *NotificationHandler) MarkAllReadHandler(c *gin.Context) {
	n, err := h.NotificationService.MarkAllRead(c.Request.Context(), principal(c))
	if err != nil {
		utils.RespondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": fmt.Sprintf("%d notifications marked as read", n)})
}

// SendNotificationHandler handles POST /admin/notifications.
func (h *NotificationHandler) SendNotificationHandler(c *gin.Context) {
	var req models.CreateNotificationRequest
	if !bindJSON(c, &req) {
		return
	}
	n, err := h.NotificationService.Send(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err, "User not found")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "id": n.ID})
}
