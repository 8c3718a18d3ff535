package handlers

import (
	"context"
	"net/http"
	"strings"

	"libraryhub/models"
	"libraryhub/services/membership"
	"libraryhub/utils"

	"github.com/gin-gonic/gin"
)

// ApplicationHandler serves membership applications.
type ApplicationHandler struct {
	MembershipService membership.MembershipService
}

func NewApplicationHandler(ms membership.MembershipService) *ApplicationHandler {
	return &ApplicationHandler{MembershipService: ms}
}

// ApplyHandler handles POST /applications.
func (h *ApplicationHandler) ApplyHandler(c *gin.Context) {
	var req models.ApplicationRequest
	if !bindJSON(c, &req) {
		return
	}
	app, err := h.MembershipService.Apply(c.Request.Context(), principal(c), req)
	if err != nil {
		utils.RespondError(c, err, "User not found")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "id": app.ID})
}

// ListApplicationsHandler handles GET /admin/applications.
func (h *ApplicationHandler) ListApplicationsHandler(c *gin.Context) {
	status := models.ApplicationStatus(strings.ToUpper(c.Query("status")))
	apps, err := h.MembershipService.List(c.Request.Context(), status)
	if err != nil {
		utils.RespondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": apps})
}

// ApproveHandler handles POST /admin/applications/:id/approve.
func (h *ApplicationHandler) ApproveHandler(c *gin.Context) {
	h.review(c, h.MembershipService.Approve)
}

// RejectHandler handles POST /admin/applications/:id/reject.
func (h *ApplicationHandler) RejectHandler(c *gin.Context) {
	h.review(c, h.MembershipService.Reject)
}

type reviewFunc func(ctx context.Context, reviewer *models.Principal, id, note string) (*models.MemberApplication, error)

func (h *ApplicationHandler) review(c *gin.Context, fn reviewFunc) {
	var req models.ReviewRequest
	if c.Request.ContentLength > 0 && !bindJSON(c, &req) {
		return
	}
	app, err := fn(c.Request.Context(), principal(c), c.Param("id"), req.Note)
	if err != nil {
		utils.RespondError(c, err, "Application not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "application": app})
}
