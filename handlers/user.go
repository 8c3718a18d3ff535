package handlers

import (
	"net/http"
	"strings"

	"libraryhub/models"
	"libraryhub/services/user"
	"libraryhub/utils"

	"github.com/gin-gonic/gin"
)

// UserHandler serves self-service profile and the public member directory.
type UserHandler struct {
	UserService user.UserService
}

func NewUserHandler(us user.UserService) *UserHandler {
	return &UserHandler{UserService: us}
}

// UpdateProfileHandler handles PATCH /profile for the caller.
func (h *UserHandler) UpdateProfileHandler(c *gin.Context) {
	var req models.ProfileUpdateRequest
	if !bindJSON(c, &req) {
		return
	}
	usr, err := h.UserService.UpdateProfile(c.Request.Context(), principal(c).ID, req)
	if err != nil {
		utils.RespondError(c, err, "User not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": usr})
}

// PublicMembersHandler handles GET /public/members.
func (h *UserHandler) PublicMembersHandler(c *gin.Context) {
	limit, ok := queryInt64(c, "limit")
	if !ok {
		return
	}
	offset, ok := queryInt64(c, "offset")
	if !ok {
		return
	}
	members, total, err := h.UserService.ListPublicMembers(c.Request.Context(), models.MemberFilter{
		Query:  strings.TrimSpace(c.Query("q")),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		utils.RespondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"members": members, "total": total})
}
