package handlers

import (
	"net/http"

	"libraryhub/services/user"
	"libraryhub/utils"

	"github.com/gin-gonic/gin"
)

// AdminHandler encapsulates elevated admin-level user operations.
type AdminHandler struct {
	UserService user.UserService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(us user.UserService) *AdminHandler {
	return &AdminHandler{UserService: us}
}

// GetAllUsersHandler returns all users (with credentials excluded).
func (ah *AdminHandler) GetAllUsersHandler(c *gin.Context) {
	users, err := ah.UserService.GetAllUsers(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// PromoteUserHandler handles POST /admin/users/:id/promote.
func (ah *AdminHandler) PromoteUserHandler(c *gin.Context) {
	usr, err := ah.UserService.PromoteUser(c.Request.Context(), principal(c), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err, "User not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "User " + usr.Email + " promoted to ADMIN"})
}

// RevokeUserHandler handles POST /admin/users/:id/revoke.
func (ah *AdminHandler) RevokeUserHandler(c *gin.Context) {
	usr, err := ah.UserService.RevokeUser(c.Request.Context(), principal(c), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err, "User not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Admin rights revoked for " + usr.Email})
}
