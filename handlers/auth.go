package handlers

import (
	"net/http"

	"libraryhub/middleware"
	"libraryhub/models"
	"libraryhub/services/auth"
	"libraryhub/services/user"
	"libraryhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler serves sign-up, sign-in and session endpoints.
type AuthHandler struct {
	AuthService auth.AuthService
	UserService user.UserService
}

func NewAuthHandler(as auth.AuthService, us user.UserService) *AuthHandler {
	return &AuthHandler{AuthService: as, UserService: us}
}

// RegisterHandler handles POST /auth/register.
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	var req models.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.AuthService.Register(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err, "")
		return
	}
	requestLogger(c).Info("User registered", zap.String("newUserId", resp.User.ID))
	c.JSON(http.StatusCreated, resp)
}

// LoginHandler handles POST /auth/login.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req models.LoginRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.AuthService.Login(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// LogoutHandler handles POST /auth/logout by revoking the presented token.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}
	if err := h.AuthService.Logout(c.Request.Context(), claims); err != nil {
		utils.RespondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out"})
}

// MeHandler handles GET /auth/me.
func (h *AuthHandler) MeHandler(c *gin.Context) {
	usr, err := h.UserService.GetUserByID(c.Request.Context(), principal(c).ID)
	if err != nil {
		utils.RespondError(c, err, "User not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": usr})
}
