package routes

import (
	"libraryhub/handlers"
	"libraryhub/middleware"
	"libraryhub/models"

	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers sign-up, sign-in and session endpoints.
func RegisterAuthRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", hb.AuthHandler.RegisterHandler)
		authGroup.POST("/login", hb.AuthHandler.LoginHandler)
		authGroup.POST("/logout", middleware.RequireAuth(), hb.AuthHandler.LogoutHandler)
		authGroup.GET("/me", middleware.RequireAuth(), hb.AuthHandler.MeHandler)
	}
}

// RegisterUserRoutes registers profile, directory and admin user moderation endpoints.
func RegisterUserRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	api.PATCH("/profile", middleware.RequireAuth(), hb.UserHandler.UpdateProfileHandler)
	api.GET("/public/members", hb.UserHandler.PublicMembersHandler)

	adminGroup := api.Group("/admin/users")
	{
		adminGroup.Use(middleware.RequireRoles(models.RoleAdmin))
		adminGroup.GET("", hb.AdminHandler.GetAllUsersHandler)
		adminGroup.POST("/:id/promote", hb.AdminHandler.PromoteUserHandler)
		adminGroup.POST("/:id/revoke", hb.AdminHandler.RevokeUserHandler)
	}
}

// RegisterMembershipRoutes registers membership application endpoints.
func RegisterMembershipRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	api.POST("/applications", middleware.RequireAuth(), hb.ApplicationHandler.ApplyHandler)

	reviewGroup := api.Group("/admin/applications")
	{
		reviewGroup.Use(middleware.RequireRoles(models.RoleAdmin, models.RoleLibrarian))
		reviewGroup.GET("", hb.ApplicationHandler.ListApplicationsHandler)
		reviewGroup.POST("/:id/approve", hb.ApplicationHandler.ApproveHandler)
		reviewGroup.POST("/:id/reject", hb.ApplicationHandler.RejectHandler)
	}
}
