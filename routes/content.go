package routes

import (
	"libraryhub/handlers"
	"libraryhub/middleware"
	"libraryhub/models"

	"github.com/gin-gonic/gin"
)

// RegisterContentRoutes registers e-book, gallery and content moderation endpoints.
func RegisterContentRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	api.GET("/gallery", hb.ContentHandler.GalleryHandler)

	member := api.Group("/member/ebooks")
	{
		member.Use(middleware.RequireRoles(models.RoleMember, models.RoleLibrarian, models.RoleAdmin))
		member.GET("", hb.ContentHandler.ListEbooksHandler)
		member.GET("/:id", hb.ContentHandler.GetEbookHandler)
	}

	manage := api.Group("/content")
	{
		manage.POST("/:type", middleware.RequireRoles(models.RoleAdmin, models.RoleLibrarian), hb.ContentHandler.CreateContentHandler)
		manage.PATCH("/:type/:id/visibility", middleware.RequireRoles(models.RoleAdmin), hb.ContentHandler.SetVisibilityHandler)
		manage.DELETE("/:type/:id", middleware.RequireRoles(models.RoleAdmin), hb.ContentHandler.DeleteContentHandler)
	}
}

// RegisterNewsRoutes registers news and event endpoints.
func RegisterNewsRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	api.GET("/news", hb.NewsHandler.ListNewsHandler)

	adminNews := api.Group("/admin/news")
	{
		adminNews.Use(middleware.RequireRoles(models.RoleAdmin))
		adminNews.GET("", hb.NewsHandler.AdminListNewsHandler)
		adminNews.POST("", hb.NewsHandler.CreateNewsHandler)
		adminNews.PATCH("/:id", hb.NewsHandler.UpdateNewsHandler)
		adminNews.DELETE("/:id", hb.NewsHandler.DeleteNewsHandler)
	}
}

// RegisterNotificationRoutes registers inbox and staff notification endpoints.
func RegisterNotificationRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	inbox := api.Group("/notifications")
	{
		inbox.Use(middleware.RequireAuth())
		inbox.GET("", hb.NotificationHandler.ListNotificationsHandler)
		inbox.PATCH("/read-all", hb.NotificationHandler.MarkAllReadHandler)
		inbox.PATCH("/:id/read", hb.NotificationHandler.MarkReadHandler)
	}

	api.POST("/admin/notifications",
		middleware.RequireRoles(models.RoleAdmin, models.RoleLibrarian),
		hb.NotificationHandler.SendNotificationHandler,
	)
}

// RegisterThemeRoutes registers the site theme endpoints. Reading is public.
func RegisterThemeRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	api.GET("/admin/theme", hb.ThemeHandler.GetThemeHandler)
	api.POST("/admin/theme", middleware.RequireRoles(models.RoleAdmin), hb.ThemeHandler.SaveThemeHandler)
}
