package routes

import (
	"libraryhub/handlers"
	"libraryhub/middleware"
	"libraryhub/models"

	"github.com/gin-gonic/gin"
)

// RegisterCatalogRoutes registers book and reservation endpoints.
func RegisterCatalogRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	staff := middleware.RequireRoles(models.RoleAdmin, models.RoleLibrarian)

	books := api.Group("/books")
	{
		books.GET("", hb.BookHandler.ListBooksHandler)
		books.GET("/:id", hb.BookHandler.GetBookHandler)
		books.POST("", staff, hb.BookHandler.CreateBookHandler)
		books.PATCH("/:id", staff, hb.BookHandler.UpdateBookHandler)
		books.DELETE("/:id", staff, hb.BookHandler.DeleteBookHandler)
	}

	reservations := api.Group("/reservations")
	{
		reservations.Use(middleware.RequireAuth())
		reservations.POST("", hb.ReservationHandler.CreateReservationHandler)
		reservations.GET("", hb.ReservationHandler.ListReservationsHandler)
		reservations.DELETE("/:id", hb.ReservationHandler.CancelReservationHandler)
	}

	api.GET("/admin/reservations", staff, hb.ReservationHandler.ListAllReservationsHandler)
}
