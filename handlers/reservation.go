package handlers

import (
	"net/http"
	"strings"

	"libraryhub/models"
	"libraryhub/services/catalog"
	"libraryhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReservationHandler serves book holds.
type ReservationHandler struct {
	CatalogService catalog.CatalogService
}

func NewReservationHandler(cs catalog.CatalogService) *ReservationHandler {
	return &ReservationHandler{CatalogService: cs}
}

// CreateReservationHandler handles POST /reservations.
func (h *ReservationHandler) CreateReservationHandler(c *gin.Context) {
	var req models.CreateReservationRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.CatalogService.Reserve(c.Request.Context(), principal(c), req)
	if err != nil {
		utils.RespondError(c, err, "Book not found")
		return
	}
	requestLogger(c).Info("Reservation created", zap.String("reservationId", res.ID), zap.String("bookId", res.BookID))
	c.JSON(http.StatusCreated, gin.H{"ok": true, "id": res.ID})
}

// ListReservationsHandler handles GET /reservations for the caller.
func (h *ReservationHandler) ListReservationsHandler(c *gin.Context) {
	items, err := h.CatalogService.ListReservations(c.Request.Context(), principal(c))
	if err != nil {
		utils.RespondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservations": items})
}

// CancelReservationHandler handles DELETE /reservations/:id.
func (h *ReservationHandler) CancelReservationHandler(c *gin.Context) {
	res, err := h.CatalogService.CancelReservation(c.Request.Context(), principal(c), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err, "Reservation not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "reservation": res})
}

// ListAllReservationsHandler handles GET /admin/reservations.
func (h *ReservationHandler) ListAllReservationsHandler(c *gin.Context) {
	status := models.ReservationStatus(strings.ToUpper(c.Query("status")))
	switch status {
	case "", models.ReservationPending, models.ReservationCancelled, models.ReservationFulfilled:
	default:
		utils.JSONError(c, http.StatusBadRequest, "status must be one of PENDING, CANCELLED, FULFILLED")
		return
	}
	items, err := h.CatalogService.ListAllReservations(c.Request.Context(), status)
	if err != nil {
		utils.RespondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservations": items})
}
