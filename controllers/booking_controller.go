package controllers

import (
	"errors"
	"log"
	"net/http"

	"hostel-backend/services"
	"hostel-backend/utils"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	BookingSvc *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{BookingSvc: svc}
}

// CreateBooking (POST /api/bookings) prices the stay at the room's current
// base price and inserts the reservation in the initial pending status.
func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	var in services.CreateBookingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	confirmation, err := ctrl.BookingSvc.CreateBooking(c.Request.Context(), in)
	if errors.Is(err, services.ErrRoomNotFound) {
		utils.JSONError(c, http.StatusNotFound, "Room not found")
		return
	}
	if err != nil {
		log.Printf("❌ Error creating booking: %v", err)
		utils.JSONInternalError(c, "Failed to create booking", err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, confirmation)
}
