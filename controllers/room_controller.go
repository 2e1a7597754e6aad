package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"hostel-backend/services"
	"hostel-backend/utils"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	RoomSvc *services.RoomService
}

func NewRoomController(svc *services.RoomService) *RoomController {
	return &RoomController{RoomSvc: svc}
}

// GetRooms (GET /api/rooms) returns every available room with its type.
func (ctrl *RoomController) GetRooms(c *gin.Context) {
	rooms, err := ctrl.RoomSvc.GetAvailableRooms(c.Request.Context())
	if err != nil {
		log.Printf("❌ Error fetching rooms: %v", err)
		utils.JSONInternalError(c, "Failed to fetch rooms", err)
		return
	}
	utils.JSONSuccessWithCount(c, http.StatusOK, rooms, len(rooms))
}

// GetRoomByID (GET /api/rooms/:id). A non-numeric id parses to the zero
// sentinel, matches no row and falls through to 404.
func (ctrl *RoomController) GetRoomByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	room, err := ctrl.RoomSvc.GetRoomByID(c.Request.Context(), id)
	if errors.Is(err, services.ErrRoomNotFound) {
		utils.JSONError(c, http.StatusNotFound, "Room not found")
		return
	}
	if err != nil {
		log.Printf("❌ Error fetching room %d: %v", id, err)
		utils.JSONInternalError(c, "Failed to fetch room", err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// GetRoomTypes (GET /api/room-types).
func (ctrl *RoomController) GetRoomTypes(c *gin.Context) {
	types, err := ctrl.RoomSvc.GetRoomTypes(c.Request.Context())
	if err != nil {
		log.Printf("❌ Error fetching room types: %v", err)
		utils.JSONInternalError(c, "Failed to fetch room types", err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, types)
}

type availabilityRequest struct {
	RoomID       uint   `json:"room_id" binding:"required"`
	CheckInDate  string `json:"check_in_date" binding:"required"`
	CheckOutDate string `json:"check_out_date" binding:"required"`
}

// CheckAvailability (POST /api/rooms/availability) reports whether the
// requested range conflicts with an occupying booking. Independent of
// POST /bookings: creating a booking never re-runs this check.
func (ctrl *RoomController) CheckAvailability(c *gin.Context) {
	var req availabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Missing required fields: room_id, check_in_date, check_out_date")
		return
	}

	available, err := ctrl.RoomSvc.CheckAvailability(c.Request.Context(), req.RoomID, req.CheckInDate, req.CheckOutDate)
	if err != nil {
		log.Printf("❌ Error checking availability for room %d: %v", req.RoomID, err)
		utils.JSONInternalError(c, "Failed to check room availability", err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"room_id":        req.RoomID,
		"check_in_date":  req.CheckInDate,
		"check_out_date": req.CheckOutDate,
		"available":      available,
	})
}
